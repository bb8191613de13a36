package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "player" {
		t.Fatalf("unexpected name %q", spec.Name)
	}
	if spec.Health != 100 {
		t.Fatalf("unexpected health %d", spec.Health)
	}
	if spec.WalkSpeed <= 0 || spec.RunSpeed <= spec.WalkSpeed {
		t.Fatalf("run speed should exceed walk speed: %v / %v", spec.WalkSpeed, spec.RunSpeed)
	}

	attack, ok := spec.Animation.Clips["attack"]
	if !ok {
		t.Fatalf("player needs an attack clip")
	}
	if attack.FrameCount <= 0 || attack.FrameRate <= 0 {
		t.Fatalf("attack clip missing timing: %+v", attack)
	}
	if attack.Loop {
		t.Fatalf("attack must not loop")
	}

	idle, ok := spec.Animation.Clips["idle"]
	if !ok || !idle.Loop {
		t.Fatalf("idle clip should loop")
	}
}

func TestLoadEnemySpec(t *testing.T) {
	spec, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.AI.DetectionRange <= spec.AI.AttackRange {
		t.Fatalf("detection range should exceed attack range")
	}
	if spec.AI.AttackCooldown <= 0 {
		t.Fatalf("attack cooldown must be positive")
	}
	if spec.AI.IdleMin > spec.AI.IdleMax || spec.AI.WanderMin > spec.AI.WanderMax {
		t.Fatalf("timer ranges are inverted")
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Target != "player" {
		t.Fatalf("unexpected target %q", spec.Target)
	}
	if spec.Bounds == nil || spec.Bounds.Left >= spec.Bounds.Right {
		t.Fatalf("camera bounds missing or inverted")
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("scripts/skeleton.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(src) == 0 {
		t.Fatalf("script should not be empty")
	}
	// accepted path spellings all resolve to the same file
	alt, err := LoadScript("skeleton.tengo")
	if err != nil {
		t.Fatalf("load alt: %v", err)
	}
	if string(alt) != string(src) {
		t.Fatalf("path spellings should resolve identically")
	}
}
