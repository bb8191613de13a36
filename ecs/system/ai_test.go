package system

import (
	"math/rand"
	"testing"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

func aiTuning() *component.AI {
	return &component.AI{
		DetectionRange: 220,
		AttackRange:    48,
		AttackCooldown: 1.4,
		AttackDamage:   10,
		IdleMin:        1,
		IdleMax:        2,
		WanderMin:      1,
		WanderMax:      2,
	}
}

func spawnAIWorld(t *testing.T, enemyX, playerX float64, withPlayer bool) (*ecs.World, ecs.Entity, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(2000, 500))

	var player ecs.Entity
	if withPlayer {
		player = spawnFighter(t, w, playerX, true)
	}

	enemy := ecs.CreateEntity(w)
	if err := ecs.Add(w, enemy, component.AIComponent.Kind(), aiTuning()); err != nil {
		t.Fatalf("add ai: %v", err)
	}
	if err := ecs.Add(w, enemy, component.AIRuntimeComponent.Kind(), &component.AIRuntime{}); err != nil {
		t.Fatalf("add runtime: %v", err)
	}
	if err := ecs.Add(w, enemy, component.CharacterComponent.Kind(), &component.Character{
		State:     component.StateIdle,
		Clips:     combatClips(),
		WalkSpeed: 90,
		RunSpeed:  90,
	}); err != nil {
		t.Fatalf("add character: %v", err)
	}
	if err := ecs.Add(w, enemy, component.TransformComponent.Kind(), &component.Transform{X: enemyX, Y: 100}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, enemy, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		t.Fatalf("add intent: %v", err)
	}
	if err := ecs.Add(w, enemy, component.BoundaryComponent.Kind(), &component.Boundary{Left: 0, Right: 2000}); err != nil {
		t.Fatalf("add boundary: %v", err)
	}
	return w, enemy, player
}

func newTestAI() *AI {
	return NewAI(1.0/60, rand.New(rand.NewSource(42)))
}

func TestAIAttacksInRangeWithCooldownReady(t *testing.T) {
	w, enemy, player := spawnAIWorld(t, 100, 110, true)
	ai := newTestAI()

	ai.Update(w)

	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())
	c, _ := ecs.Get(w, enemy, component.CharacterComponent.Kind())
	if rt.State != component.AIAttack {
		t.Fatalf("expected attack, got %v", rt.State)
	}
	if c.State != component.StateAttack {
		t.Fatalf("attack should force the attack animation, got %v", c.State)
	}
	if rt.CooldownLeft != 1.4 {
		t.Fatalf("swing should stamp the cooldown, got %v", rt.CooldownLeft)
	}

	// the NPC swing applies damage directly, no hit-test window
	h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if h.Current != 90 {
		t.Fatalf("player should take the swing damage immediately, health %d", h.Current)
	}
}

func TestAIRespectsCooldown(t *testing.T) {
	w, enemy, player := spawnAIWorld(t, 100, 110, true)
	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())
	rt.CooldownLeft = 1.0

	newTestAI().Update(w)

	if rt.State == component.AIAttack {
		t.Fatalf("cooldown must gate the attack")
	}
	h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if h.Current != 100 {
		t.Fatalf("no swing, no damage, health %d", h.Current)
	}
}

func TestAIChasesDetectedTarget(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 100, 300, true)
	newTestAI().Update(w)

	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())
	intent, _ := ecs.Get(w, enemy, component.IntentComponent.Kind())
	if rt.State != component.AIChase {
		t.Fatalf("expected chase, got %v", rt.State)
	}
	if intent.MoveX != 1 {
		t.Fatalf("chase should move toward the target, got %d", intent.MoveX)
	}
}

func TestAIOutOfDetectionNeverChases(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 100, 1500, true)
	ai := newTestAI()

	for i := 0; i < 600; i++ {
		ai.Update(w)
		rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())
		if rt.State == component.AIChase || rt.State == component.AIAttack {
			t.Fatalf("tick %d: distant target must never trigger chase or attack", i)
		}
	}
}

func TestAIWanderIdleCycleWithoutTarget(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 500, 0, false)
	ai := newTestAI()
	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())

	ai.Update(w)
	if rt.State != component.AIWander {
		t.Fatalf("expired idle timer should enter wander, got %v", rt.State)
	}
	if rt.MoveDir != 1 && rt.MoveDir != -1 {
		t.Fatalf("wander entry should draw a direction, got %d", rt.MoveDir)
	}
	if rt.StateTimer < 1 || rt.StateTimer > 2 {
		t.Fatalf("wander timer should be drawn from [min,max], got %v", rt.StateTimer)
	}

	dir := rt.MoveDir
	for i := 0; i < 10; i++ {
		ai.Update(w)
		if rt.State == component.AIWander && rt.MoveDir != dir {
			t.Fatalf("wander direction is drawn once per entry, changed at tick %d", i)
		}
	}

	// drain the wander timer, the cycle must flip back to idle
	rt.StateTimer = 0.001
	ai.Update(w)
	if rt.State != component.AIIdle {
		t.Fatalf("expired wander timer should enter idle, got %v", rt.State)
	}
}

func TestAIWanderReversesAtBoundary(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 1, 0, false)
	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())
	rt.State = component.AIWander
	rt.StateTimer = 10
	rt.MoveDir = -1

	newTestAI().Update(w)

	if rt.MoveDir != 1 {
		t.Fatalf("wander should reverse on boundary collision, got %d", rt.MoveDir)
	}
	intent, _ := ecs.Get(w, enemy, component.IntentComponent.Kind())
	if intent.MoveX != 1 {
		t.Fatalf("intent should follow the reversed direction, got %d", intent.MoveX)
	}
}

func TestAIHurtAndDeadProduceNoIntent(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 100, 110, true)
	c, _ := ecs.Get(w, enemy, component.CharacterComponent.Kind())
	c.SetState(component.StateHurt)

	intent, _ := ecs.Get(w, enemy, component.IntentComponent.Kind())
	intent.MoveX = 1

	newTestAI().Update(w)

	if intent.MoveX != 0 {
		t.Fatalf("hurt NPCs must not move, got %d", intent.MoveX)
	}
	if c.State != component.StateHurt {
		t.Fatalf("hurt NPCs must not change state, got %v", c.State)
	}
}

func TestAIScriptLoadFailureDisablesScriptOnce(t *testing.T) {
	w, enemy, _ := spawnAIWorld(t, 500, 0, false)
	ai, _ := ecs.Get(w, enemy, component.AIComponent.Kind())
	ai.Script = "scripts/no_such.tengo"
	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())

	sys := newTestAI()
	sys.Update(w)

	srt, ok := sys.scripts[enemy]
	if !ok || !srt.broken {
		t.Fatalf("a failed load should cache a broken runtime")
	}
	if rt.State != component.AIWander {
		t.Fatalf("broken script should fall back to the built-in selector, got %v", rt.State)
	}

	// later ticks reuse the cached runtime instead of re-loading
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	if sys.scripts[enemy] != srt {
		t.Fatalf("broken runtime should stay cached across ticks")
	}
}

func TestAIScriptOverridesSelector(t *testing.T) {
	// the scripted variant never wanders, so a distant target keeps it idle
	w, enemy, _ := spawnAIWorld(t, 100, 1500, true)
	ai, _ := ecs.Get(w, enemy, component.AIComponent.Kind())
	ai.Script = "scripts/skeleton.tengo"
	rt, _ := ecs.Get(w, enemy, component.AIRuntimeComponent.Kind())

	sys := newTestAI()
	for i := 0; i < 300; i++ {
		sys.Update(w)
		if rt.State != component.AIIdle {
			t.Fatalf("tick %d: scripted selector should hold idle, got %v", i, rt.State)
		}
	}
}
