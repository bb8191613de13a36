package system

import (
	"testing"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

func spawnAnimated(t *testing.T, w *ecs.World, state component.CharacterState) (ecs.Entity, *component.Character) {
	t.Helper()
	e := ecs.CreateEntity(w)
	c := &component.Character{
		State: state,
		Clips: component.ClipSet{
			component.StateIdle: {FrameCount: 4, FrameRate: 0.1, Loop: true},
			component.StateWalk: {FrameCount: 6, FrameRate: 0.2, Loop: true},
			component.StateHurt: {FrameCount: 2, FrameRate: 0.1},
			component.StateDead: {FrameCount: 2, FrameRate: 0.1},
		},
		FrameTimer: 0.1,
	}
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), c); err != nil {
		t.Fatalf("add character: %v", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 100, Max: 100}); err != nil {
		t.Fatalf("add health: %v", err)
	}
	return e, c
}

func TestAnimationAdvancesOnTimerNotEveryTick(t *testing.T) {
	w := ecs.NewWorld()
	_, c := spawnAnimated(t, w, component.StateIdle)
	sys := NewAnimation(0.03)

	// 0.1s at 0.03s per tick: ticks 1-3 stay, tick 4 advances
	for i := 0; i < 3; i++ {
		sys.Update(w)
		if c.Frame != 0 {
			t.Fatalf("tick %d: frame advanced early, timer should still be pending", i+1)
		}
	}
	sys.Update(w)
	if c.Frame != 1 {
		t.Fatalf("expected one frame after the timer expired, got %d", c.Frame)
	}
}

func TestAnimationStateChangeRestartsTimer(t *testing.T) {
	w := ecs.NewWorld()
	_, c := spawnAnimated(t, w, component.StateIdle)
	sys := NewAnimation(0.03)

	sys.Update(w) // timer down to 0.07
	c.SetState(component.StateWalk)
	if c.FrameTimer != 0.2 {
		t.Fatalf("state change should restart the timer at the new rate, got %v", c.FrameTimer)
	}

	// the pending idle wake-up was truncated: the next three ticks are
	// nowhere near the new 0.2s rate
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if c.Frame != 0 {
		t.Fatalf("walk frame advanced before its own rate elapsed, got %d", c.Frame)
	}
}

func TestAnimationEmitsDeathEvent(t *testing.T) {
	w := ecs.NewWorld()
	e, c := spawnAnimated(t, w, component.StateIdle)
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	h.Current = 0
	c.SetState(component.StateHurt)
	c.FrameTimer = 0.01

	sys := NewAnimation(0.03)
	// hurt clip: 2 frames, then transition to dead; dead clip: 2 frames,
	// then the death latch
	for i := 0; i < 40 && !c.Dead; i++ {
		sys.Update(w)
	}
	if !c.Dead {
		t.Fatalf("character should latch dead")
	}

	var sawDeath, sawHurtToDead bool
	for _, evt := range w.Events().Items() {
		switch data := evt.Data.(type) {
		case ecs.DeathEvent:
			if data.Entity == e {
				sawDeath = true
			}
		case ecs.StateChangeEvent:
			if data.From == component.StateHurt && data.To == component.StateDead {
				sawHurtToDead = true
			}
		}
	}
	if !sawHurtToDead {
		t.Fatalf("expected hurt-to-dead state change event")
	}
	if !sawDeath {
		t.Fatalf("expected death event")
	}

	// dead characters stop ticking entirely
	frame := c.Frame
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	if c.Frame != frame {
		t.Fatalf("dead characters must not animate")
	}
}

func TestAnimationSurvivingHurtReturnsToIdle(t *testing.T) {
	w := ecs.NewWorld()
	_, c := spawnAnimated(t, w, component.StateIdle)
	c.SetState(component.StateHurt)
	c.FrameTimer = 0.01

	sys := NewAnimation(0.03)
	for i := 0; i < 20 && c.State == component.StateHurt; i++ {
		sys.Update(w)
	}
	if c.State != component.StateIdle {
		t.Fatalf("surviving a hurt cycle should return to idle, got %v", c.State)
	}
}
