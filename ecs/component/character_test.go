package component

import "testing"

func testClips() ClipSet {
	return ClipSet{
		StateIdle:   {FrameCount: 4, FrameRate: 0.15, Loop: true},
		StateWalk:   {FrameCount: 6, FrameRate: 0.1, Loop: true},
		StateAttack: {FrameCount: 6, FrameRate: 0.07},
		StateHurt:   {FrameCount: 3, FrameRate: 0.1},
		StateDead:   {FrameCount: 5, FrameRate: 0.12},
	}
}

func newTestCharacter() *Character {
	return &Character{State: StateIdle, Clips: testClips()}
}

func TestAdvanceFrameFullWrap(t *testing.T) {
	for state, clip := range testClips() {
		if state == StateDead || state == StateHurt {
			continue // completion logic changes state, covered separately
		}
		c := newTestCharacter()
		c.State = state
		for i := 0; i < clip.FrameCount; i++ {
			c.AdvanceFrame(100)
		}
		if c.Frame != 0 {
			t.Fatalf("state %v: full wrap should land on frame 0, got %d", state, c.Frame)
		}
	}
}

func TestAdvanceFrameStrictlyIncreasesBeforeWrap(t *testing.T) {
	c := newTestCharacter()
	c.State = StateWalk
	count := c.FrameCountFor(StateWalk)
	for i := 1; i < count; i++ {
		c.AdvanceFrame(100)
		if c.Frame != i {
			t.Fatalf("after %d advances expected frame %d, got %d", i, i, c.Frame)
		}
	}
}

func TestSetStateNoOpOnSameState(t *testing.T) {
	c := newTestCharacter()
	c.Frame = 2
	if c.SetState(StateIdle) {
		t.Fatalf("same-state transition should report false")
	}
	if c.Frame != 2 {
		t.Fatalf("same-state transition must not rewind the frame")
	}
}

func TestSetStateResetsFrameAndTimer(t *testing.T) {
	c := newTestCharacter()
	c.Frame = 3
	c.FrameTimer = 0.01
	if !c.SetState(StateWalk) {
		t.Fatalf("transition should report true")
	}
	if c.Frame != 0 {
		t.Fatalf("transition should rewind frame, got %d", c.Frame)
	}
	if c.FrameTimer != 0.1 {
		t.Fatalf("transition should restart timer at the new state's rate, got %v", c.FrameTimer)
	}
}

func TestSetStateEntersAttackWithFlags(t *testing.T) {
	c := newTestCharacter()
	c.SetState(StateAttack)
	if !c.Attacking || c.DealtDamage {
		t.Fatalf("attack entry should set Attacking and clear DealtDamage")
	}
}

func TestInterruptedAttackClearsFlags(t *testing.T) {
	c := newTestCharacter()
	c.SetState(StateAttack)
	c.DealtDamage = true
	c.SetState(StateHurt)
	if c.Attacking || c.DealtDamage {
		t.Fatalf("leaving attack mid-swing must clear the attack flags")
	}
}

func TestAttackWrapClearsFlags(t *testing.T) {
	c := newTestCharacter()
	c.SetState(StateAttack)
	c.DealtDamage = true
	for i := 0; i < c.FrameCountFor(StateAttack); i++ {
		c.AdvanceFrame(100)
	}
	if c.Attacking || c.DealtDamage {
		t.Fatalf("attack wrap should clear the attack flags")
	}
	if c.State != StateAttack {
		t.Fatalf("attack wrap alone must not change state, got %v", c.State)
	}
}

func TestHurtCompletionRoutesOnHealth(t *testing.T) {
	cases := []struct {
		name   string
		health int
		want   CharacterState
	}{
		{"survives_to_idle", 70, StateIdle},
		{"exhausted_to_dead", 0, StateDead},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCharacter()
			c.SetState(StateHurt)
			var changed bool
			for i := 0; i < c.FrameCountFor(StateHurt); i++ {
				_, changed = c.AdvanceFrame(tc.health)
			}
			if !changed {
				t.Fatalf("hurt completion should report a state change")
			}
			if c.State != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.State)
			}
		})
	}
}

func TestDeadIsTerminal(t *testing.T) {
	c := newTestCharacter()
	c.SetState(StateHurt)
	for i := 0; i < c.FrameCountFor(StateHurt); i++ {
		c.AdvanceFrame(0)
	}
	if c.State != StateDead {
		t.Fatalf("expected dead, got %v", c.State)
	}
	for i := 0; i < c.FrameCountFor(StateDead); i++ {
		c.AdvanceFrame(0)
	}
	if !c.Dead {
		t.Fatalf("death clip wrap should latch the terminal flag")
	}
	if c.SetState(StateIdle) {
		t.Fatalf("dead is terminal, transitions must be rejected")
	}
	if wrapped, _ := c.AdvanceFrame(0); wrapped {
		t.Fatalf("ticking must halt after the death latch")
	}
}

func TestZeroLengthClipClampsToOneFrame(t *testing.T) {
	c := &Character{State: StateIdle, Clips: ClipSet{StateIdle: {FrameCount: 0}}}
	wrapped, _ := c.AdvanceFrame(100)
	if !wrapped {
		t.Fatalf("zero-length clip should complete every advance")
	}
	if c.Frame != 0 {
		t.Fatalf("frame should stay at 0, got %d", c.Frame)
	}
}

func TestFrameRateDefaultsWhenClipMissing(t *testing.T) {
	c := &Character{State: StateRun, Clips: ClipSet{}}
	if got := c.FrameRateFor(StateRun); got != DefaultFrameRate {
		t.Fatalf("expected default frame rate, got %v", got)
	}
}

func TestApplyDamage(t *testing.T) {
	c := newTestCharacter()
	h := &Health{Current: 100, Max: 100}

	if !ApplyDamage(c, h, 30) {
		t.Fatalf("damage should apply to a healthy character")
	}
	if h.Current != 70 || c.State != StateHurt {
		t.Fatalf("expected 70 health and hurt state, got %d %v", h.Current, c.State)
	}

	// mid-hurt immunity
	if ApplyDamage(c, h, 30) {
		t.Fatalf("mid-hurt character must be damage-immune")
	}
	if h.Current != 70 {
		t.Fatalf("immune hit must not change health, got %d", h.Current)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	c := newTestCharacter()
	h := &Health{Current: 20, Max: 100}
	ApplyDamage(c, h, 100)
	if h.Current != 0 {
		t.Fatalf("health must clamp at zero, got %d", h.Current)
	}
}

// Full damage walkthrough: 100 health survives a 30 hit, then a 100 hit
// kills through the hurt waypoint and later hits are ignored.
func TestDamageLifecycle(t *testing.T) {
	c := newTestCharacter()
	h := &Health{Current: 100, Max: 100}

	ApplyDamage(c, h, 30)
	if h.Current != 70 || c.State != StateHurt {
		t.Fatalf("step 1: expected 70/hurt, got %d/%v", h.Current, c.State)
	}
	for i := 0; i < c.FrameCountFor(StateHurt); i++ {
		c.AdvanceFrame(h.Current)
	}
	if c.State != StateIdle {
		t.Fatalf("step 2: hurt cycle with health left should end idle, got %v", c.State)
	}

	ApplyDamage(c, h, 100)
	if h.Current != 0 || c.State != StateHurt {
		t.Fatalf("step 3: expected 0/hurt, got %d/%v", h.Current, c.State)
	}
	for i := 0; i < c.FrameCountFor(StateHurt); i++ {
		c.AdvanceFrame(h.Current)
	}
	if c.State != StateDead {
		t.Fatalf("step 4: hurt cycle with no health should end dead, got %v", c.State)
	}

	if ApplyDamage(c, h, 10) {
		t.Fatalf("step 5: dead characters must ignore damage")
	}
}

func TestHealthFill(t *testing.T) {
	cases := []struct {
		name    string
		current int
		max     int
		want    float64
	}{
		{"full", 100, 100, 1},
		{"partial", 70, 100, 0.7},
		{"empty", 0, 100, 0},
		{"zero_max", 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Health{Current: tc.current, Max: tc.max}
			if got := h.Fill(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
