package component

// CharacterState is the behavioral state of a combatant. Exactly one is
// active per character; it gates animation, movement, and damage handling.
type CharacterState int

const (
	StateIdle CharacterState = iota
	StateWalk
	StateRun
	StateAttack
	StateDead
	StateHurt
)

func (s CharacterState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateRun:
		return "run"
	case StateAttack:
		return "attack"
	case StateDead:
		return "dead"
	case StateHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// ParseCharacterState maps a prefab state name to its enum value.
func ParseCharacterState(name string) (CharacterState, bool) {
	switch name {
	case "idle":
		return StateIdle, true
	case "walk":
		return StateWalk, true
	case "run":
		return StateRun, true
	case "attack":
		return StateAttack, true
	case "dead":
		return StateDead, true
	case "hurt":
		return StateHurt, true
	default:
		return 0, false
	}
}

// DefaultFrameRate is the seconds-per-frame used when a state has no clip.
const DefaultFrameRate = 0.1

// Clip describes one state's animation timing. FrameRate is seconds per
// frame. Immutable after prefab load; ClipSets are shared between entities
// built from the same prefab.
type Clip struct {
	FrameCount int
	FrameRate  float64
	Loop       bool
}

// ClipSet maps a character state to its clip.
type ClipSet map[CharacterState]Clip

// Character is the runtime of the character state machine. It is mutated
// only by the state machine itself (SetState/AdvanceFrame), the damage
// model, and the movement resolver; each entity owns its Character
// exclusively, so no locking is ever needed.
type Character struct {
	State      CharacterState
	Frame      int
	FrameTimer float64 // seconds until the next animation frame
	Clips      ClipSet

	FacingLeft  bool
	Attacking   bool
	DealtDamage bool // one hit-test gate per attack swing
	HurtPlayed  bool
	Dead        bool // terminal latch, halts all further ticking

	WalkSpeed    float64
	RunSpeed     float64
	AttackDamage int
	AttackRadius float64
	AttackReach  float64 // forward offset of the hit-test circle
}

var CharacterComponent = NewComponent[Character]()

// Clip returns the clip configured for a state.
func (c *Character) Clip(s CharacterState) (Clip, bool) {
	clip, ok := c.Clips[s]
	return clip, ok
}

// FrameRateFor returns the seconds-per-frame for a state, falling back to
// DefaultFrameRate when the state has no clip or a non-positive rate.
func (c *Character) FrameRateFor(s CharacterState) float64 {
	if clip, ok := c.Clips[s]; ok && clip.FrameRate > 0 {
		return clip.FrameRate
	}
	return DefaultFrameRate
}

// FrameCountFor returns the frame count for a state, clamped to at least 1
// so zero-length clips still complete instead of dividing by zero.
func (c *Character) FrameCountFor(s CharacterState) int {
	if clip, ok := c.Clips[s]; ok && clip.FrameCount > 0 {
		return clip.FrameCount
	}
	return 1
}

// AttackWindowFrame is the frame index of the Attack clip where the
// hit-test fires (integer half of the clip length).
func (c *Character) AttackWindowFrame() int {
	return c.FrameCountFor(StateAttack) / 2
}

// SetState transitions the state machine. It is a no-op when the state is
// unchanged or the character is dead. A transition rewinds the frame
// counter, clears the hurt flag, restarts the animation timer at the new
// state's rate (truncating the pending wake-up), and reports true so the
// caller can emit the state-change side effect.
func (c *Character) SetState(s CharacterState) bool {
	if c == nil || c.Dead || c.State == StateDead && s != StateDead {
		return false
	}
	if s == c.State {
		return false
	}
	if c.State == StateAttack {
		// an interrupted swing (e.g. hurt mid-attack) must not leave the
		// attack latch set or movement would stay suppressed forever
		c.Attacking = false
		c.DealtDamage = false
	}
	c.State = s
	c.Frame = 0
	c.HurtPlayed = false
	c.FrameTimer = c.FrameRateFor(s)
	if s == StateAttack {
		c.Attacking = true
		c.DealtDamage = false
	}
	return true
}

// AdvanceFrame advances one animation frame for the active state, wrapping
// modulo the clip length. A wrap to 0 is the sole trigger for completion
// logic: Attack clears the attacking and hit flags, Dead latches the
// terminal flag and halts ticking, and a first Hurt completion routes to
// Dead when health is exhausted or back to Idle otherwise. Returns whether
// the frame wrapped and whether the state changed.
func (c *Character) AdvanceFrame(health int) (wrapped, changed bool) {
	if c == nil || c.Dead {
		return false, false
	}

	c.Frame = (c.Frame + 1) % c.FrameCountFor(c.State)
	if c.Frame != 0 {
		return false, false
	}

	switch c.State {
	case StateAttack:
		c.Attacking = false
		c.DealtDamage = false
	case StateDead:
		c.Dead = true
	case StateHurt:
		if !c.HurtPlayed {
			c.HurtPlayed = true
			next := StateIdle
			if health <= 0 {
				next = StateDead
			}
			c.State = next
			c.Frame = 0
			c.FrameTimer = c.FrameRateFor(next)
			return true, true
		}
	}
	return true, false
}
