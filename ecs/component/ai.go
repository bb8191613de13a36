package component

// AIState is the behavior-selector state for an NPC. It is distinct from
// CharacterState: the selector decides intent, the character state machine
// decides animation and combat gating.
type AIState int

const (
	AIIdle AIState = iota
	AIWander
	AIChase
	AIAttack
)

func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIWander:
		return "wander"
	case AIChase:
		return "chase"
	case AIAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// AI is the behavior tuning for an NPC, loaded from its prefab and
// immutable between hot reloads.
type AI struct {
	DetectionRange float64
	AttackRange    float64
	AttackCooldown float64 // seconds between swings
	AttackDamage   int

	IdleMin   float64 // idle duration range, seconds
	IdleMax   float64
	WanderMin float64 // wander duration range, seconds
	WanderMax float64

	Script string // optional .tengo behavior override
}

var AIComponent = NewComponent[AI]()

// AIRuntime is the mutable selector state for one NPC.
type AIRuntime struct {
	State        AIState
	StateTimer   float64 // counts down; toggles idle<->wander on expiry
	MoveDir      int     // -1 or +1, drawn once per wander entry
	CooldownLeft float64 // counts down to the next allowed swing
}

var AIRuntimeComponent = NewComponent[AIRuntime]()
