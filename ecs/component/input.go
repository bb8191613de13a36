package component

// Input stores per-frame raw input for an entity.
type Input struct {
	MoveX         int // -1, 0, +1
	Run           bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
