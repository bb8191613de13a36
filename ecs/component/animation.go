package component

import "github.com/hajimehoshi/ebiten/v2"

// FrameDef locates one state's frame strip on a sprite sheet.
type FrameDef struct {
	Row      int
	ColStart int
	FrameW   int
	FrameH   int
}

// Animation maps character states to sprite-sheet strips. It is display
// only: frame advancement lives on the Character. A nil Sheet disables
// sprite updates without affecting the state machine.
type Animation struct {
	Sheet *ebiten.Image
	Defs  map[CharacterState]FrameDef
}

var AnimationComponent = NewComponent[Animation]()
