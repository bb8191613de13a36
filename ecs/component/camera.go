package component

// Camera follows a named target with exponential smoothing and clamps the
// view to the level bounds. When HasBounds is set the camera also acts as
// a boundary source: its limits replace every character's own boundary at
// startup.
type Camera struct {
	TargetName string
	Zoom       float64
	Smoothing  float64 // 0..1, fraction of remaining distance closed per tick

	X, Y float64 // current view center, world space

	HasBounds   bool
	BoundsLeft  float64
	BoundsRight float64
}

var CameraComponent = NewComponent[Camera]()
