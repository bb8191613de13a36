package component

import "github.com/tanema/gween"

// HealthBar is a screen-space fill bar bound to an entity's health. Fill
// eases toward the target with a tween rather than snapping.
type HealthBar struct {
	TargetName string
	X, Y       float64
	Width      float64
	Height     float64

	Fill     float32 // displayed 0..1
	LastFill float32 // last observed target fill
	Tween    *gween.Tween
}

var HealthBarComponent = NewComponent[HealthBar]()
