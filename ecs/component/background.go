package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Background is one parallax layer. Factor scales the camera offset
// (0 = pinned to the sky, 1 = moves with the world); layers tile
// horizontally. A nil Image falls back to a flat fill color.
type Background struct {
	Image   *ebiten.Image
	Factor  float64
	OffsetY float64
	Fill    color.RGBA
}

var BackgroundComponent = NewComponent[Background]()
