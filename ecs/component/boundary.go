package component

// Boundary is the horizontal movement limit for a character. The level
// provides the initial values; a camera boundary source may override them
// at startup.
type Boundary struct {
	Left  float64
	Right float64
}

var BoundaryComponent = NewComponent[Boundary]()

// Contains reports whether x lies within the boundary.
func (b Boundary) Contains(x float64) bool {
	return x >= b.Left && x <= b.Right
}
