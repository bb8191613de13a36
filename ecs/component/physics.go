package component

import "github.com/jakecoffman/cp"

// PhysicsBody describes (and after EnsureBody, references) a character's
// dynamic body in the Chipmunk space.
type PhysicsBody struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Mass    float64

	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
