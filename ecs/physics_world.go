package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/pixl9/sidebrawl/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
)

// Gravity is the downward acceleration applied to dynamic bodies.
const Gravity = 1400.0

// PhysicsWorld owns the Chipmunk space, the static floor and boundary
// walls, and the shape-to-entity index used by combat overlap queries.
type PhysicsWorld struct {
	space  *cp.Space
	width  float64
	height float64

	shapeToEntity map[*cp.Shape]Entity
}

// NewPhysicsWorld creates a physics world spanning a level of the given
// world-space size, walled on all four sides.
func NewPhysicsWorld(width, height float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})

	pw := &PhysicsWorld{
		space:         space,
		width:         width,
		height:        height,
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.buildStaticShapes()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Size returns the world bounds.
func (pw *PhysicsWorld) Size() (width, height float64) {
	if pw == nil {
		return 0, 0
	}
	return pw.width, pw.height
}

// EnsureBody creates a dynamic body for an entity if it doesn't have one
// yet and registers its shape for overlap queries.
func (pw *PhysicsWorld) EnsureBody(e Entity, t *component.Transform, pb *component.PhysicsBody) {
	if pw == nil || pw.space == nil || t == nil || pb == nil {
		return
	}
	if pb.Body != nil {
		return
	}

	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	// infinite moment keeps characters upright
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{
		X: t.X + pb.Width/2 + pb.OffsetX,
		Y: t.Y + pb.Height/2 + pb.OffsetY,
	})

	shape := cp.NewBox(body, pb.Width, pb.Height, 0)
	shape.SetFriction(0.8)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pb.Body = body
	pb.Shape = shape
	pw.shapeToEntity[shape] = e
}

// RemoveBody detaches an entity's body from the space.
func (pw *PhysicsWorld) RemoveBody(pb *component.PhysicsBody) {
	if pw == nil || pw.space == nil || pb == nil || pb.Body == nil {
		return
	}
	if pb.Shape != nil {
		delete(pw.shapeToEntity, pb.Shape)
		pw.space.RemoveShape(pb.Shape)
		pb.Shape = nil
	}
	pw.space.RemoveBody(pb.Body)
	pb.Body = nil
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// QueryCircle returns the entities whose body center lies within radius of
// the given point. The result carries no ordering guarantee.
func (pw *PhysicsWorld) QueryCircle(x, y, radius float64) []Entity {
	if pw == nil {
		return nil
	}
	var out []Entity
	for shape, e := range pw.shapeToEntity {
		body := shape.Body()
		if body == nil {
			continue
		}
		pos := body.Position()
		if math.Hypot(pos.X-x, pos.Y-y) <= radius {
			out = append(out, e)
		}
	}
	return out
}

func (pw *PhysicsWorld) buildStaticShapes() {
	if pw.width <= 0 || pw.height <= 0 {
		return
	}
	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: pw.width, Y: 0}},
		{a: cp.Vector{X: 0, Y: pw.height}, b: cp.Vector{X: pw.width, Y: pw.height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: pw.height}},
		{a: cp.Vector{X: pw.width, Y: 0}, b: cp.Vector{X: pw.width, Y: pw.height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}
