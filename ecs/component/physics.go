package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// CharacterBody is a kinematic-style box driven by per-tick displacements.
// It is the host motion primitive handed to a locomotion controller: Move
// records the requested displacement and the physics system resolves it
// against static geometry on its next step.
type CharacterBody struct {
	Width    float64
	Height   float64
	Timestep float64

	Body  *cp.Body
	Shape *cp.Shape

	// Velocity is the requested velocity for the next physics step.
	Velocity mgl64.Vec3
	Pos      mgl64.Vec3
	Grounded bool
}

// Move requests displacement d over one timestep.
func (b *CharacterBody) Move(d mgl64.Vec3) {
	if b.Timestep <= 0 {
		return
	}
	b.Velocity = d.Mul(1 / b.Timestep)
}

func (b *CharacterBody) IsGrounded() bool { return b.Grounded }

// Position is the center of the box after the last physics step.
func (b *CharacterBody) Position() mgl64.Vec3 { return b.Pos }

// Teleport moves the body immediately and drops any pending motion.
func (b *CharacterBody) Teleport(pos mgl64.Vec3) {
	b.Pos = pos
	b.Velocity = mgl64.Vec3{}
	b.Grounded = false
	if b.Body != nil {
		b.Body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Y()})
		b.Body.SetVelocity(0, 0)
	}
}

var CharacterBodyComponent = NewComponent[CharacterBody]()

// StaticBox is axis-aligned level geometry, centered on its Transform.
type StaticBox struct {
	Width  float64
	Height float64
	Shape  *cp.Shape
}

var StaticBoxComponent = NewComponent[StaticBox]()
