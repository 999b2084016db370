package component

import "github.com/go-gl/mathgl/mgl64"

// Input stores this frame's input for an entity. The edge flags are
// consumed by the locomotion system.
type Input struct {
	Move          mgl64.Vec2
	JumpPressed   bool
	JumpReleased  bool
	SprintPressed bool
}

var InputComponent = NewComponent[Input]()
