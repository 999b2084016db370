package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows the player with a damped spring. Position is the world
// point drawn at the screen center.
type Camera struct {
	Offset        mgl64.Vec3
	SmoothTime    float64
	PixelsPerUnit float64

	Target    mgl64.Vec3
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	HasTarget bool
}

var CameraComponent = NewComponent[Camera]()
