package component

import "github.com/go-gl/mathgl/mgl64"

// Follower trails the player at Offset, eased like the camera. Size is the
// side of the square it is drawn as.
type Follower struct {
	Offset     mgl64.Vec3
	SmoothTime float64
	Size       float64

	Target    mgl64.Vec3
	Velocity  mgl64.Vec3
	HasTarget bool
}

var FollowerComponent = NewComponent[Follower]()
