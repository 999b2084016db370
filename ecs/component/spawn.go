package component

import "github.com/go-gl/mathgl/mgl64"

// Spawn is where a character returns after falling out of the level.
type Spawn struct {
	Position   mgl64.Vec3
	KillY      float64
	FallDamage int
}

var SpawnComponent = NewComponent[Spawn]()
