package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
}

func TestSmoothDampConverges(t *testing.T) {
	var vel mgl64.Vec3
	pos := mgl64.Vec3{}
	target := mgl64.Vec3{10, -4, 2}

	prevDist := pos.Sub(target).Len()
	for i := 0; i < 600; i++ {
		pos = SmoothDamp(pos, target, &vel, 0.3, 1.0/60.0)
		dist := pos.Sub(target).Len()
		assert.LessOrEqual(t, dist, prevDist+1e-12, "step %d", i)
		prevDist = dist
	}
	assert.InDelta(t, 0, prevDist, 1e-6)
}

func TestSmoothDampNoOvershoot(t *testing.T) {
	vel := mgl64.Vec3{100, 0, 0}
	pos := SmoothDamp(mgl64.Vec3{9.9, 0, 0}, mgl64.Vec3{10, 0, 0}, &vel, 0.1, 0.5)
	assert.Equal(t, mgl64.Vec3{10, 0, 0}, pos)
	assert.Equal(t, mgl64.Vec3{}, vel)
}

func TestSmoothDampZeroStep(t *testing.T) {
	var vel mgl64.Vec3
	pos := SmoothDamp(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, &vel, 0.3, 0)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, pos)
	assert.True(t, Approximately(vel.Len(), 0))
}
