package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Approximately reports whether a and b differ by less than a tiny epsilon.
func Approximately(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// SmoothDamp moves current toward target like a critically damped spring
// that settles in roughly smoothTime seconds. velocity carries state
// between calls and must be kept by the caller.
func SmoothDamp(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(decay)
	out := target.Add(change.Add(temp).Mul(decay))

	// no overshoot
	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		out = target
		*velocity = mgl64.Vec3{}
	}
	return out
}
