package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollin/ecs"
)

const debugCircleSegments = 16

// PhysicsDebugSystem outlines every collision shape and contact in the
// chipmunk space on top of the rendered frame.
type PhysicsDebugSystem struct {
	Enabled bool
	physics *PhysicsSystem
}

func NewPhysicsDebugSystem(physics *PhysicsSystem) *PhysicsDebugSystem {
	return &PhysicsDebugSystem{physics: physics}
}

func (pd *PhysicsDebugSystem) Update(*ecs.World) {}

func (pd *PhysicsDebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if !pd.Enabled || pd.physics == nil {
		return
	}
	cp.DrawSpace(pd.physics.Space(), &physicsDebugDrawer{screen: screen, view: newViewport(w, screen)})
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   viewport
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		d.drawLine(verts[i], verts[(i+1)%count], outline)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.toScreen(pos.X, pos.Y)
	half := float32(max(size, 3)) / 2
	vector.FillRect(d.screen, float32(x)-half, float32(y)-half, half*2, half*2, toNRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.3, G: 0.3, B: 0.8, A: 0.5}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.view.toScreen(a.X, a.Y)
	x2, y2 := d.view.toScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	prev := cp.Vector{X: center.X + radius, Y: center.Y}
	for i := 1; i <= debugCircleSegments; i++ {
		t := 2 * math.Pi * float64(i) / debugCircleSegments
		next := cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius}
		d.drawLine(prev, next, c)
		prev = next
	}
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
