package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
)

var (
	defaultBoxColor = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	defaultBarFill  = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	defaultBarBack  = color.RGBA{R: 30, G: 30, B: 30, A: 200}
)

// RenderSystem draws the level, the characters and the HUD in world units
// projected through the camera. Update caches the debug overlay so Draw
// does no world queries beyond geometry.
type RenderSystem struct {
	Background color.Color
	ShowDebug  bool

	debug []string
}

func NewRenderSystem(background color.Color) *RenderSystem {
	if background == nil {
		background = color.Black
	}
	return &RenderSystem{Background: background, ShowDebug: true}
}

// DebugLines is the overlay text computed by the last Update.
func (rs *RenderSystem) DebugLines() []string {
	return rs.debug
}

func (rs *RenderSystem) Update(w *ecs.World) {
	rs.debug = rs.debug[:0]
	e, ok := w.First(component.PlayerTagComponent.Kind(), component.LocomotionComponent.Kind())
	if !ok {
		return
	}
	loco, _ := ecs.Get(w, e, component.LocomotionComponent)
	if loco.Controller == nil {
		return
	}
	snap := loco.Controller.Snapshot()
	rs.debug = append(rs.debug,
		fmt.Sprintf("tick %d  state %s  grounded %t", snap.Tick, snap.State, snap.Grounded),
		fmt.Sprintf("pos (%.2f, %.2f)", snap.Position.X(), snap.Position.Y()),
		fmt.Sprintf("jump v %.2f  gravity v %.2f", snap.JumpVelocity, snap.GravityVelocity),
		fmt.Sprintf("stamina %.2f  sprint %t  exhausted %t  cooldown %t", snap.Stamina, snap.Sprinting, snap.Exhausted, snap.CoolingDown),
	)
	if hp, ok := ecs.Get(w, e, component.HealthComponent); ok && hp.Pool != nil {
		rs.debug = append(rs.debug, fmt.Sprintf("health %d/%d", hp.Pool.Current(), hp.Pool.Max()))
	}
}

func (rs *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(rs.Background)

	view := newViewport(w, screen)

	ecs.ForEach2(w, component.StaticBoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.StaticBox, t *component.Transform) {
		view.fillBox(screen, t.Position.X(), t.Position.Y(), box.Width, box.Height, tintOf(w, e, defaultBoxColor))
	})
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.CharacterBody, t *component.Transform) {
		view.fillBox(screen, t.Position.X(), t.Position.Y(), body.Width, body.Height, tintOf(w, e, color.White))
	})

	ecs.ForEach2(w, component.FollowerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, f *component.Follower, t *component.Transform) {
		view.fillBox(screen, t.Position.X(), t.Position.Y(), f.Size, f.Size, tintOf(w, e, color.White))
	})

	ecs.ForEach(w, component.StaminaBarComponent.Kind(), func(_ ecs.Entity, bar *component.StaminaBar) {
		drawStaminaBar(screen, bar)
	})

	if rs.ShowDebug {
		for i, line := range rs.debug {
			ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
		}
	}
}

// viewport maps y-up world units to screen pixels centered on the camera.
type viewport struct {
	center [2]float64
	ppu    float64
	halfW  float64
	halfH  float64
}

func newViewport(w *ecs.World, screen *ebiten.Image) viewport {
	b := screen.Bounds()
	v := viewport{ppu: 32, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}
	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, e, component.CameraComponent)
		v.center = [2]float64{cam.Position.X(), cam.Position.Y()}
		if cam.PixelsPerUnit > 0 {
			v.ppu = cam.PixelsPerUnit
		}
	}
	return v
}

func (v viewport) toScreen(x, y float64) (float64, float64) {
	return (x-v.center[0])*v.ppu + v.halfW, v.halfH - (y-v.center[1])*v.ppu
}

func (v viewport) fillBox(screen *ebiten.Image, cx, cy, width, height float64, clr color.Color) {
	x, y := v.toScreen(cx-width/2, cy+height/2)
	vector.FillRect(screen, float32(x), float32(y), float32(width*v.ppu), float32(height*v.ppu), clr, false)
}

func drawStaminaBar(screen *ebiten.Image, bar *component.StaminaBar) {
	if !bar.Visible {
		return
	}
	back := bar.BackColor
	if back == nil {
		back = defaultBarBack
	}
	fill := bar.FillColor
	if fill == nil {
		fill = defaultBarFill
	}
	vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.Width), float32(bar.Height), back, false)
	frac := min(max(bar.Fill, 0), 1)
	if frac > 0 {
		vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.Width*frac), float32(bar.Height), fill, false)
	}
}

func tintOf(w *ecs.World, e ecs.Entity, fallback color.Color) color.Color {
	if tint, ok := ecs.Get(w, e, component.TintComponent); ok && tint.Color != nil {
		return tint.Color
	}
	return fallback
}
