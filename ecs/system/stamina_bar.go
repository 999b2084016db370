package system

import (
	"github.com/milk9111/scrollin/cooldown"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/event"
)

// StaminaBarSystem keeps the HUD bar in step with stamina events and
// blinks it while the stamina cooldown runs.
type StaminaBarSystem struct {
	dt float64
}

func NewStaminaBarSystem(dt float64) *StaminaBarSystem {
	return &StaminaBarSystem{dt: dt}
}

func (ss *StaminaBarSystem) Update(w *ecs.World) {
	q := w.Events()
	ecs.ForEach(w, component.StaminaBarComponent.Kind(), func(_ ecs.Entity, bar *component.StaminaBar) {
		for _, evt := range q.Of(ecs.EventStaminaChanged) {
			if fill, ok := evt.Data.(float64); ok {
				bar.Fill = fill
			}
		}
		if len(q.Of(ecs.EventCooldownStarted)) > 0 {
			StartBlink(bar)
		}
		if len(q.Of(ecs.EventCooldownCompleted)) > 0 {
			StopBlink(bar)
		}
		if len(q.Of(ecs.EventRespawned)) > 0 {
			StopBlink(bar)
			bar.Fill = 1
		}
		if bar.Blink != nil {
			bar.Blink.Tick(ss.dt)
		}
	})
}

// InitBlink gives bar a blink timer that flips visibility every interval
// seconds for as long as the bar is blinking.
func InitBlink(bar *component.StaminaBar, interval float64) {
	for i := range bar.BlinkSubs {
		bar.BlinkSubs[i].Close()
	}
	bar.Blink = cooldown.New(interval)
	bar.BlinkSubs = []event.Subscription{
		bar.Blink.OnStart().Subscribe(func(struct{}) {
			bar.Visible = !bar.Visible
		}),
		bar.Blink.OnComplete().Subscribe(func(ran bool) {
			if ran && bar.Blinking {
				bar.Blink.Start()
			}
		}),
	}
}

// StartBlink begins blinking; each blink timer start toggles visibility.
func StartBlink(bar *component.StaminaBar) {
	bar.Blinking = true
	if bar.Blink != nil {
		bar.Blink.Start()
	}
}

// StopBlink ends blinking and leaves the bar visible.
func StopBlink(bar *component.StaminaBar) {
	bar.Blinking = false
	if bar.Blink != nil {
		bar.Blink.Cancel()
	}
	bar.Visible = true
}
