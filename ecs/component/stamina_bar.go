package component

import (
	"image/color"

	"github.com/milk9111/scrollin/cooldown"
	"github.com/milk9111/scrollin/event"
)

// StaminaBar is the HUD fill bar. While the stamina cooldown runs it
// blinks, driven by its own Blink timer.
type StaminaBar struct {
	X, Y          float64
	Width, Height float64

	FillColor color.Color
	BackColor color.Color

	Fill     float64
	Visible  bool
	Blinking bool

	Blink     *cooldown.Timer
	BlinkSubs []event.Subscription
}

var StaminaBarComponent = NewComponent[StaminaBar]()
