package component

import (
	"github.com/milk9111/scrollin/event"
	"github.com/milk9111/scrollin/locomotion"
)

// Locomotion owns a character's controller and the signal subscriptions
// that forward its notifications into the world event queue.
type Locomotion struct {
	Controller *locomotion.Controller
	Config     locomotion.Config
	Subs       []event.Subscription
}

// Release closes the subscriptions and the controller.
func (l *Locomotion) Release() {
	for i := range l.Subs {
		l.Subs[i].Close()
	}
	l.Subs = nil
	if l.Controller != nil {
		l.Controller.Close()
		l.Controller = nil
	}
}

var LocomotionComponent = NewComponent[Locomotion]()
