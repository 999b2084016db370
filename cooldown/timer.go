// Package cooldown implements a countdown advanced by explicit tick deltas.
//
// A Timer never looks at the wall clock. The owner calls Tick once per
// fixed simulation step; pausing simply stops consuming deltas, so resuming
// continues from the remaining time without drift.
package cooldown

import "github.com/milk9111/scrollin/event"

// State is the lifecycle phase of a Timer.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Timer is a reusable countdown with pause, resume and cancel.
type Timer struct {
	duration  float64
	length    float64
	remaining float64
	state     State

	onStart    *event.Signal[struct{}]
	onComplete *event.Signal[bool]
}

// New creates an idle timer whose Start uses duration seconds.
func New(duration float64) *Timer {
	return &Timer{
		duration:   duration,
		onStart:    event.NewSignal[struct{}](),
		onComplete: event.NewSignal[bool](),
	}
}

// OnStart fires each time a countdown begins.
func (t *Timer) OnStart() *event.Signal[struct{}] { return t.onStart }

// OnComplete fires with true when a countdown runs out and false when it
// is cancelled. The timer is already idle when listeners run, so they may
// start it again.
func (t *Timer) OnComplete() *event.Signal[bool] { return t.onComplete }

// Start begins a countdown of the configured duration.
func (t *Timer) Start() bool {
	return t.StartFor(t.duration)
}

// StartFor begins a countdown of d seconds. It returns false without side
// effects when the timer is already active or d is not positive.
func (t *Timer) StartFor(d float64) bool {
	if t == nil || t.state != Idle || d <= 0 {
		return false
	}
	t.length = d
	t.remaining = d
	t.state = Running
	t.onStart.Emit(struct{}{})
	return true
}

// Tick consumes dt seconds of a running countdown.
func (t *Timer) Tick(dt float64) {
	if t == nil || t.state != Running || dt <= 0 {
		return
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return
	}
	t.remaining = 0
	t.state = Idle
	t.onComplete.Emit(true)
}

// Pause freezes a running countdown.
func (t *Timer) Pause() {
	if t == nil || t.state != Running {
		return
	}
	t.state = Paused
}

// Resume continues a paused countdown from its remaining time.
func (t *Timer) Resume() {
	if t == nil || t.state != Paused {
		return
	}
	t.state = Running
}

// Cancel stops an active countdown and reports an unsuccessful completion.
func (t *Timer) Cancel() {
	if t == nil || t.state == Idle {
		return
	}
	t.remaining = 0
	t.state = Idle
	t.onComplete.Emit(false)
}

func (t *Timer) State() State { return t.state }

// Active reports whether a countdown is running or paused.
func (t *Timer) Active() bool { return t.state != Idle }

func (t *Timer) Paused() bool { return t.state == Paused }

func (t *Timer) Remaining() float64 { return t.remaining }

// Duration is the length used by Start.
func (t *Timer) Duration() float64 { return t.duration }

// Elapsed is the time consumed by the current countdown, or zero when idle.
func (t *Timer) Elapsed() float64 {
	if t.state == Idle {
		return 0
	}
	return t.length - t.remaining
}
