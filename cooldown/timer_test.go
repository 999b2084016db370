package cooldown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	starts      int
	completions []bool
}

func newRecorded(d float64) (*Timer, *recorder) {
	t := New(d)
	r := &recorder{}
	t.OnStart().Subscribe(func(struct{}) { r.starts++ })
	t.OnComplete().Subscribe(func(ok bool) { r.completions = append(r.completions, ok) })
	return t, r
}

func TestTimerStartIsIdempotentWhileActive(t *testing.T) {
	timer, rec := newRecorded(1)

	require.True(t, timer.Start())
	assert.False(t, timer.Start())
	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, Running, timer.State())

	timer.Pause()
	assert.False(t, timer.Start(), "paused timer is still active")
	assert.Equal(t, 1, rec.starts)
}

func TestTimerCompletesAfterDuration(t *testing.T) {
	timer, rec := newRecorded(1)
	require.True(t, timer.Start())

	for i := 0; i < 3; i++ {
		timer.Tick(0.25)
	}
	assert.True(t, timer.Active())
	assert.InDelta(t, 0.25, timer.Remaining(), 1e-12)
	assert.InDelta(t, 0.75, timer.Elapsed(), 1e-12)
	assert.Empty(t, rec.completions)

	timer.Tick(0.25)
	assert.False(t, timer.Active())
	assert.Equal(t, []bool{true}, rec.completions)
	assert.Zero(t, timer.Remaining())

	timer.Tick(0.25)
	assert.Len(t, rec.completions, 1, "idle timer must not complete twice")
}

func TestTimerPauseResumeKeepsRemaining(t *testing.T) {
	timer, rec := newRecorded(1)
	require.True(t, timer.Start())
	timer.Tick(0.5)

	timer.Pause()
	for i := 0; i < 10; i++ {
		timer.Tick(0.5)
	}
	assert.True(t, timer.Paused())
	assert.InDelta(t, 0.5, timer.Remaining(), 1e-12)
	assert.Empty(t, rec.completions)

	timer.Resume()
	assert.Equal(t, Running, timer.State())
	timer.Tick(0.25)
	assert.InDelta(t, 0.25, timer.Remaining(), 1e-12)
	timer.Tick(0.25)
	assert.Equal(t, []bool{true}, rec.completions)
}

func TestTimerCancel(t *testing.T) {
	tests := []struct {
		name  string
		pause bool
	}{
		{"while_running", false},
		{"while_paused", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer, rec := newRecorded(2)
			require.True(t, timer.Start())
			timer.Tick(0.5)
			if tc.pause {
				timer.Pause()
			}
			timer.Cancel()

			assert.Equal(t, Idle, timer.State())
			assert.Zero(t, timer.Remaining())
			assert.Equal(t, []bool{false}, rec.completions)

			timer.Cancel()
			assert.Len(t, rec.completions, 1, "cancel on idle timer is a no-op")

			require.True(t, timer.Start(), "cancelled timer can start again")
			assert.Equal(t, 2, rec.starts)
		})
	}
}

func TestTimerRejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1} {
		timer, rec := newRecorded(d)
		assert.False(t, timer.Start())
		assert.False(t, timer.StartFor(d))
		assert.Zero(t, rec.starts)
		assert.Equal(t, Idle, timer.State())
	}
}

func TestTimerRestartFromCompletion(t *testing.T) {
	timer := New(0.5)
	restarts := 0
	timer.OnComplete().Subscribe(func(ok bool) {
		if ok && restarts < 2 {
			restarts++
			timer.Start()
		}
	})
	require.True(t, timer.Start())
	for i := 0; i < 10; i++ {
		timer.Tick(0.5)
	}
	assert.Equal(t, 2, restarts)
	assert.False(t, timer.Active())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "unknown", State(42).String())
}
