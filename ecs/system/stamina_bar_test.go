package system

import (
	"testing"

	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaminaBarBlinksDuringCooldown(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	bar := &component.StaminaBar{Width: 100, Height: 8, Fill: 1, Visible: true}
	InitBlink(bar, 0.25)
	require.NoError(t, ecs.Add(w, e, component.StaminaBarComponent, bar))

	s := ecs.NewScheduler(NewStaminaBarSystem(0.125))

	w.Events().Push(ecs.Event{Type: ecs.EventStaminaChanged, Data: 0.4})
	s.Update(w)
	assert.Equal(t, 0.4, bar.Fill)
	assert.True(t, bar.Visible)

	w.Events().Push(ecs.Event{Type: ecs.EventCooldownStarted})
	var visible []bool
	for range 5 {
		s.Update(w)
		visible = append(visible, bar.Visible)
	}
	assert.True(t, bar.Blinking)
	assert.Equal(t, []bool{false, true, true, false, false}, visible)

	w.Events().Push(ecs.Event{Type: ecs.EventCooldownCompleted, Data: true})
	s.Update(w)
	assert.False(t, bar.Blinking)
	assert.True(t, bar.Visible)
	assert.False(t, bar.Blink.Active())

	for range 4 {
		s.Update(w)
		assert.True(t, bar.Visible)
	}
}

func TestStaminaBarResetsOnRespawn(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	bar := &component.StaminaBar{Fill: 0.1, Visible: true}
	InitBlink(bar, 0.5)
	require.NoError(t, ecs.Add(w, e, component.StaminaBarComponent, bar))
	StartBlink(bar)
	require.False(t, bar.Visible)

	w.Events().Push(ecs.Event{Type: ecs.EventRespawned})
	ecs.NewScheduler(NewStaminaBarSystem(testDT)).Update(w)

	assert.Equal(t, 1.0, bar.Fill)
	assert.True(t, bar.Visible)
	assert.False(t, bar.Blinking)
}
