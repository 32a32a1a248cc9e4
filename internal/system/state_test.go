package system

import (
	"testing"

	"go-battle-city/internal/component"
	"go-battle-city/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSystem_TerminalConditions(t *testing.T) {
	tests := []struct {
		name          string
		lives         int
		enemies       int
		baseDestroyed bool
		want          component.Phase
	}{
		{"still playing", 3, 2, false, component.PhasePlaying},
		{"win", 2, 0, false, component.PhaseWin},
		{"out of lives", 0, 2, false, component.PhaseGameOver},
		{"game over beats win", 0, 0, false, component.PhaseGameOver},
		{"base lost", 3, 2, true, component.PhaseGameOver},
		{"base lost beats win", 3, 0, true, component.PhaseGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			w.ecs.Lives = tt.lives
			for i := 0; i < tt.enemies; i++ {
				w.ecs.AddEnemy(component.NewTank(float64(i)*40, 0, component.FactionEnemy))
			}
			w.ecs.Base = component.NewBase(248, 416)
			w.ecs.Base.Destroyed = tt.baseDestroyed

			w.state.Update()

			assert.Equal(t, tt.want, w.state.Current())
		})
	}
}

func TestStateSystem_PhaseChangedEvent(t *testing.T) {
	w := newWorld()
	w.ecs.Tick = 77

	w.state.Update()

	require.Len(t, w.rec.events, 1)
	assert.Equal(t, event.PhaseChangedData{
		From: component.PhasePlaying,
		To:   component.PhaseWin,
		Tick: 77,
	}, w.rec.events[0].Data)

	// Терминальная фаза сама не меняется.
	w.ecs.Lives = 0
	w.state.Update()
	assert.Equal(t, component.PhaseWin, w.state.Current())
	assert.Len(t, w.rec.events, 1)
}
