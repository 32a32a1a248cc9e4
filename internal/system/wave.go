// internal/system/wave.go
package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
)

// WaveSystem расставляет танки противника в начале раунда.
type WaveSystem struct {
	ecs             *entity.ECS
	ai              *EnemyAISystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, ai *EnemyAISystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		ai:              ai,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave replaces the current enemies with a fresh set from wave, each with newly
// drawn decision timers.
func (s *WaveSystem) StartWave(wave defs.WaveDefinition) {
	s.ecs.ClearEnemies()
	for _, sp := range wave.Spawns {
		s.spawnEnemy(sp)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Enemies: len(s.ecs.Enemies)},
	})
}

func (s *WaveSystem) spawnEnemy(sp defs.SpawnPoint) {
	enemy := component.NewTank(sp.X, sp.Y, component.FactionEnemy)
	s.ai.ResetTimers(enemy)
	s.ecs.AddEnemy(enemy)
}
