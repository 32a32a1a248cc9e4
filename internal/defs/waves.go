package defs

import "go-battle-city/internal/config"

// SpawnPoint — точка появления танка противника.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WaveDefinition описывает противников, появляющихся в начале раунда.
type WaveDefinition struct {
	Spawns []SpawnPoint `json:"spawns"`
}

// DefaultWave places config.EnemyCount tanks along the top of the arena.
func DefaultWave() WaveDefinition {
	spawns := make([]SpawnPoint, 0, config.EnemyCount)
	for i := 0; i < config.EnemyCount; i++ {
		spawns = append(spawns, SpawnPoint{
			X: config.EnemySpawnX + float64(i)*config.EnemySpawnStepX,
			Y: config.EnemySpawnY,
		})
	}
	return WaveDefinition{Spawns: spawns}
}
