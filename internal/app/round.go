package app

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
)

// resetRound rebuilds everything a round starts with: lives, player, walls, base,
// enemies. Projectiles in flight are dropped. The phase is left to the caller.
func (g *Game) resetRound() {
	ecs := g.ECS
	ecs.Lives = config.InitialLives
	ecs.ClearProjectiles()

	ecs.ClearLevel()
	for _, w := range g.Level.BuildWalls() {
		ecs.AddWall(w)
	}
	ecs.Base = g.Level.BuildBase()

	ecs.SetPlayer(component.NewTank(config.PlayerSpawnX, config.PlayerSpawnY, component.FactionPlayer))
	g.WaveSystem.StartWave(g.Level.Wave)
}
