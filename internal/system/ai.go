package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/utils"
)

// EnemyAISystem управляет танками противника по двум независимым таймерам:
// смена направления и решение о выстреле.
type EnemyAISystem struct {
	ecs      *entity.ECS
	movement *MovementSystem
	combat   *CombatSystem
	rng      utils.RandomSource
}

func NewEnemyAISystem(ecs *entity.ECS, movement *MovementSystem, combat *CombatSystem, rng utils.RandomSource) *EnemyAISystem {
	return &EnemyAISystem{
		ecs:      ecs,
		movement: movement,
		combat:   combat,
		rng:      rng,
	}
}

func (s *EnemyAISystem) Update() {
	for _, enemy := range s.ecs.Enemies {
		if enemy.Destroyed {
			continue
		}
		s.steer(enemy)
		s.shoot(enemy)
		enemy.UpdateCooldown()
	}
}

func (s *EnemyAISystem) steer(enemy *component.Tank) {
	oldX, oldY := enemy.X, enemy.Y

	enemy.DirectionTimer--
	if enemy.DirectionTimer <= 0 {
		enemy.Rotate(s.randomDirection())
		enemy.DirectionTimer = utils.RangeFloat(s.rng, config.DirectionTimerMin, config.DirectionTimerSpan)
	}

	enemy.Step()

	// Упёрся: откат и новое направление. Таймер смены направления не трогаем.
	if !s.movement.InArena(enemy) || s.movement.Blocked(enemy) {
		enemy.SetPosition(oldX, oldY)
		enemy.Rotate(s.randomDirection())
	}
}

func (s *EnemyAISystem) shoot(enemy *component.Tank) {
	enemy.FireTimer--
	if enemy.FireTimer > 0 {
		return
	}
	s.combat.TryFire(enemy)
	enemy.FireTimer = utils.RangeFloat(s.rng, config.FireTimerMin, config.FireTimerSpan)
}

func (s *EnemyAISystem) randomDirection() component.Direction {
	return component.Direction(s.rng.Intn(component.DirectionCount))
}

// ResetTimers seeds a freshly spawned enemy's decision timers.
func (s *EnemyAISystem) ResetTimers(enemy *component.Tank) {
	enemy.DirectionTimer = utils.RangeFloat(s.rng, config.DirectionTimerMin, config.SpawnDirectionTimerSpan)
	enemy.FireTimer = utils.RangeFloat(s.rng, config.FireTimerMin, config.SpawnFireTimerSpan)
}
