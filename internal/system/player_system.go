// internal/system/player_system.go
package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/input"
)

// directionBindings is checked in order; the first active action wins.
var directionBindings = []struct {
	action input.Action
	dir    component.Direction
}{
	{input.MoveUp, component.DirUp},
	{input.MoveDown, component.DirDown},
	{input.MoveLeft, component.DirLeft},
	{input.MoveRight, component.DirRight},
}

// PlayerSystem отвечает за танк игрока: поворот, движение, выстрел и перезарядку.
type PlayerSystem struct {
	ecs      *entity.ECS
	movement *MovementSystem
	combat   *CombatSystem
}

func NewPlayerSystem(ecs *entity.ECS, movement *MovementSystem, combat *CombatSystem) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, movement: movement, combat: combat}
}

func (s *PlayerSystem) Update(src input.Source) {
	player := s.ecs.Player
	if player == nil {
		return
	}

	oldX, oldY := player.X, player.Y
	if dir, ok := PlayerDirection(src); ok {
		player.Rotate(dir)
		player.Step()
	}

	s.movement.ClampToArena(player)
	if s.movement.Blocked(player) {
		player.SetPosition(oldX, oldY)
	}

	if src.IsActionActive(input.Fire) {
		s.combat.TryFire(player)
	}

	player.UpdateCooldown()
}

// PlayerDirection returns the direction requested by src. Only one direction is honored
// per tick, in the order up, down, left, right.
func PlayerDirection(src input.Source) (component.Direction, bool) {
	for _, b := range directionBindings {
		if src.IsActionActive(b.action) {
			return b.dir, true
		}
	}
	return 0, false
}
