// internal/system/movement.go
package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/pkg/geom"
)

// MovementSystem валидирует перемещения танков: границы арены и стены.
// Сам танк двигается методами Move/Step; здесь только проверка и откат.
type MovementSystem struct {
	collision *CollisionSystem
	arena     geom.Rect
}

func NewMovementSystem(collision *CollisionSystem) *MovementSystem {
	return &MovementSystem{
		collision: collision,
		arena:     geom.NewRect(0, 0, config.ArenaWidth, config.ArenaHeight),
	}
}

// InArena reports whether the tank lies fully inside the arena.
func (s *MovementSystem) InArena(t *component.Tank) bool {
	return s.arena.Contains(t.Bounds())
}

// ClampToArena pushes the tank back inside the arena on both axes.
func (s *MovementSystem) ClampToArena(t *component.Tank) {
	t.X = geom.Clamp(t.X, s.arena.X, s.arena.Right()-t.Width)
	t.Y = geom.Clamp(t.Y, s.arena.Y, s.arena.Bottom()-t.Height)
}

// Blocked reports whether the tank overlaps any wall at its current position.
func (s *MovementSystem) Blocked(t *component.Tank) bool {
	return s.collision.TankBlocked(t.Bounds())
}
