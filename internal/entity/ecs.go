// internal/entity/ecs.go
package entity

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/types"
)

// ECS — всё состояние одной симуляции. Им владеет ровно один контроллер;
// наружу уходят только снимки для отрисовки.
//
// Живые наборы — срезы в порядке создания, поэтому обход детерминирован.
// Удаление: сущность помечается Destroyed, а Compact убирает помеченные
// после прохода. Во время обхода срезы не изменяются.
type ECS struct {
	Tick        uint64
	NextID      types.EntityID
	Player      *component.Tank
	Enemies     []*component.Tank
	Projectiles []*component.Projectile
	Walls       []*component.Wall
	Base        *component.Base
	Lives       int
	Phase       component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		Lives:  config.InitialLives,
		Phase:  component.PhasePlaying,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SetPlayer installs the player tank, assigning it an ID on first use.
func (ecs *ECS) SetPlayer(t *component.Tank) {
	if t.ID == 0 {
		t.ID = ecs.NewEntity()
	}
	ecs.Player = t
}

func (ecs *ECS) AddEnemy(t *component.Tank) types.EntityID {
	t.ID = ecs.NewEntity()
	ecs.Enemies = append(ecs.Enemies, t)
	return t.ID
}

func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p.ID
}

func (ecs *ECS) AddWall(w *component.Wall) types.EntityID {
	w.ID = ecs.NewEntity()
	ecs.Walls = append(ecs.Walls, w)
	return w.ID
}

// Tanks returns the player (when present) followed by the enemies, in a fresh slice.
func (ecs *ECS) Tanks() []*component.Tank {
	tanks := make([]*component.Tank, 0, len(ecs.Enemies)+1)
	if ecs.Player != nil {
		tanks = append(tanks, ecs.Player)
	}
	return append(tanks, ecs.Enemies...)
}

// Compact drops every entity marked Destroyed from the live sets, keeping order.
// The player and the base are never removed: the player respawns and a destroyed base
// stays in place as a flag.
func (ecs *ECS) Compact() {
	ecs.CompactProjectiles()
	ecs.Enemies = compact(ecs.Enemies, func(t *component.Tank) bool { return t.Destroyed })
	ecs.Walls = compact(ecs.Walls, func(w *component.Wall) bool { return w.Destroyed })
}

func (ecs *ECS) CompactProjectiles() {
	ecs.Projectiles = compact(ecs.Projectiles, func(p *component.Projectile) bool { return p.Destroyed })
}

// ClearProjectiles drops every projectile in flight.
func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = ecs.Projectiles[:0]
}

// ClearEnemies drops every enemy tank.
func (ecs *ECS) ClearEnemies() {
	ecs.Enemies = ecs.Enemies[:0]
}

// ClearLevel drops walls and the base.
func (ecs *ECS) ClearLevel() {
	ecs.Walls = ecs.Walls[:0]
	ecs.Base = nil
}

func compact[T any](items []T, dead func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if !dead(it) {
			out = append(out, it)
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
