// internal/system/projectile.go
package system

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
)

// ProjectileSystem двигает снаряды и убирает вылетевшие за арену.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for _, p := range s.ecs.Projectiles {
		if p.Destroyed {
			continue
		}
		p.Advance()
		if p.OffArena(config.ArenaWidth, config.ArenaHeight) {
			p.Destroyed = true
		}
	}
	s.ecs.CompactProjectiles()
}
