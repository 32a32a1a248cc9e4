// internal/system/collision.go
package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/pkg/geom"
)

// CollisionSystem находит пересечения за тик и применяет правила столкновений.
//
// Фазы идут в фиксированном порядке: снаряд–танк, снаряд–стена, снаряд–снаряд,
// снаряд–база. Снаряд, израсходованный в одной фазе, сразу помечается Destroyed и
// дальше не участвует; наборы уплотняются в конце каждой фазы.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Resolve runs every resolution phase once.
func (s *CollisionSystem) Resolve() {
	s.resolveProjectileTank()
	s.resolveProjectileWall()
	s.resolveProjectileProjectile()
	s.resolveProjectileBase()
}

// TankBlocked reports whether a tank occupying r would overlap any live wall.
func (s *CollisionSystem) TankBlocked(r geom.Rect) bool {
	for _, w := range s.ecs.Walls {
		if !w.Destroyed && geom.Overlaps(r, w.Bounds()) {
			return true
		}
	}
	return false
}

// resolveProjectileTank проверяет снаряды против танков в их положении на начало фазы:
// возрождение игрока после первого попадания не спасает его от остальных снарядов.
func (s *CollisionSystem) resolveProjectileTank() {
	tanks := s.ecs.Tanks()
	bounds := make([]geom.Rect, len(tanks))
	for i, tank := range tanks {
		bounds[i] = tank.Bounds()
	}

	for _, p := range s.ecs.Projectiles {
		if p.Destroyed {
			continue
		}
		for i, tank := range tanks {
			if tank.Destroyed || tank.Faction == p.Owner {
				continue
			}
			if !geom.Overlaps(p.Bounds(), bounds[i]) {
				continue
			}
			p.Destroyed = true
			if tank == s.ecs.Player {
				s.hitPlayer(p)
			} else {
				tank.Destroyed = true
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyDestroyed,
					Data: event.HitData{ProjectileID: p.ID, TargetID: tank.ID, LivesLeft: s.ecs.Lives},
				})
			}
			break
		}
	}
	s.ecs.Compact()
}

// hitPlayer takes a life and puts the player back on the spawn point.
// Lives never drop below zero.
func (s *CollisionSystem) hitPlayer(p *component.Projectile) {
	player := s.ecs.Player
	if s.ecs.Lives > 0 {
		s.ecs.Lives--
	}
	player.SetPosition(config.PlayerSpawnX, config.PlayerSpawnY)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.HitData{ProjectileID: p.ID, TargetID: player.ID, LivesLeft: s.ecs.Lives},
	})
}

func (s *CollisionSystem) resolveProjectileWall() {
	for _, p := range s.ecs.Projectiles {
		if p.Destroyed {
			continue
		}
		for _, w := range s.ecs.Walls {
			if w.Destroyed || !component.Collide(p, w) {
				continue
			}
			p.Destroyed = true
			if w.TakeDamage() {
				w.Destroyed = true
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.WallDestroyed,
					Data: event.HitData{ProjectileID: p.ID, TargetID: w.ID, LivesLeft: s.ecs.Lives},
				})
			}
			break
		}
	}
	s.ecs.Compact()
}

func (s *CollisionSystem) resolveProjectileProjectile() {
	projectiles := s.ecs.Projectiles
	for i, a := range projectiles {
		if a.Destroyed {
			continue
		}
		for _, b := range projectiles[i+1:] {
			if b.Destroyed || a.Owner == b.Owner || !component.Collide(a, b) {
				continue
			}
			a.Destroyed = true
			b.Destroyed = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ProjectilesClash,
				Data: event.ClashData{First: a.ID, Second: b.ID},
			})
			break
		}
	}
	s.ecs.CompactProjectiles()
}

func (s *CollisionSystem) resolveProjectileBase() {
	base := s.ecs.Base
	if !base.Intact() {
		return
	}
	for _, p := range s.ecs.Projectiles {
		if p.Destroyed || !component.Collide(p, base) {
			continue
		}
		p.Destroyed = true
		if !base.Destroyed {
			base.TakeDamage()
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.BaseDestroyed,
				Data: event.HitData{ProjectileID: p.ID, LivesLeft: s.ecs.Lives},
			})
		}
	}
	s.ecs.CompactProjectiles()
}
