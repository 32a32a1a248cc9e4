package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
)

// CombatSystem выпускает снаряды в мир от имени танков.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// TryFire asks the tank to fire and registers the projectile. It returns nil while the
// tank is reloading.
func (s *CombatSystem) TryFire(shooter *component.Tank) *component.Projectile {
	p := shooter.Fire()
	if p == nil {
		return nil
	}
	id := s.ecs.AddProjectile(p)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileFiredData{ProjectileID: id, ShooterID: shooter.ID, Owner: shooter.Faction},
	})
	return p
}
