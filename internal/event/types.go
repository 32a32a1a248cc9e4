// internal/event/types.go
package event

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/types"
)

const (
	ProjectileFired  EventType = "ProjectileFired"  // Танк выстрелил
	PlayerHit        EventType = "PlayerHit"        // Игрок потерял жизнь
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен
	WallDestroyed    EventType = "WallDestroyed"    // Кирпичная стена разрушена
	ProjectilesClash EventType = "ProjectilesClash" // Снаряды разных сторон столкнулись
	BaseDestroyed    EventType = "BaseDestroyed"    // База уничтожена
	PhaseChanged     EventType = "PhaseChanged"
	WaveStarted      EventType = "WaveStarted"
)

// ProjectileFiredData is the payload of ProjectileFired.
type ProjectileFiredData struct {
	ProjectileID types.EntityID
	ShooterID    types.EntityID
	Owner        component.Faction
}

// HitData is the payload of PlayerHit, EnemyDestroyed and WallDestroyed.
type HitData struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID
	LivesLeft    int
}

// ClashData is the payload of ProjectilesClash.
type ClashData struct {
	First, Second types.EntityID
}

// PhaseChangedData is the payload of PhaseChanged.
type PhaseChangedData struct {
	From, To component.Phase
	Tick     uint64
}

// WaveStartedData is the payload of WaveStarted.
type WaveStartedData struct {
	Enemies int
}
