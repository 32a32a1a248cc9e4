package system

import (
	"context"
	"fmt"

	"go-battle-city/internal/component"
	"go-battle-city/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-battle-city/internal/system"

// Totals — счётчики за всё время работы процесса, переживают рестарт.
type Totals struct {
	ProjectilesFired int
	EnemiesDestroyed int
	WallsDestroyed   int
	PlayerHits       int
	GamesWon         int
	GamesLost        int
}

// StatsSystem слушает события симуляции и ведёт статистику: локальные Totals
// и счётчики OpenTelemetry. Без настроенного провайдера метрики уходят в no-op.
type StatsSystem struct {
	totals Totals

	eventDispatcher *event.Dispatcher
	subs            []event.Subscription

	fired    metric.Int64Counter
	enemies  metric.Int64Counter
	walls    metric.Int64Counter
	hits     metric.Int64Counter
	finished metric.Int64Counter
}

// NewStatsSystem subscribes to the dispatcher. A nil meter means the global OTel meter.
func NewStatsSystem(eventDispatcher *event.Dispatcher, m metric.Meter) (*StatsSystem, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	s := &StatsSystem{eventDispatcher: eventDispatcher}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&s.fired, "battlecity.projectiles.fired", "Projectiles fired by any tank"},
		{&s.enemies, "battlecity.enemies.destroyed", "Enemy tanks destroyed"},
		{&s.walls, "battlecity.walls.destroyed", "Brick walls destroyed"},
		{&s.hits, "battlecity.player.hits", "Hits taken by the player"},
		{&s.finished, "battlecity.games.finished", "Games that reached GameOver or Win"},
	}
	for _, c := range counters {
		counter, err := m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
		*c.dst = counter
	}

	s.subs = eventDispatcher.SubscribeAll(s,
		event.ProjectileFired,
		event.EnemyDestroyed,
		event.WallDestroyed,
		event.PlayerHit,
		event.PhaseChanged,
	)
	return s, nil
}

// Close stops counting. Totals stay readable.
func (s *StatsSystem) Close() {
	s.eventDispatcher.UnsubscribeAll(s.subs)
	s.subs = nil
}

func (s *StatsSystem) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.ProjectileFired:
		s.totals.ProjectilesFired++
		owner := component.FactionPlayer
		if data, ok := e.Data.(event.ProjectileFiredData); ok {
			owner = data.Owner
		}
		s.fired.Add(ctx, 1, metric.WithAttributes(attribute.String("owner", owner.String())))
	case event.EnemyDestroyed:
		s.totals.EnemiesDestroyed++
		s.enemies.Add(ctx, 1)
	case event.WallDestroyed:
		s.totals.WallsDestroyed++
		s.walls.Add(ctx, 1)
	case event.PlayerHit:
		s.totals.PlayerHits++
		s.hits.Add(ctx, 1)
	case event.PhaseChanged:
		data, ok := e.Data.(event.PhaseChangedData)
		if !ok {
			return
		}
		switch data.To {
		case component.PhaseWin:
			s.totals.GamesWon++
		case component.PhaseGameOver:
			s.totals.GamesLost++
		default:
			return
		}
		s.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", data.To.String())))
	}
}

// Totals returns a copy of the running totals.
func (s *StatsSystem) Totals() Totals {
	return s.totals
}
