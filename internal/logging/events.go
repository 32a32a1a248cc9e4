package logging

import (
	"go-battle-city/internal/event"

	"github.com/rs/zerolog"
)

// EventLogger пишет события симуляции в лог: смену фазы и начало волны на info,
// всё остальное на debug.
type EventLogger struct {
	logger     zerolog.Logger
	dispatcher *event.Dispatcher
	subs       []event.Subscription
}

// NewEventLogger subscribes a logger to every simulation event.
func NewEventLogger(logger zerolog.Logger, d *event.Dispatcher) *EventLogger {
	l := &EventLogger{
		logger:     logger.With().Str("component", "events").Logger(),
		dispatcher: d,
	}
	l.subs = d.SubscribeAll(l,
		event.ProjectileFired,
		event.PlayerHit,
		event.EnemyDestroyed,
		event.WallDestroyed,
		event.ProjectilesClash,
		event.BaseDestroyed,
		event.PhaseChanged,
		event.WaveStarted,
	)
	return l
}

// Close detaches the logger from the dispatcher.
func (l *EventLogger) Close() {
	l.dispatcher.UnsubscribeAll(l.subs)
	l.subs = nil
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.PhaseChangedData:
		l.logger.Info().
			Stringer("from", data.From).
			Stringer("to", data.To).
			Uint64("tick", data.Tick).
			Msg("phase changed")
	case event.WaveStartedData:
		l.logger.Info().Int("enemies", data.Enemies).Msg("wave started")
	case event.ProjectileFiredData:
		l.logger.Debug().
			Str("event", string(e.Type)).
			Uint64("projectile", uint64(data.ProjectileID)).
			Uint64("shooter", uint64(data.ShooterID)).
			Stringer("owner", data.Owner).
			Send()
	case event.HitData:
		l.logger.Debug().
			Str("event", string(e.Type)).
			Uint64("projectile", uint64(data.ProjectileID)).
			Uint64("target", uint64(data.TargetID)).
			Int("lives", data.LivesLeft).
			Send()
	case event.ClashData:
		l.logger.Debug().
			Str("event", string(e.Type)).
			Uint64("first", uint64(data.First)).
			Uint64("second", uint64(data.Second)).
			Send()
	default:
		l.logger.Debug().Str("event", string(e.Type)).Send()
	}
}
