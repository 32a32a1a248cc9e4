// internal/app/game.go
package app

import (
	"fmt"

	"go-battle-city/internal/component"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/system"
	"go-battle-city/internal/utils"
	"go-battle-city/pkg/render"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// Game — контроллер симуляции. Владеет состоянием (ECS) и системами и
// выполняет тик целиком. Game не предназначен для конкурентного использования:
// хост вызывает Update и Frame из одной горутины.
type Game struct {
	ECS             *entity.ECS
	Level           defs.Level
	Rng             utils.RandomSource
	EventDispatcher *event.Dispatcher

	CollisionSystem  *system.CollisionSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	PlayerSystem     *system.PlayerSystem
	EnemyAISystem    *system.EnemyAISystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	WaveSystem       *system.WaveSystem
	RenderSystem     *system.RenderSystem
	StatsSystem      *system.StatsSystem

	logger zerolog.Logger
	meter  metric.Meter
	seed   int64
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithSeed seeds the default random source. Zero means a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithRandomSource replaces the default random source. WithSeed is then ignored.
func WithRandomSource(rng utils.RandomSource) Option {
	return func(g *Game) { g.Rng = rng }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithDispatcher shares an event dispatcher with the host, so listeners can be
// subscribed before the first wave is announced.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// WithMeter sets the OpenTelemetry meter used by the stats system.
func WithMeter(m metric.Meter) Option {
	return func(g *Game) { g.meter = m }
}

// NewGame builds a game on the given level and starts the first round.
func NewGame(level defs.Level, opts ...Option) (*Game, error) {
	g := &Game{
		Level:  level,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if len(g.Level.Wave.Spawns) == 0 {
		g.Level.Wave = defs.DefaultWave()
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	if g.Rng == nil {
		prng := utils.NewPRNGService(g.seed)
		g.seed = prng.Seed()
		g.Rng = prng
	} else {
		g.seed = 0
	}

	ecs := entity.NewECS()
	g.ECS = ecs
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.CollisionSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.EventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.MovementSystem, g.CombatSystem)
	g.EnemyAISystem = system.NewEnemyAISystem(ecs, g.MovementSystem, g.CombatSystem, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, g.EventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.EnemyAISystem, g.EventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)

	stats, err := system.NewStatsSystem(g.EventDispatcher, g.meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats system: %w", err)
	}
	g.StatsSystem = stats

	g.resetRound()
	g.logger.Info().
		Str("level", g.Level.Name).
		Int("walls", len(ecs.Walls)).
		Int("enemies", len(ecs.Enemies)).
		Int64("seed", g.seed).
		Msg("game started")

	return g, nil
}

// Update runs one tick with the actions active in src. In GameOver or Win nothing is
// simulated and the only honored action is Restart.
func (g *Game) Update(src input.Source) {
	in := input.Capture(src)

	if g.ECS.Phase.Terminal() {
		if in.IsActionActive(input.Restart) {
			g.Restart()
		}
		return
	}

	g.ECS.Tick++
	g.PlayerSystem.Update(in)
	g.EnemyAISystem.Update()
	g.ProjectileSystem.Update()
	g.CollisionSystem.Resolve()
	g.StateSystem.Update()
}

// Restart starts a new round from the stored level. It returns false and changes nothing
// while a round is still being played.
func (g *Game) Restart() bool {
	if !g.ECS.Phase.Terminal() {
		return false
	}
	from := g.ECS.Phase
	g.resetRound()
	g.StateSystem.SetPhase(component.PhasePlaying)
	g.logger.Info().Stringer("from", from).Uint64("tick", g.ECS.Tick).Msg("round restarted")
	return true
}

// Frame returns the draw commands for the current state.
func (g *Game) Frame() render.Frame {
	return g.RenderSystem.BuildFrame()
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

func (g *Game) Lives() int {
	return g.ECS.Lives
}

// Seed returns the seed of the default random source, or zero when a custom source
// was injected.
func (g *Game) Seed() int64 {
	return g.seed
}

func (g *Game) Stats() system.Totals {
	return g.StatsSystem.Totals()
}

// Close detaches the game's listeners from a shared dispatcher. Stats stay readable.
func (g *Game) Close() {
	g.StatsSystem.Close()
}
