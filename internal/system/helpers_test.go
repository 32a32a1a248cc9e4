package system

import (
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
)

// scriptedRand replays fixed values. When a script runs out the last value repeats.
type scriptedRand struct {
	ints   []int
	floats []float64
	intn   []int // n passed to each Intn call
}

func (r *scriptedRand) Intn(n int) int {
	r.intn = append(r.intn, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

// recorder collects every dispatched event of the subscribed types.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rec        *recorder
	rng        *scriptedRand

	collision  *CollisionSystem
	movement   *MovementSystem
	combat     *CombatSystem
	player     *PlayerSystem
	ai         *EnemyAISystem
	projectile *ProjectileSystem
	state      *StateSystem
	wave       *WaveSystem
	render     *RenderSystem
}

func newWorld() *world {
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
		rng:        &scriptedRand{},
	}
	w.dispatcher.SubscribeAll(w.rec,
		event.ProjectileFired,
		event.PlayerHit,
		event.EnemyDestroyed,
		event.WallDestroyed,
		event.ProjectilesClash,
		event.BaseDestroyed,
		event.PhaseChanged,
		event.WaveStarted,
	)

	w.collision = NewCollisionSystem(w.ecs, w.dispatcher)
	w.movement = NewMovementSystem(w.collision)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher)
	w.player = NewPlayerSystem(w.ecs, w.movement, w.combat)
	w.ai = NewEnemyAISystem(w.ecs, w.movement, w.combat, w.rng)
	w.projectile = NewProjectileSystem(w.ecs)
	w.state = NewStateSystem(w.ecs, w.dispatcher)
	w.wave = NewWaveSystem(w.ecs, w.ai, w.dispatcher)
	w.render = NewRenderSystem(w.ecs)
	return w
}
