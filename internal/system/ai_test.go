package system

import (
	"testing"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnemy(w *world, x, y float64, dir component.Direction, dirTimer, fireTimer float64) *component.Tank {
	e := component.NewTank(x, y, component.FactionEnemy)
	e.Rotate(dir)
	e.DirectionTimer = dirTimer
	e.FireTimer = fireTimer
	w.ecs.AddEnemy(e)
	return e
}

func TestEnemyAI_CountdownWithoutTurn(t *testing.T) {
	w := newWorld()
	e := withEnemy(w, 100, 100, component.DirRight, 10, 50)

	w.ai.Update()

	assert.Equal(t, 9.0, e.DirectionTimer)
	assert.Equal(t, 49.0, e.FireTimer)
	assert.Equal(t, component.DirRight, e.Direction)
	assert.Equal(t, 100+config.EnemySpeed, e.X)
	assert.Empty(t, w.rng.intn, "no random draws before a timer expires")
}

func TestEnemyAI_DirectionTimerReseedsFacingAndTimer(t *testing.T) {
	w := newWorld()
	w.rng.ints = []int{int(component.DirDown)}
	w.rng.floats = []float64{0.5}
	e := withEnemy(w, 100, 100, component.DirRight, 1, 50)

	w.ai.Update()

	assert.Equal(t, component.DirDown, e.Direction)
	assert.Equal(t, 120.0, e.DirectionTimer)
	assert.Equal(t, 100.0, e.X)
	assert.Equal(t, 100+config.EnemySpeed, e.Y)
	assert.Equal(t, []int{component.DirectionCount}, w.rng.intn)
}

func TestEnemyAI_TimerBounds(t *testing.T) {
	for _, f := range []float64{0, 0.999999} {
		w := newWorld()
		w.rng.floats = []float64{f}
		e := withEnemy(w, 100, 100, component.DirUp, 0, 0)

		w.ai.Update()

		assert.GreaterOrEqual(t, e.DirectionTimer, 60.0)
		assert.Less(t, e.DirectionTimer, 180.0)
		assert.GreaterOrEqual(t, e.FireTimer, 90.0)
		assert.Less(t, e.FireTimer, 180.0)
	}
}

func TestEnemyAI_VetoReseedsFacingOnly(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *world)
		x, y  float64
		dir   component.Direction
	}{
		{"arena edge", func(*world) {}, 0, 100, component.DirLeft},
		{"wall", func(w *world) {
			w.ecs.AddWall(component.NewWall(100, 116, component.MaterialSteel))
		}, 100, 100, component.DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			tt.setup(w)
			w.rng.ints = []int{int(component.DirRight)}
			e := withEnemy(w, tt.x, tt.y, tt.dir, 40, 50)

			w.ai.Update()

			assert.Equal(t, tt.x, e.X)
			assert.Equal(t, tt.y, e.Y)
			assert.Equal(t, component.DirRight, e.Direction)
			assert.Equal(t, 39.0, e.DirectionTimer, "a veto does not reseed the countdown")
		})
	}
}

func TestEnemyAI_FireTimerReseedsEvenWhenReloading(t *testing.T) {
	w := newWorld()
	w.rng.floats = []float64{0}
	e := withEnemy(w, 100, 100, component.DirUp, 50, 1)
	e.CanFire = false
	e.Cooldown = 5

	w.ai.Update()

	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, float64(config.FireTimerMin), e.FireTimer)
	assert.Equal(t, 4, e.Cooldown)
}

func TestEnemyAI_Fires(t *testing.T) {
	w := newWorld()
	w.rng.floats = []float64{0.5}
	e := withEnemy(w, 100, 100, component.DirUp, 50, 1)

	w.ai.Update()

	require.Len(t, w.ecs.Projectiles, 1)
	assert.Equal(t, component.FactionEnemy, w.ecs.Projectiles[0].Owner)
	assert.Equal(t, 135.0, e.FireTimer)
	assert.Equal(t, config.ReloadTicks-1, e.Cooldown)
}

func TestEnemyAI_SeededRunIsReproducible(t *testing.T) {
	run := func() []float64 {
		w := newWorld()
		w.ai.rng = utils.NewPRNGService(42)
		w.wave.StartWave(defs.DefaultWave())
		for i := 0; i < 600; i++ {
			w.ai.Update()
		}
		var out []float64
		for _, e := range w.ecs.Enemies {
			out = append(out, e.X, e.Y, e.DirectionTimer, e.FireTimer)
		}
		return out
	}
	assert.Equal(t, run(), run())
}
