package system

import (
	"testing"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(f render.Frame) []render.ColorTag {
	out := make([]render.ColorTag, 0, len(f.Rects))
	for _, r := range f.Rects {
		out = append(out, r.Color)
	}
	return out
}

func texts(f render.Frame) []string {
	out := make([]string, 0, len(f.Texts))
	for _, t := range f.Texts {
		out = append(out, t.Text)
	}
	return out
}

func populate(w *world) {
	w.ecs.AddWall(component.NewWall(0, 0, component.MaterialSteel))
	w.ecs.AddWall(component.NewWall(8, 0, component.MaterialBrick))
	w.ecs.Base = component.NewBase(248, 416)
	withPlayer(w, config.PlayerSpawnX, config.PlayerSpawnY)
	w.ecs.AddEnemy(component.NewTank(50, 32, component.FactionEnemy))
	w.ecs.AddProjectile(component.NewProjectile(60, 60, component.DirDown, component.FactionEnemy))
}

func TestBuildFrame_DrawOrder(t *testing.T) {
	w := newWorld()
	populate(w)

	f := w.render.BuildFrame()

	assert.Equal(t, []render.ColorTag{
		render.ColorSteel,
		render.ColorBrick,
		render.ColorBase,
		render.ColorPlayer,
		render.ColorEnemy,
		render.ColorProjectile,
	}, tags(f))
	assert.Equal(t, render.DrawRect{X: 248, Y: 416, Width: 16, Height: 16, Color: render.ColorBase}, f.Rects[2])
	assert.Equal(t, float64(config.ArenaWidth), f.Width)
	assert.Equal(t, []string{"Lives: 3", "Enemies: 1"}, texts(f))
}

func TestBuildFrame_HidesLostBaseAndPlayer(t *testing.T) {
	w := newWorld()
	populate(w)
	w.ecs.Base.Destroyed = true
	w.ecs.Lives = 0

	f := w.render.BuildFrame()

	assert.NotContains(t, tags(f), render.ColorBase)
	assert.NotContains(t, tags(f), render.ColorPlayer)
}

func TestBuildFrame_Banners(t *testing.T) {
	tests := []struct {
		phase  component.Phase
		banner string
		color  render.ColorTag
	}{
		{component.PhaseGameOver, "GAME OVER", render.ColorGameOver},
		{component.PhaseWin, "YOU WIN!", render.ColorWin},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			w := newWorld()
			w.ecs.Phase = tt.phase

			f := w.render.BuildFrame()

			require.Len(t, f.Texts, 4)
			assert.Equal(t, tt.banner, f.Texts[2].Text)
			assert.Equal(t, tt.color, f.Texts[2].Color)
			assert.True(t, f.Texts[2].Centered)
			assert.Equal(t, "Press R to Restart", f.Texts[3].Text)
			assert.Greater(t, f.Texts[3].Y, f.Texts[2].Y)
		})
	}
}
