// internal/state/game_state.go
package state

import (
	"fmt"

	"go-battle-city/internal/input"
	"go-battle-city/internal/interfaces"
	"go-battle-city/pkg/render/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — идёт игра: каждый тик ebiten продвигает симуляцию на один шаг.
type GameState struct {
	sm       *StateMachine
	game     interfaces.Simulation
	source   input.Source
	renderer *gfx.Renderer
	showFPS  bool
}

func NewGameState(sm *StateMachine, game interfaces.Simulation, source input.Source, renderer *gfx.Renderer) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		source:   source,
		renderer: renderer,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}

	g.game.Update(g.source)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Frame())
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *GameState) Exit() {}
