// internal/state/menu_state.go
package state

import (
	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"
	"go-battle-city/pkg/render/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — заставка перед первой игрой.
type MenuState struct {
	sm       *StateMachine
	next     *GameState
	renderer *gfx.Renderer
}

func NewMenuState(sm *StateMachine, next *GameState, renderer *gfx.Renderer) *MenuState {
	return &MenuState{sm: sm, next: next, renderer: renderer}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.Draw(screen, render.Frame{
		Width:  config.ArenaWidth,
		Height: config.ArenaHeight,
		Texts: []render.TextOverlay{
			{Text: "BATTLE CITY", Y: config.BannerY, Color: render.ColorPlayer, Size: config.BannerFontSize, Centered: true},
			{Text: "Press Enter to Start", Y: config.BannerY + config.HintOffsetY, Color: render.ColorText, Size: config.HintFontSize, Centered: true},
		},
	})
}

func (m *MenuState) Exit() {}
