// internal/system/render.go
package system

import (
	"fmt"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/pkg/render"
)

// RenderSystem собирает кадр для отрисовки. Состояние только читается.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// BuildFrame returns the draw commands for the current state: walls, base, player,
// enemies, projectiles, then the HUD and, in a terminal phase, the banner.
func (s *RenderSystem) BuildFrame() render.Frame {
	frame := render.Frame{
		Width:  config.ArenaWidth,
		Height: config.ArenaHeight,
		Rects:  make([]render.DrawRect, 0, len(s.ecs.Walls)+len(s.ecs.Enemies)+len(s.ecs.Projectiles)+2),
	}

	for _, w := range s.ecs.Walls {
		tag := render.ColorBrick
		if w.Material == component.MaterialSteel {
			tag = render.ColorSteel
		}
		frame.Rects = append(frame.Rects, rectOf(w, tag))
	}
	if s.ecs.Base.Intact() {
		frame.Rects = append(frame.Rects, rectOf(s.ecs.Base, render.ColorBase))
	}
	if s.ecs.Player != nil && s.ecs.Lives > 0 {
		frame.Rects = append(frame.Rects, rectOf(s.ecs.Player, render.ColorPlayer))
	}
	for _, e := range s.ecs.Enemies {
		frame.Rects = append(frame.Rects, rectOf(e, render.ColorEnemy))
	}
	for _, p := range s.ecs.Projectiles {
		frame.Rects = append(frame.Rects, rectOf(p, render.ColorProjectile))
	}

	frame.Texts = s.hud()
	return frame
}

func (s *RenderSystem) hud() []render.TextOverlay {
	texts := []render.TextOverlay{
		{
			Text:  fmt.Sprintf("Lives: %d", s.ecs.Lives),
			X:     config.HUDLivesX,
			Y:     config.HUDLivesY,
			Color: render.ColorText,
			Size:  config.HUDFontSize,
		},
		{
			Text:  fmt.Sprintf("Enemies: %d", len(s.ecs.Enemies)),
			X:     config.HUDEnemiesX,
			Y:     config.HUDEnemiesY,
			Color: render.ColorText,
			Size:  config.HUDFontSize,
		},
	}

	var banner string
	var tag render.ColorTag
	switch s.ecs.Phase {
	case component.PhaseGameOver:
		banner, tag = "GAME OVER", render.ColorGameOver
	case component.PhaseWin:
		banner, tag = "YOU WIN!", render.ColorWin
	default:
		return texts
	}

	return append(texts,
		render.TextOverlay{Text: banner, Y: config.BannerY, Color: tag, Size: config.BannerFontSize, Centered: true},
		render.TextOverlay{Text: "Press R to Restart", Y: config.BannerY + config.HintOffsetY, Color: render.ColorText, Size: config.HintFontSize, Centered: true},
	)
}

func rectOf(c component.Collider, tag render.ColorTag) render.DrawRect {
	b := c.Bounds()
	return render.DrawRect{X: b.X, Y: b.Y, Width: b.W, Height: b.H, Color: tag}
}
