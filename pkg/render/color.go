// pkg/render/color.go
package render

import "image/color"

// ColorTag is the semantic color of a draw command. Hosts map tags to real colors.
type ColorTag uint8

const (
	ColorBackground ColorTag = iota
	ColorPlayer
	ColorEnemy
	ColorProjectile
	ColorBrick
	ColorSteel
	ColorBase
	ColorText
	ColorGameOver
	ColorWin
)

func (c ColorTag) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorPlayer:
		return "player"
	case ColorEnemy:
		return "enemy"
	case ColorProjectile:
		return "projectile"
	case ColorBrick:
		return "brick"
	case ColorSteel:
		return "steel"
	case ColorBase:
		return "base"
	case ColorText:
		return "text"
	case ColorGameOver:
		return "game_over"
	case ColorWin:
		return "win"
	}
	return "unknown"
}

// Palette holds all the color definitions needed to draw a frame.
type Palette map[ColorTag]color.RGBA

// Color resolves a tag, falling back to opaque magenta so a missing entry is visible.
func (p Palette) Color(tag ColorTag) color.RGBA {
	if c, ok := p[tag]; ok {
		return c
	}
	return color.RGBA{255, 0, 255, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
