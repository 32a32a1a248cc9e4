// Package gfx draws a render.Frame on an ebiten image.
package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-battle-city/pkg/render"
)

// FaceSource returns a font face for a text size in pixels.
type FaceSource interface {
	Face(size float64) font.Face
}

// Renderer переводит кадр в вызовы ebiten: прямоугольники через vector,
// текст через text. Позиция текста задаёт базовую линию.
type Renderer struct {
	palette render.Palette
	fonts   FaceSource
}

func NewRenderer(palette render.Palette, fonts FaceSource) *Renderer {
	return &Renderer{palette: palette, fonts: fonts}
}

// Draw clears screen with the background color and draws the frame on top.
func (r *Renderer) Draw(screen *ebiten.Image, f render.Frame) {
	r.draw(screen, f, false)
}

// DrawDimmed draws the frame at half brightness with caption centered on top.
// Used while the game is paused.
func (r *Renderer) DrawDimmed(screen *ebiten.Image, f render.Frame, caption string, size float64) {
	r.draw(screen, f, true)
	r.drawText(screen, f, render.TextOverlay{
		Text:     caption,
		Y:        f.Height / 2,
		Color:    render.ColorText,
		Size:     size,
		Centered: true,
	}, false)
}

func (r *Renderer) draw(screen *ebiten.Image, f render.Frame, dim bool) {
	screen.Fill(r.color(render.ColorBackground, dim))

	for _, rect := range f.Rects {
		vector.DrawFilledRect(screen,
			float32(rect.X), float32(rect.Y),
			float32(rect.Width), float32(rect.Height),
			r.color(rect.Color, dim), false)
	}

	for _, t := range f.Texts {
		r.drawText(screen, f, t, dim)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, f render.Frame, t render.TextOverlay, dim bool) {
	face := r.fonts.Face(t.Size)
	x := int(t.X)
	if t.Centered {
		bounds := text.BoundString(face, t.Text)
		x = (int(f.Width) - bounds.Dx()) / 2
	}
	text.Draw(screen, t.Text, face, x, int(t.Y), r.color(t.Color, dim))
}

func (r *Renderer) color(tag render.ColorTag, dim bool) color.RGBA {
	c := r.palette.Color(tag)
	if dim {
		return render.DarkenColor(c)
	}
	return c
}
