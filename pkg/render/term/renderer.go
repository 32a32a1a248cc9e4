// Package term draws a render.Frame on a character terminal through tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-battle-city/pkg/render"
)

// Одна клетка терминала покрывает CellWidth×CellHeight единиц арены.
// Символы примерно вдвое выше ширины, поэтому клетка 8×16.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Canvas is the part of tcell.Screen the renderer writes to.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer рисует кадр клетками с цветным фоном. Строка 0 отдана под HUD,
// арена начинается со строки 1.
type Renderer struct {
	palette render.Palette
}

func NewRenderer(palette render.Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Columns and Rows return the terminal size needed to show a whole frame.
func Columns(f render.Frame) int { return int(math.Ceil(f.Width / CellWidth)) }
func Rows(f render.Frame) int    { return int(math.Ceil(f.Height/CellHeight)) + 1 }

// Draw paints f onto c. Cells outside the canvas are skipped. The caller shows the screen.
func (r *Renderer) Draw(c Canvas, f render.Frame) {
	width, height := c.Size()
	bg := tcell.StyleDefault.Background(r.tcellColor(render.ColorBackground))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.SetContent(x, y, ' ', nil, bg)
		}
	}

	for _, rect := range f.Rects {
		r.fillRect(c, rect, width, height)
	}

	hudX := 0
	for _, t := range f.Texts {
		style := bg.Foreground(r.tcellColor(t.Color)).Bold(t.Centered)
		if t.Centered {
			row := 1 + int(t.Y/CellHeight)
			col := (Columns(f) - len(t.Text)) / 2
			putString(c, col, row, t.Text, style, width, height)
			continue
		}
		// HUD в строку 0, по порядку слева направо.
		putString(c, hudX, 0, t.Text, style, width, height)
		hudX += len(t.Text) + 2
	}
}

func (r *Renderer) fillRect(c Canvas, rect render.DrawRect, width, height int) {
	style := tcell.StyleDefault.Background(r.tcellColor(rect.Color))
	x0, x1 := cellSpan(rect.X, rect.Width, CellWidth)
	y0, y1 := cellSpan(rect.Y, rect.Height, CellHeight)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= width || y+1 < 1 || y+1 >= height {
				continue
			}
			c.SetContent(x, y+1, ' ', nil, style)
		}
	}
}

// cellSpan returns the first and last cell a segment covers. A segment smaller than a
// cell still takes the cell holding its center.
func cellSpan(pos, size, cell float64) (int, int) {
	if size < cell {
		i := int(math.Floor((pos + size/2) / cell))
		return i, i
	}
	first := int(math.Floor(pos / cell))
	last := int(math.Ceil((pos+size)/cell)) - 1
	return first, last
}

func putString(c Canvas, x, y int, s string, style tcell.Style, width, height int) {
	if y < 0 || y >= height {
		return
	}
	for i, ch := range []rune(s) {
		if x+i < 0 || x+i >= width {
			continue
		}
		c.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) tcellColor(tag render.ColorTag) tcell.Color {
	return rgb(r.palette.Color(tag))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
