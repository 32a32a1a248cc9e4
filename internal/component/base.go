package component

import (
	"go-battle-city/internal/config"
	"go-battle-city/pkg/geom"
)

// Base — защищаемый объект. Уничтожается первым же попаданием и больше не восстанавливается.
type Base struct {
	X, Y      float64
	Width     float64
	Height    float64
	Destroyed bool
}

func NewBase(x, y float64) *Base {
	return &Base{
		X:      x,
		Y:      y,
		Width:  config.BaseSize,
		Height: config.BaseSize,
	}
}

func (b *Base) Kind() Kind { return KindBase }

func (b *Base) Bounds() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.Width, b.Height)
}

// TakeDamage marks the base destroyed. Callers skip bases that are already destroyed.
func (b *Base) TakeDamage() {
	b.Destroyed = true
}

// Intact reports whether the base exists and still takes part in collisions.
func (b *Base) Intact() bool {
	return b != nil && !b.Destroyed
}
