package component

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/geom"
)

// Material определяет, разрушается ли стена от попадания.
type Material string

const (
	MaterialBrick Material = "brick"
	MaterialSteel Material = "steel"
)

// Wall is a static obstacle. It blocks tanks and projectiles.
type Wall struct {
	ID        types.EntityID
	X, Y      float64
	Width     float64
	Height    float64
	Material  Material
	Destroyed bool
}

func NewWall(x, y float64, material Material) *Wall {
	return &Wall{
		X:        x,
		Y:        y,
		Width:    config.WallSize,
		Height:   config.WallSize,
		Material: material,
	}
}

func (w *Wall) Kind() Kind { return KindWall }

func (w *Wall) Bounds() geom.Rect {
	return geom.NewRect(w.X, w.Y, w.Width, w.Height)
}

// TakeDamage reports whether the hit destroys the wall. Only brick breaks.
func (w *Wall) TakeDamage() bool {
	return w.Material == MaterialBrick
}
