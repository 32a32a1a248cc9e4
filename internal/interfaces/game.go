package interfaces

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/input"
	"go-battle-city/pkg/render"
)

// Simulation — то, что хосту нужно от игры: шаг, кадр и текущая фаза.
type Simulation interface {
	Update(src input.Source)
	Frame() render.Frame
	Phase() component.Phase
}
