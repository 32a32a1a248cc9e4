package state

import (
	"go-battle-city/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBindings maps actions to ebiten keys: arrows or WASD, Space to fire, R to restart.
var DefaultBindings = map[input.Action][]ebiten.Key{
	input.MoveUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.MoveDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	input.MoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.MoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.Fire:      {ebiten.KeySpace},
	input.Restart:   {ebiten.KeyR},
}

// Keyboard is an input.Source over ebiten's keyboard state. It must be read from the
// ebiten Update goroutine.
type Keyboard struct {
	bindings map[input.Action][]ebiten.Key
}

func NewKeyboard(bindings map[input.Action][]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

func (k *Keyboard) IsActionActive(action input.Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

var _ input.Source = (*Keyboard)(nil)
