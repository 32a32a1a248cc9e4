package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTicks is how long a terminal key press counts as held.
// Terminals report presses and auto-repeat but never releases.
const DefaultHoldTicks = 8

// Terminal turns tcell key events into held actions. HandleEvent may be called from the
// event-polling goroutine while the game loop calls Tick and IsActionActive.
type Terminal struct {
	mu        sync.Mutex
	holdTicks int
	remaining map[Action]int
	quit      bool
}

func NewTerminal(holdTicks int) *Terminal {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Terminal{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// HandleEvent records a key press. It returns false for events it does not map.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	action, ok := terminalAction(kev)
	if !ok {
		if kev.Key() == tcell.KeyEscape || kev.Key() == tcell.KeyCtrlC || kev.Rune() == 'q' {
			t.mu.Lock()
			t.quit = true
			t.mu.Unlock()
			return true
		}
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if isMove(action) {
		// только одно направление удерживается одновременно
		for _, a := range []Action{MoveUp, MoveDown, MoveLeft, MoveRight} {
			delete(t.remaining, a)
		}
	}
	t.remaining[action] = t.holdTicks
	return true
}

// Tick ages every held action by one simulation tick.
func (t *Terminal) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for a, n := range t.remaining {
		if n <= 1 {
			delete(t.remaining, a)
			continue
		}
		t.remaining[a] = n - 1
	}
}

func (t *Terminal) IsActionActive(action Action) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining[action] > 0
}

// QuitRequested reports whether Escape, Ctrl-C or q was pressed.
func (t *Terminal) QuitRequested() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}

func isMove(a Action) bool {
	return a == MoveUp || a == MoveDown || a == MoveLeft || a == MoveRight
}

func terminalAction(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return MoveUp, true
	case tcell.KeyDown:
		return MoveDown, true
	case tcell.KeyLeft:
		return MoveLeft, true
	case tcell.KeyRight:
		return MoveRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return MoveUp, true
		case 's', 'S':
			return MoveDown, true
		case 'a', 'A':
			return MoveLeft, true
		case 'd', 'D':
			return MoveRight, true
		case ' ':
			return Fire, true
		case 'r', 'R':
			return Restart, true
		}
	}
	return 0, false
}
