// Package input maps logical game actions to whatever device a host polls.
// The simulation only ever asks whether an action is active this tick.
package input

// Action — логическое действие игрока.
type Action int

const (
	MoveUp Action = iota
	MoveDown
	MoveLeft
	MoveRight
	Fire
	Restart
)

// Actions lists every action in declaration order.
var Actions = []Action{MoveUp, MoveDown, MoveLeft, MoveRight, Fire, Restart}

func (a Action) String() string {
	switch a {
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Fire:
		return "fire"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// Source answers whether an action is held during the current tick.
type Source interface {
	IsActionActive(action Action) bool
}

// Snapshot is a fixed set of active actions. It is what tests and replays feed the
// simulation, and what the device-backed sources are captured into between ticks.
type Snapshot map[Action]bool

// NewSnapshot returns a snapshot with the given actions active.
func NewSnapshot(active ...Action) Snapshot {
	s := make(Snapshot, len(active))
	for _, a := range active {
		s[a] = true
	}
	return s
}

func (s Snapshot) IsActionActive(action Action) bool {
	return s[action]
}

// Capture freezes the current state of src so the tick reads a consistent view.
func Capture(src Source) Snapshot {
	s := make(Snapshot, len(Actions))
	if src == nil {
		return s
	}
	for _, a := range Actions {
		if src.IsActionActive(a) {
			s[a] = true
		}
	}
	return s
}

// None is a source with nothing pressed.
var None Source = Snapshot(nil)
