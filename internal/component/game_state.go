package component

// Phase — верхнеуровневое состояние симуляции
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	}
	return "unknown"
}

// Terminal reports whether the phase ends a round and accepts a restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}
