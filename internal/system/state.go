// internal/system/state.go
package system

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
)

// StateSystem проверяет условия окончания игры в конце тика.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Update moves a running game to GameOver or Win. GameOver wins the tie when both apply.
func (s *StateSystem) Update() {
	if s.ecs.Phase != component.PhasePlaying {
		return
	}
	switch {
	case s.ecs.Lives <= 0 || (s.ecs.Base != nil && s.ecs.Base.Destroyed):
		s.SetPhase(component.PhaseGameOver)
	case len(s.ecs.Enemies) == 0:
		s.SetPhase(component.PhaseWin)
	}
}

// SetPhase switches the phase and announces the change. Setting the current phase is a no-op.
func (s *StateSystem) SetPhase(phase component.Phase) {
	from := s.ecs.Phase
	if from == phase {
		return
	}
	s.ecs.Phase = phase
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{From: from, To: phase, Tick: s.ecs.Tick},
	})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
