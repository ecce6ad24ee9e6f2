// internal/state/state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	log     *slog.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(logger *slog.Logger) *StateMachine {
	return &StateMachine{log: logger}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.log.Debug("state changed", "state", stateName(newState))
		sm.current.Enter()
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func stateName(s State) string {
	switch s.(type) {
	case *MenuState:
		return "menu"
	case *GameState:
		return "playing"
	case *ChooserState:
		return "chooser"
	case *PauseState:
		return "paused"
	case *EndState:
		return "end"
	default:
		return "unknown"
	}
}
