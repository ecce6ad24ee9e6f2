// internal/state/end_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-shooter/internal/input"
)

// EndState — игрок погиб, показываем итоги.
type EndState struct {
	sm       *StateMachine
	previous *GameState
}

func NewEndState(sm *StateMachine, previous *GameState) *EndState {
	return &EndState{sm: sm, previous: previous}
}

func (s *EndState) Enter() {}

func (s *EndState) Update(deltaTime float64) {
	actions := input.Poll()
	if actions.Confirm || s.previous.shared.Stats.Continue.Clicked() {
		s.sm.SetState(NewMenuState(s.sm, s.previous.shared))
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	s.previous.shared.World.Draw(screen)
	s.previous.shared.Stats.Draw(screen, s.previous.shared.Game.Stats())
}

func (s *EndState) Exit() {}
