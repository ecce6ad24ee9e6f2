// internal/state/chooser_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-shooter/internal/app"
)

var _ State = (*ChooserState)(nil)

// ChooserState — симуляция стоит, игрок выбирает усиление.
type ChooserState struct {
	sm       *StateMachine
	previous *GameState
}

func NewChooserState(sm *StateMachine, previous *GameState) *ChooserState {
	return &ChooserState{sm: sm, previous: previous}
}

func (s *ChooserState) Enter() {
	s.previous.shared.Choices.SetOffer(s.previous.shared.Game.Offer())
}

func (s *ChooserState) Update(deltaTime float64) {
	game := s.previous.shared.Game
	index, ok := s.previous.shared.Choices.Update()
	if !ok || !game.Choose(index) {
		return
	}
	if game.Phase() == app.PhaseChoosing {
		s.previous.shared.Choices.SetOffer(game.Offer())
		return
	}
	s.sm.SetState(s.previous)
}

func (s *ChooserState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	game := s.previous.shared.Game
	s.previous.shared.Choices.Draw(screen, game.ECS.Powerups[game.PlayerID])
}

func (s *ChooserState) Exit() {}
