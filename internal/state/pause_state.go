// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/input"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	actions := input.Poll()
	if actions.Pause || actions.Confirm {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	face := s.previous.shared.Fonts.Face(titleFontSize)
	drawCenteredTitle(screen, "Paused", face)
}

func (s *PauseState) Exit() {}

func drawCenteredTitle(screen *ebiten.Image, title string, face font.Face) {
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, config.ScreenWidth/2-b.Dx()/2, config.ScreenHeight/2, config.TextLightColor)
}
