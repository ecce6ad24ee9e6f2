// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/ui"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm     *StateMachine
	shared *Shared
	start  *ui.Button
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	rect := image.Rect(cx-100, cy, cx+100, cy+50)
	return &MenuState{
		sm:     sm,
		shared: shared,
		start:  ui.NewButton(rect, "Start", shared.Fonts.Face(regularFontSize), config.ButtonColor),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) || m.start.Clicked() {
		m.sm.SetState(NewGameState(m.sm, m.shared))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.shared.Fonts.Face(titleFontSize * 2)
	title := "Sky Shooter"
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, config.ScreenWidth/2-b.Dx()/2, config.ScreenHeight/3, config.TextLightColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
