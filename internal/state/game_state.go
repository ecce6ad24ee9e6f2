// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/input"
)

// GameState — идёт забег.
type GameState struct {
	sm     *StateMachine
	shared *Shared
}

// NewGameState начинает новый забег.
func NewGameState(sm *StateMachine, shared *Shared) *GameState {
	shared.Game.Restart()
	shared.Camera.Zoom = 1
	if pos, ok := shared.Game.PlayerPosition(); ok {
		shared.Camera.Follow(pos)
	}
	return &GameState{sm: sm, shared: shared}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	game := g.shared.Game
	switch game.Phase() {
	case app.PhaseChoosing:
		g.sm.SetState(NewChooserState(g.sm, g))
		return
	case app.PhaseOver:
		g.sm.SetState(NewEndState(g.sm, g))
		return
	}

	actions := input.Poll()
	if actions.Pause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if actions.Zoom != 0 {
		g.shared.Camera.ZoomBy(actions.Zoom * config.ZoomStep)
	}

	game.SetInput(actions.PlayerInput(g.shared.Camera))
	game.Update(deltaTime)

	if pos, ok := game.PlayerPosition(); ok {
		g.shared.Camera.Follow(pos)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.shared.World.Draw(screen)
	g.shared.HUD.Draw(screen, g.shared.Game)
}

func (g *GameState) Exit() {}
