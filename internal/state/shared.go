// internal/state/shared.go
package state

import (
	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/assets"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/ui"
	"go-sky-shooter/pkg/render"
	"go-sky-shooter/pkg/render/canvas"
)

const (
	titleFontSize   = 32
	regularFontSize = 16
)

// Shared — то, что живёт дольше одного состояния: игра, камера и виджеты.
type Shared struct {
	Game    *app.Game
	Camera  *render.Camera
	World   *canvas.WorldRenderer
	HUD     *ui.HUD
	Choices *ui.ChoiceMenu
	Stats   *ui.StatsPanel
	Fonts   *assets.FontManager
}

func NewShared(game *app.Game, fonts *assets.FontManager) *Shared {
	camera := render.NewCamera(config.ScreenWidth, config.ScreenHeight, config.CameraMinZoom, config.CameraMaxZoom)
	title := fonts.Face(titleFontSize)
	regular := fonts.Face(regularFontSize)
	return &Shared{
		Game:    game,
		Camera:  camera,
		World:   canvas.NewWorldRenderer(game.ECS, camera, config.BackgroundColor, config.GridColor),
		HUD:     ui.NewHUD(regular, title),
		Choices: ui.NewChoiceMenu(title, regular),
		Stats:   ui.NewStatsPanel(title, regular),
		Fonts:   fonts,
	}
}
