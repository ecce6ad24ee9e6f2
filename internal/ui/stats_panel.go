// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/system"
	"go-sky-shooter/internal/utils"
)

const (
	statsWidth      = 420
	statsHeight     = 340
	statsLineHeight = 28
)

// StatsPanel — экран итогов забега.
type StatsPanel struct {
	titleFace font.Face
	face      font.Face
	rect      image.Rectangle
	Continue  *Button
}

func NewStatsPanel(titleFace, face font.Face) *StatsPanel {
	left := (config.ScreenWidth - statsWidth) / 2
	top := (config.ScreenHeight - statsHeight) / 2
	rect := image.Rect(left, top, left+statsWidth, top+statsHeight)
	btn := image.Rect(rect.Min.X+statsWidth/2-90, rect.Max.Y-60, rect.Min.X+statsWidth/2+90, rect.Max.Y-20)
	return &StatsPanel{
		titleFace: titleFace,
		face:      face,
		rect:      rect,
		Continue:  NewButton(btn, "Menu", face, config.ButtonColor),
	}
}

// Lines — строки итогов в порядке вывода.
func Lines(stats system.Stats) []string {
	minutes, seconds := utils.FormatClock(stats.SurvivalTime)
	return []string{
		fmt.Sprintf("Survived: %02d:%02d", minutes, seconds),
		fmt.Sprintf("Enemies killed: %d", stats.EnemiesKilled),
		fmt.Sprintf("Damage done: %d", stats.DamageDone),
		fmt.Sprintf("Health lost: %d", stats.HealthLost),
		fmt.Sprintf("Bullets fired: %d", stats.BulletsFired),
		fmt.Sprintf("Enemies left: %d", stats.EnemiesAlive),
	}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, stats system.Stats) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	x, y := float32(p.rect.Min.X), float32(p.rect.Min.Y)
	w, h := float32(p.rect.Dx()), float32(p.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	drawCentered(screen, "Game Over", p.titleFace, p.rect.Min.X+statsWidth/2, p.rect.Min.Y+30, config.TextLightColor)

	lineY := p.rect.Min.Y + 80
	for _, line := range Lines(stats) {
		text.Draw(screen, line, p.face, p.rect.Min.X+30, lineY, config.TextLightColor)
		lineY += statsLineHeight
	}
	p.Continue.Draw(screen)
}
