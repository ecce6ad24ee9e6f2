// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-sky-shooter/internal/app"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/utils"
)

const (
	hudMargin   = 16
	barWidth    = 220
	barHeight   = 14
	barGap      = 6
	slotSize    = 14
	slotGap     = 6
	clockTop    = 36
	hudFontSize = 16
)

// HUD рисует полосы здоровья, щита и опыта, уровень, часы волн и счёт.
type HUD struct {
	face      font.Face
	clockFace font.Face
	health    *Bar
	shield    *Bar
	xp        *Bar
}

func NewHUD(face, clockFace font.Face) *HUD {
	y := float32(hudMargin)
	return &HUD{
		face:      face,
		clockFace: clockFace,
		health:    NewBar(hudMargin, y, barWidth, barHeight, config.HealthBarColor),
		shield:    NewBar(hudMargin, y+barHeight+barGap, barWidth, barHeight, config.ShieldBarColor),
		xp:        NewBar(hudMargin, y+2*(barHeight+barGap), barWidth, barHeight, config.XpBarColor),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	player, health, ok := g.Player()
	if !ok {
		return
	}

	h.health.Draw(screen, health.Value, health.Max)
	if shield, ok := g.ECS.ShieldStates[g.PlayerID]; ok && shield.Max > 0 {
		h.shield.Draw(screen, shield.Current, shield.Max)
	}
	h.xp.Draw(screen, player.Xp, config.XpRequiredForLevel(player.Level))

	labelX := hudMargin + barWidth + 10
	text.Draw(screen, fmt.Sprintf("HP %d", max(health.Value, 0)), h.face, labelX, int(h.health.Y)+barHeight, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Lv %d", player.Level), h.face, labelX, int(h.xp.Y)+barHeight, config.TextLightColor)

	h.drawSlots(screen, g, int(h.xp.Y)+barHeight+barGap*2)

	minutes, seconds := utils.FormatClock(g.ECS.WaveTimer.Elapsed)
	clock := fmt.Sprintf("%02d:%02d", minutes, seconds)
	w, _ := measure(h.clockFace, clock)
	drawOutlined(screen, clock, h.clockFace, config.ScreenWidth/2-w/2, clockTop, 2, config.TextLightColor)

	kills := fmt.Sprintf("Kills %d", g.Stats().EnemiesKilled)
	kw, _ := measure(h.face, kills)
	drawOutlined(screen, kills, h.face, config.ScreenWidth-hudMargin-kw, hudMargin+barHeight, 1, config.TextLightColor)
}

// drawSlots рисует слоты усилений: заполненный квадрат на каждый занятый слот.
func (h *HUD) drawSlots(screen *ebiten.Image, g *app.Game, y int) {
	powerups, ok := g.ECS.Powerups[g.PlayerID]
	if !ok {
		return
	}
	for i, slot := range powerups.Slots {
		x := float32(hudMargin + i*(slotSize+slotGap))
		vector.StrokeRect(screen, x, float32(y), slotSize, slotSize, borderWidth, borderColor, true)
		if slot.Type == "" {
			continue
		}
		vector.DrawFilledRect(screen, x+borderWidth, float32(y)+borderWidth, slotSize-borderWidth*2, slotSize-borderWidth*2, config.XpBarColor, true)
		if slot.Level > 1 {
			text.Draw(screen, fmt.Sprint(slot.Level), h.face, int(x)+3, y+slotSize*2+2, config.TextLightColor)
		}
	}
}
