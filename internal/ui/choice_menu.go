// internal/ui/choice_menu.go
package ui

import (
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
)

const (
	cardWidth  = 260
	cardHeight = 120
	cardGap    = 30
)

var choiceKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

var powerupHints = map[defs.PowerUpType]string{
	defs.PowerPeaShooter:       "Piercing single shots",
	defs.PowerMachineGun:       "Rapid fire",
	defs.PowerSniper:           "Slow, heavy, long range",
	defs.PowerBile:             "Short range spray",
	defs.PowerOvershield:       "Recharging shield",
	defs.PowerSpecialMunitions: "More damage for every gun",
}

// ChoiceMenu показывает карточки предложенных усилений.
type ChoiceMenu struct {
	titleFace font.Face
	face      font.Face
	offer     []defs.PowerUpType
	cards     []*Button
}

func NewChoiceMenu(titleFace, face font.Face) *ChoiceMenu {
	return &ChoiceMenu{titleFace: titleFace, face: face}
}

// SetOffer раскладывает карточки под новое предложение.
func (m *ChoiceMenu) SetOffer(offer []defs.PowerUpType) {
	if slices.Equal(m.offer, offer) {
		return
	}
	m.offer = slices.Clone(offer)
	m.cards = m.cards[:0]

	total := len(offer)*cardWidth + (len(offer)-1)*cardGap
	left := (config.ScreenWidth - total) / 2
	top := config.ScreenHeight/2 - cardHeight/2
	for i, t := range offer {
		x := left + i*(cardWidth+cardGap)
		rect := image.Rect(x, top, x+cardWidth, top+cardHeight)
		m.cards = append(m.cards, NewButton(rect, fmt.Sprintf("%d. %s", i+1, t.Title()), m.titleFace, config.ButtonColor))
	}
}

// Update возвращает индекс выбранной карточки: клавиши 1-3, клик или касание.
func (m *ChoiceMenu) Update() (int, bool) {
	for i, key := range choiceKeys {
		if i < len(m.cards) && inpututil.IsKeyJustPressed(key) {
			return i, true
		}
	}
	for i, card := range m.cards {
		if card.Clicked() {
			return i, true
		}
	}
	return -1, false
}

func (m *ChoiceMenu) Draw(screen *ebiten.Image, powerups *component.Powerups) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "Choose a power-up", m.titleFace, config.ScreenWidth/2, config.ScreenHeight/2-cardHeight, config.TextLightColor)

	for i, card := range m.cards {
		card.Draw(screen)

		hint := powerupHints[m.offer[i]]
		level := "New"
		if powerups != nil {
			if p, ok := powerups.Get(m.offer[i]); ok {
				level = fmt.Sprintf("Level %d", p.Level+1)
			}
		}
		cx := card.Rect.Min.X + cardWidth/2
		drawCentered(screen, level, m.face, cx, card.Rect.Max.Y+20, config.TextLightColor)
		drawCentered(screen, hint, m.face, cx, card.Rect.Max.Y+42, config.TextLightColor)
	}
}
