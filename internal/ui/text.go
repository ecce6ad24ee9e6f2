// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var outlineColor = color.RGBA{20, 30, 40, 255}

// measure возвращает ширину и высоту строки.
func measure(face font.Face, s string) (int, int) {
	b := text.BoundString(face, s)
	return b.Dx(), b.Dy()
}

// drawCentered рисует строку с центром в (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// drawOutlined рисует строку с обводкой толщиной thickness пикселей.
// (x, y) — базовая линия, как у text.Draw.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outlineColor)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
