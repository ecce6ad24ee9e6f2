// internal/ui/bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const borderWidth = 1

var borderColor = color.White

// Bar — полоса заполнения (здоровье, щит, опыт).
type Bar struct {
	X, Y          float32
	Width, Height float32
	Fill          color.RGBA
}

func NewBar(x, y, width, height float32, fill color.RGBA) *Bar {
	return &Bar{X: x, Y: y, Width: width, Height: height, Fill: fill}
}

// Draw рисует полосу, заполненную на current/total.
func (b *Bar) Draw(screen *ebiten.Image, current, total int) {
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, borderColor, true)

	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}
	ratio = min(max(ratio, 0), 1)
	fillWidth := float32(float64(b.Width-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, b.Fill, true)
	}
}
