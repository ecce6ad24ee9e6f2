// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-sky-shooter/pkg/render"
)

// Button — прямоугольная кнопка с подсветкой при наведении.
type Button struct {
	Rect  image.Rectangle
	Text  string
	Color color.RGBA
	face  font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face, clr color.RGBA) *Button {
	return &Button{Rect: rect, Text: label, Color: clr, face: face}
}

// Hovered сообщает, находится ли курсор над кнопкой.
func (b *Button) Hovered() bool {
	return image.Pt(ebiten.CursorPosition()).In(b.Rect)
}

// Clicked сообщает, нажата ли кнопка мышью или касанием в этом кадре.
func (b *Button) Clicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Hovered() {
		return true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if image.Pt(ebiten.TouchPosition(id)).In(b.Rect) {
			return true
		}
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image) {
	fill := b.Color
	if b.Hovered() {
		fill = render.LightenColor(fill, 30)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, borderColor, true)

	center := b.Rect.Min.Add(b.Rect.Size().Div(2))
	drawCentered(screen, b.Text, b.face, center.X, center.Y, color.White)
}
