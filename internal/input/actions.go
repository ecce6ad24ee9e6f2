// internal/input/actions.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-sky-shooter/internal/system"
	"go-sky-shooter/pkg/render"
	"go-sky-shooter/pkg/vec"
)

// Actions — ввод за один кадр, уже переведённый в игровые действия.
type Actions struct {
	Move vec.Vec2
	// Pointer — точка касания или зажатой кнопки мыши в экранных координатах.
	Pointer  vec.Vec2
	Steering bool
	Zoom     float64
	Pause    bool
	Confirm  bool
}

var moveKeys = []struct {
	keys []ebiten.Key
	dir  vec.Vec2
}{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, vec.New(0, -1)},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, vec.New(0, 1)},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, vec.New(-1, 0)},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, vec.New(1, 0)},
}

// Poll опрашивает клавиатуру, мышь и касания.
func Poll() Actions {
	var a Actions
	for _, m := range moveKeys {
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				a.Move = a.Move.Add(m.dir)
				break
			}
		}
	}

	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		a.Pointer = vec.New(float64(x), float64(y))
		a.Steering = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.Pointer = vec.New(float64(x), float64(y))
		a.Steering = true
	}

	_, a.Zoom = ebiten.Wheel()
	a.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	a.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return a
}

// PlayerInput переводит действия в управление кораблём. Точка касания
// переводится в мировые координаты через камеру.
func (a Actions) PlayerInput(camera *render.Camera) system.PlayerInput {
	in := system.PlayerInput{Move: a.Move, Steering: a.Steering}
	if a.Steering {
		in.SteerTo = camera.ScreenToWorld(a.Pointer)
	}
	return in
}
