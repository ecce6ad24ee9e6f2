// pkg/render/canvas/world.go
package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/render"
	"go-sky-shooter/pkg/vec"
)

const gridStep = 100.0

// WorldRenderer рисует мир: фон с сеткой и все сущности с Renderable.
type WorldRenderer struct {
	ecs        *entity.ECS
	camera     *render.Camera
	canvas     *Canvas
	background color.RGBA
	grid       color.RGBA
	flash      color.RGBA
}

func NewWorldRenderer(ecs *entity.ECS, camera *render.Camera, background, grid color.RGBA) *WorldRenderer {
	return &WorldRenderer{
		ecs:        ecs,
		camera:     camera,
		canvas:     New(),
		background: background,
		grid:       grid,
		flash:      color.RGBA{255, 255, 255, 255},
	}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.background)
	r.drawGrid(screen)

	// Сначала трупы, эффекты и подбираемое, сверху живые корабли и снаряды.
	var back, front []types.EntityID
	for _, id := range entity.SortedIDs(r.ecs.Renderables) {
		if r.ecs.IsDead(id) || r.ecs.Pickups[id] != nil || r.ecs.ImpactEffects[id] != nil {
			back = append(back, id)
		} else {
			front = append(front, id)
		}
	}
	for _, id := range back {
		r.drawEntity(screen, id)
	}
	for _, id := range front {
		r.drawEntity(screen, id)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	cam := r.camera
	topLeft := cam.ScreenToWorld(vec.Zero)
	bottomRight := cam.ScreenToWorld(vec.New(cam.Width, cam.Height))

	startX := math.Floor(topLeft.X/gridStep) * gridStep
	for x := startX; x <= bottomRight.X; x += gridStep {
		sx := float32((x-cam.Center.X)*cam.Zoom + cam.Width/2)
		vector.StrokeLine(screen, sx, 0, sx, float32(cam.Height), 1, r.grid, false)
	}
	startY := math.Floor(topLeft.Y/gridStep) * gridStep
	for y := startY; y <= bottomRight.Y; y += gridStep {
		sy := float32((y-cam.Center.Y)*cam.Zoom + cam.Height/2)
		vector.StrokeLine(screen, 0, sy, float32(cam.Width), sy, 1, r.grid, false)
	}
}

func (r *WorldRenderer) drawEntity(screen *ebiten.Image, id types.EntityID) {
	renderable := r.ecs.Renderables[id]
	pos, ok := r.ecs.Positions[id]
	if !ok || !r.camera.Visible(pos.Vec2, float64(renderable.Radius)) {
		return
	}

	fill := renderable.Color
	if r.ecs.IsDead(id) {
		if renderable.DeadColor.A > 0 {
			fill = renderable.DeadColor
		} else {
			fill = render.DarkenColor(fill)
		}
	}
	if flash, ok := r.ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
		fill = render.MixColor(fill, r.flash, flash.Timer/flash.Duration)
	}

	s := r.camera.WorldToScreen(pos.Vec2)
	x, y := float32(s.X), float32(s.Y)
	radius := renderable.Radius * float32(r.camera.Zoom)
	stroke := renderable.HasStroke && !r.ecs.IsDead(id)

	switch renderable.Shape {
	case component.ShapeShip:
		r.canvas.Ship(screen, x, y, radius, float32(pos.Rotation), fill, stroke)
	case component.ShapeSquare:
		r.canvas.Square(screen, x, y, radius, float32(r.ecs.GameTime), fill, stroke)
	default:
		r.canvas.Circle(screen, x, y, radius, fill, stroke)
	}

	if shield, ok := r.ecs.ShieldStates[id]; ok && shield.Current > 0 && !r.ecs.IsDead(id) {
		alpha := uint8(40 + 120*float64(shield.Current)/float64(max(shield.Max, 1)))
		vector.StrokeCircle(screen, x, y, radius*1.6, 2, color.RGBA{70, 160, 255, alpha}, true)
	}
}
