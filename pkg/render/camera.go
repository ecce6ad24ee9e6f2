// pkg/render/camera.go
package render

import (
	"go-sky-shooter/pkg/vec"
)

// Camera переводит мировые координаты в экранные. Центр камеры совпадает с центром экрана.
type Camera struct {
	Center  vec.Vec2
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	Width   float64
	Height  float64
}

// NewCamera создаёт камеру для экрана width x height.
func NewCamera(width, height, minZoom, maxZoom float64) *Camera {
	return &Camera{
		Zoom:    1,
		MinZoom: minZoom,
		MaxZoom: maxZoom,
		Width:   width,
		Height:  height,
	}
}

// Follow ставит камеру на цель.
func (c *Camera) Follow(target vec.Vec2) {
	c.Center = target
}

// ZoomBy меняет масштаб в пределах [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = max(c.MinZoom, min(c.MaxZoom, c.Zoom+delta))
}

// WorldToScreen переводит мировую точку в экранную.
func (c *Camera) WorldToScreen(p vec.Vec2) vec.Vec2 {
	return p.Sub(c.Center).Scale(c.Zoom).Add(vec.New(c.Width/2, c.Height/2))
}

// ScreenToWorld — обратное преобразование.
func (c *Camera) ScreenToWorld(p vec.Vec2) vec.Vec2 {
	return p.Sub(vec.New(c.Width/2, c.Height/2)).Scale(1 / c.Zoom).Add(c.Center)
}

// Visible сообщает, попадает ли круг радиуса r вокруг p на экран.
func (c *Camera) Visible(p vec.Vec2, r float64) bool {
	s := c.WorldToScreen(p)
	margin := r * c.Zoom
	return s.X >= -margin && s.X <= c.Width+margin && s.Y >= -margin && s.Y <= c.Height+margin
}
