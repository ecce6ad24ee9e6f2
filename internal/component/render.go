// component/render.go
package component

import "image/color"

// Shape — форма, которой рисуется сущность.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeShip
	ShapeSquare
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Shape     Shape
	Color     color.RGBA
	DeadColor color.RGBA
	Radius    float32
	HasStroke bool
}
