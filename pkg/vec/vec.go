// pkg/vec/vec.go
package vec

import "math"

// Vec2 — двумерный вектор в мировых координатах.
type Vec2 struct {
	X, Y float64
}

// Zero — нулевой вектор.
var Zero = Vec2{}

// New создаёт вектор из компонент.
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle возвращает единичный вектор, повёрнутый на angle радиан от оси X.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LengthSquared избегает корня там, где достаточно сравнения.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Distance возвращает расстояние между двумя точками.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength ограничивает длину вектора сверху значением max.
func (v Vec2) ClampLength(max float64) Vec2 {
	lsq := v.LengthSquared()
	if lsq <= max*max || lsq == 0 {
		return v
	}
	return v.Scale(max / math.Sqrt(lsq))
}

// Rotate поворачивает вектор на angle радиан против часовой стрелки.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle — угол вектора относительно оси X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
