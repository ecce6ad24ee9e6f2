// component/movement.go
package component

import "go-sky-shooter/pkg/vec"

// Position — компонент позиции в мировых координатах и угол поворота спрайта.
type Position struct {
	vec.Vec2
	Rotation float64
}

// Velocity — компонент скорости (единиц в секунду).
type Velocity struct {
	vec.Vec2
}

// ConstantAcceleration разгоняет сущность вдоль текущей скорости: v += v * (dt * Factor).
type ConstantAcceleration struct {
	Factor float64
}

// VMax ограничивает модуль скорости.
type VMax struct {
	Limit float64
}

// OrientTowardsVelocity — поворачивать спрайт по направлению движения.
type OrientTowardsVelocity struct{}

// MoveToTarget — сущность разворачивает скорость на свой TargetVector.
type MoveToTarget struct{}
