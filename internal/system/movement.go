// internal/system/movement.go
package system

import (
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/pkg/vec"
)

// PlayerInput — текущее состояние управления, которое передаёт слой ввода.
type PlayerInput struct {
	// Move — направление с клавиатуры, нулевое если клавиши не нажаты.
	Move vec.Vec2
	// SteerTo — точка касания в мировых координатах, действует при Steering.
	SteerTo  vec.Vec2
	Steering bool
}

// PlayerControlSystem разгоняет корабль игрока по вводу.
type PlayerControlSystem struct {
	ecs   *entity.ECS
	input PlayerInput
}

func NewPlayerControlSystem(ecs *entity.ECS) *PlayerControlSystem {
	return &PlayerControlSystem{ecs: ecs}
}

// SetInput запоминает ввод на текущий кадр.
func (s *PlayerControlSystem) SetInput(input PlayerInput) {
	s.input = input
}

func (s *PlayerControlSystem) Update(deltaTime float64) {
	id, _, ok := s.ecs.Player()
	if !ok || s.ecs.IsDead(id) {
		return
	}
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return
	}

	direction := s.input.Move
	if s.input.Steering {
		if pos, ok := s.ecs.Positions[id]; ok {
			toTouch := s.input.SteerTo.Sub(pos.Vec2)
			if toTouch.Length() > config.FollowEpsilon {
				direction = toTouch
			}
		}
	}
	if direction.IsZero() {
		return
	}

	thrust := direction.Normalize().Scale(config.PlayerThrust * deltaTime)
	vel.Vec2 = vel.Add(thrust).ClampLength(config.PlayerMaxSpeed)
}

// MovementSystem двигает все сущности: поворот к цели, ускорение, ограничение скорости,
// интегрирование позиции и ориентация спрайта.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.steerToTargets()
	s.accelerate(deltaTime)
	s.integrate(deltaTime)
	s.orient()
}

// steerToTargets разворачивает скорость на TargetVector, сохраняя модуль.
func (s *MovementSystem) steerToTargets() {
	for id := range s.ecs.MoveToTargets {
		if s.ecs.IsDead(id) {
			continue
		}
		vector, ok := s.ecs.TargetVectors[id]
		if !ok || !vector.Valid {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		vel.Vec2 = vector.Dir.Scale(vel.Length())
	}
}

func (s *MovementSystem) accelerate(deltaTime float64) {
	for id, acc := range s.ecs.Accelerations {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Vec2 = vel.Add(vel.Scale(deltaTime * acc.Factor))
		}
	}
	for id, limit := range s.ecs.SpeedLimits {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Vec2 = vel.ClampLength(limit.Limit)
		}
	}
}

func (s *MovementSystem) integrate(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Vec2 = pos.Add(vel.Scale(deltaTime))
		}
	}
}

func (s *MovementSystem) orient() {
	for id := range s.ecs.Orientations {
		vel, ok := s.ecs.Velocities[id]
		if !ok || vel.IsZero() {
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Rotation = vel.Angle()
		}
	}
}
