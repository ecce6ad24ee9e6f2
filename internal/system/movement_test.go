package system

import (
	"math"
	"testing"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/pkg/vec"
)

func TestAccelerationAndSpeedLimit(t *testing.T) {
	ecs, _, _ := newWorld()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Vec2: vec.New(10, 0)}
	ecs.Accelerations[id] = &component.ConstantAcceleration{Factor: 1}
	ecs.SpeedLimits[id] = &component.VMax{Limit: 15}
	sys := NewMovementSystem(ecs)

	sys.Update(0.1)
	if got := ecs.Velocities[id].X; math.Abs(got-11) > 1e-9 {
		t.Errorf("velocity = %f, want 11", got)
	}
	if got := ecs.Positions[id].X; math.Abs(got-1.1) > 1e-9 {
		t.Errorf("position = %f, want 1.1", got)
	}

	for i := 0; i < 50; i++ {
		sys.Update(0.1)
	}
	if got := ecs.Velocities[id].Length(); got > 15+1e-9 {
		t.Errorf("speed %f exceeds the limit", got)
	}
}

func TestMoveToTargetKeepsSpeed(t *testing.T) {
	ecs, _, _ := newWorld()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Vec2: vec.New(30, 40)}
	ecs.MoveToTargets[id] = &component.MoveToTarget{}
	ecs.Orientations[id] = &component.OrientTowardsVelocity{}
	ecs.TargetVectors[id] = &component.TargetVector{}
	ecs.TargetVectors[id].Set(vec.New(-1, 0))

	NewMovementSystem(ecs).Update(0.1)

	vel := ecs.Velocities[id]
	if math.Abs(vel.X+50) > 1e-9 || math.Abs(vel.Y) > 1e-9 {
		t.Errorf("velocity = %+v, want (-50, 0)", vel.Vec2)
	}
	if rot := ecs.Positions[id].Rotation; math.Abs(math.Abs(rot)-math.Pi) > 1e-9 {
		t.Errorf("rotation = %f, want π", rot)
	}
}

func TestDeadDoNotSteer(t *testing.T) {
	ecs, _, _ := newWorld()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Vec2: vec.New(0, 10)}
	ecs.MoveToTargets[id] = &component.MoveToTarget{}
	ecs.TargetVectors[id] = &component.TargetVector{}
	ecs.TargetVectors[id].Set(vec.New(1, 0))
	ecs.Deads[id] = &component.Dead{}

	NewMovementSystem(ecs).Update(0.1)

	if v := ecs.Velocities[id].Vec2; v != vec.New(0, 10) {
		t.Errorf("corpse changed heading: %+v", v)
	}
}

func TestPlayerControl(t *testing.T) {
	ecs, _, _ := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	sys := NewPlayerControlSystem(ecs)

	sys.SetInput(PlayerInput{Move: vec.New(1, 0)})
	sys.Update(0.5)
	if got := ecs.Velocities[player].Length(); math.Abs(got-config.PlayerMaxSpeed) > 1e-9 {
		t.Errorf("speed = %f, want clamped to %f", got, config.PlayerMaxSpeed)
	}

	ecs.Velocities[player].Vec2 = vec.New(0, 50)
	sys.SetInput(PlayerInput{})
	sys.Update(0.1)
	if v := ecs.Velocities[player].Vec2; v != vec.New(0, 50) {
		t.Errorf("no input should keep velocity, got %+v", v)
	}

	ecs.Velocities[player].Vec2 = vec.Zero
	sys.SetInput(PlayerInput{SteerTo: vec.New(0, -100), Steering: true})
	sys.Update(0.01)
	if v := ecs.Velocities[player].Vec2; v.Y >= 0 || math.Abs(v.X) > 1e-9 {
		t.Errorf("touch steering should accelerate towards the touch, got %+v", v)
	}
}
