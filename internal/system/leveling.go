// internal/system/leveling.go
package system

import (
	"log/slog"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// LevelingSystem выбрасывает шарики опыта из погибших врагов,
// собирает их у игрока и повышает уровень.
type LevelingSystem struct {
	ecs             *entity.ECS
	commands        *entity.Commands
	eventDispatcher *event.Dispatcher
}

func NewLevelingSystem(ecs *entity.ECS, commands *entity.Commands, eventDispatcher *event.Dispatcher) *LevelingSystem {
	s := &LevelingSystem{
		ecs:             ecs,
		commands:        commands,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EntityDied, s)
	return s
}

// OnEvent создаёт шарик опыта на месте врага, у которого есть XpWorth.
func (s *LevelingSystem) OnEvent(e event.Event) {
	death, ok := e.Data.(event.Death)
	if !ok {
		return
	}
	worth, ok := s.ecs.XpWorths[death.Entity]
	if !ok {
		return
	}
	playerID, _, hasPlayer := s.ecs.Player()
	if !hasPlayer {
		return
	}
	amount := worth.Amount
	s.commands.Spawn(func(ecs *entity.ECS, id types.EntityID) {
		ecs.Positions[id] = &component.Position{Vec2: death.Position}
		ecs.Velocities[id] = &component.Velocity{Vec2: vec.New(0, config.XpPelletSpeed)}
		ecs.Accelerations[id] = &component.ConstantAcceleration{Factor: config.XpPelletAccel}
		ecs.SpeedLimits[id] = &component.VMax{Limit: config.XpPelletVMax}
		ecs.MoveToTargets[id] = &component.MoveToTarget{}
		ecs.Targets[id] = &component.Target{ID: playerID}
		ecs.TargetVectors[id] = &component.TargetVector{}
		ecs.XpPellets[id] = &component.XpPellet{Worth: amount}
		ecs.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.XpPelletColor,
			Radius: config.XpPelletRadius,
		}
	})
}

// Update работает на фиксированном шаге: сбор опыта, затем не больше одного повышения уровня.
func (s *LevelingSystem) Update(deltaTime float64) {
	playerID, player, ok := s.ecs.Player()
	if !ok || s.ecs.IsDead(playerID) {
		return
	}
	playerPos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}

	for _, id := range entity.SortedIDs(s.ecs.XpPellets) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if pos.Sub(playerPos.Vec2).LengthSquared() < config.PickupRadiusSquared {
			player.Xp += s.ecs.XpPellets[id].Worth
			s.ecs.Despawn(id)
		}
	}

	required := config.XpRequiredForLevel(player.Level)
	if player.Xp >= required {
		player.Xp -= required
		player.Level++
		slog.Info("level up", "level", player.Level, "xp", player.Xp)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.Level{Player: playerID, Level: player.Level},
		})
	}
}
