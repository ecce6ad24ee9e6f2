package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range kinds {
		d.Subscribe(t, r)
	}
	return r
}

func newWorld() (*entity.ECS, *entity.Commands, *event.Dispatcher) {
	return entity.NewECS(), entity.NewCommands(), event.NewDispatcher()
}

func spawnShip(ecs *entity.ECS, at vec.Vec2, team component.Team, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: at}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Teams[id] = team
	ecs.Healths[id] = component.NewHealth(health)
	return id
}

func spawnPlayer(ecs *entity.ECS, at vec.Vec2) types.EntityID {
	id := spawnShip(ecs, at, component.TeamFriendly, 100)
	ecs.Players[id] = &component.Player{Level: 1}
	ecs.AutoTargets[id] = &component.AutoTarget{}
	ecs.Powerups[id] = &component.Powerups{}
	return id
}
