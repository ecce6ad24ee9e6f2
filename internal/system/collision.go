// internal/system/collision.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// CollisionSystem проверяет попадания снарядов двумя проходами:
// враждебные снаряды по своим и свои снаряды по врагам.
type CollisionSystem struct {
	ecs             *entity.ECS
	commands        *entity.Commands
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, commands *entity.Commands, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		commands:        commands,
		eventDispatcher: eventDispatcher,
	}
}

type collisionTarget struct {
	id  types.EntityID
	pos vec.Vec2
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.pass(component.TeamHostile, component.TeamFriendly)
	s.pass(component.TeamFriendly, component.TeamHostile)
}

// pass ищет попадания параллельно по снарядам, а применяет их последовательно
// в порядке возрастания ID снаряда.
func (s *CollisionSystem) pass(shooters, victims component.Team) {
	targets := s.collectTargets(victims)
	if len(targets) == 0 {
		return
	}

	var projectiles []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		if team, ok := s.ecs.Teams[id]; ok && team == shooters {
			if _, ok := s.ecs.Positions[id]; ok {
				projectiles = append(projectiles, id)
			}
		}
	}

	hits := make([]types.EntityID, len(projectiles))
	forEachChunk(projectiles, func(offset int, chunk []types.EntityID) {
		for i, id := range chunk {
			hits[offset+i] = s.firstHit(id, targets)
		}
	})

	for i, projID := range projectiles {
		if hits[i] != 0 {
			s.applyHit(projID, hits[i])
		}
	}
}

func (s *CollisionSystem) collectTargets(team component.Team) []collisionTarget {
	var targets []collisionTarget
	for _, id := range entity.SortedIDs(s.ecs.Healths) {
		if t, ok := s.ecs.Teams[id]; !ok || t != team || s.ecs.IsDead(id) {
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			targets = append(targets, collisionTarget{id: id, pos: pos.Vec2})
		}
	}
	return targets
}

// firstHit возвращает первую цель в радиусе попадания, а не ближайшую.
func (s *CollisionSystem) firstHit(projID types.EntityID, targets []collisionTarget) types.EntityID {
	proj := s.ecs.Projectiles[projID]
	pos := s.ecs.Positions[projID].Vec2
	radiusSq := proj.Size * proj.Size
	for _, target := range targets {
		if target.id == projID || target.id == proj.FiredBy || target.id == proj.LastHit {
			continue
		}
		if pos.Sub(target.pos).LengthSquared() < radiusSq {
			return target.id
		}
	}
	return 0
}

func (s *CollisionSystem) applyHit(projID, targetID types.EntityID) {
	proj := s.ecs.Projectiles[projID]
	proj.HitPoints--
	if proj.HitPoints <= 0 {
		s.commands.Despawn(projID)
	} else {
		proj.LastHit = targetID
	}

	if proj.OnImpact != nil {
		proj.OnImpact(s.ecs.Positions[projID].Vec2)
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.Damage{DamagedBy: proj.FiredBy, AppliedTo: targetID, Amount: proj.Damage},
	})
}
