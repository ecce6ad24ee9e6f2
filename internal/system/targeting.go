// internal/system/targeting.go
package system

import (
	"math"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
)

// TargetingSystem выбирает ближайшего живого противника для сущностей с AutoTarget.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	candidates := entity.SortedIDs(s.ecs.Healths)
	for _, id := range entity.SortedIDs(s.ecs.AutoTargets) {
		best := s.findNearest(id, candidates)
		if target, ok := s.ecs.Targets[id]; ok {
			target.ID = best
		} else {
			s.ecs.Targets[id] = &component.Target{ID: best}
		}
	}
}

// findNearest — линейный поиск. Расстояние округляется вниз до целого,
// при равенстве остаётся кандидат с меньшим ID.
func (s *TargetingSystem) findNearest(id types.EntityID, candidates []types.EntityID) types.EntityID {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return 0
	}
	team, ok := s.ecs.Teams[id]
	if !ok {
		return 0
	}

	var nearest types.EntityID
	minDistance := math.MaxInt
	for _, candID := range candidates {
		if candID == id || s.ecs.IsDead(candID) {
			continue
		}
		candTeam, ok := s.ecs.Teams[candID]
		if !ok || !team.Opposes(candTeam) {
			continue
		}
		candPos, ok := s.ecs.Positions[candID]
		if !ok {
			continue
		}
		distance := int(pos.Distance(candPos.Vec2))
		if distance < minDistance {
			minDistance = distance
			nearest = candID
		}
	}
	return nearest
}

// TargetVectorSystem пересчитывает направление на цель каждый тик.
// Проход параллельный: каждая горутина пишет только в TargetVector своих сущностей.
type TargetVectorSystem struct {
	ecs *entity.ECS
}

func NewTargetVectorSystem(ecs *entity.ECS) *TargetVectorSystem {
	return &TargetVectorSystem{ecs: ecs}
}

func (s *TargetVectorSystem) Update(deltaTime float64) {
	ids := entity.SortedIDs(s.ecs.TargetVectors)
	forEachChunk(ids, func(_ int, chunk []types.EntityID) {
		for _, id := range chunk {
			s.resolve(id, s.ecs.TargetVectors[id])
		}
	})
}

func (s *TargetVectorSystem) resolve(id types.EntityID, vector *component.TargetVector) {
	vector.Clear()
	if s.ecs.IsDead(id) {
		return
	}
	target, ok := s.ecs.Targets[id]
	if !ok || target.ID == 0 || s.ecs.IsDead(target.ID) {
		return
	}
	self, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	other, ok := s.ecs.Positions[target.ID]
	if !ok {
		return
	}

	direction := other.Sub(self.Vec2)
	if direction.LengthSquared() >= config.FiringRange*config.FiringRange {
		return
	}
	if direction.IsZero() {
		return
	}
	vector.Set(direction.Normalize())
}
