// internal/system/overshield.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
)

// OvershieldSystem приводит ёмкость щита к уровню усиления и перезаряжает его.
type OvershieldSystem struct {
	ecs *entity.ECS
}

func NewOvershieldSystem(ecs *entity.ECS) *OvershieldSystem {
	return &OvershieldSystem{ecs: ecs}
}

func (s *OvershieldSystem) Update(deltaTime float64) {
	s.reset()
	s.recharge(deltaTime)
}

// reset срабатывает, когда уровень усиления изменился: щит заполняется до нового максимума.
func (s *OvershieldSystem) reset() {
	for id, shield := range s.ecs.Overshields {
		max := shield.Level * config.ShieldPerLevel
		state, ok := s.ecs.ShieldStates[id]
		if !ok {
			s.ecs.ShieldStates[id] = &component.OvershieldState{Max: max, Current: max}
			continue
		}
		if state.Max != max {
			state.Max = max
			state.Current = max
		}
	}
}

func (s *OvershieldSystem) recharge(deltaTime float64) {
	for id, state := range s.ecs.ShieldStates {
		if s.ecs.IsDead(id) || state.Current >= state.Max {
			continue
		}
		state.SecsUntilRecharge -= deltaTime
		if state.SecsUntilRecharge <= 0 {
			state.Current++
			state.SecsUntilRecharge = config.ShieldRechargeStep
		}
	}
}
