// internal/system/visual_effect.go
package system

import (
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и затуханием попаданий.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Вспышка попадания гаснет вместе со своим DespawnTimer
	for id := range s.ecs.ImpactEffects {
		renderable, ok := s.ecs.Renderables[id]
		timer, hasTimer := s.ecs.DespawnTimers[id]
		if !ok || !hasTimer {
			continue
		}
		progress := min(max(timer.Remaining, 0)/config.ImpactEffectLife, 1)
		renderable.Color.A = uint8(float64(config.ImpactColor.A) * progress)
	}
}
