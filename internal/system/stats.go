// internal/system/stats.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
)

// Stats — итоги забега для HUD и экрана конца игры.
type Stats struct {
	RunID         string
	DamageDone    int
	HealthLost    int
	EnemiesKilled int
	BulletsFired  int
	EnemiesAlive  int
	SurvivalTime  float64
}

// StatsSystem считает статистику по событиям и состоянию мира.
type StatsSystem struct {
	ecs        *entity.ECS
	stats      Stats
	lastHealth int
}

func NewStatsSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{ecs: ecs, lastHealth: -1}
	eventDispatcher.Subscribe(event.DamageDealt, s)
	eventDispatcher.Subscribe(event.EntityDied, s)
	eventDispatcher.Subscribe(event.ProjectileFired, s)
	return s
}

// Reset начинает новый забег.
func (s *StatsSystem) Reset(runID string) {
	s.stats = Stats{RunID: runID}
	s.lastHealth = -1
}

// Stats возвращает копию текущей статистики.
func (s *StatsSystem) Stats() Stats {
	return s.stats
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Damage:
		if team, ok := s.ecs.Teams[data.DamagedBy]; ok && team == component.TeamFriendly {
			s.stats.DamageDone += data.Amount
		}
	case event.Death:
		if _, ok := s.ecs.Enemies[data.Entity]; ok {
			s.stats.EnemiesKilled++
		}
	case event.Shot:
		if _, ok := s.ecs.Players[data.FiredBy]; ok {
			s.stats.BulletsFired++
		}
	}
}

func (s *StatsSystem) Update(deltaTime float64) {
	alive := 0
	for id := range s.ecs.Enemies {
		if !s.ecs.IsDead(id) {
			alive++
		}
	}
	s.stats.EnemiesAlive = alive

	playerID, _, ok := s.ecs.Player()
	if !ok {
		return
	}
	if !s.ecs.IsDead(playerID) {
		s.stats.SurvivalTime = s.ecs.WaveTimer.Elapsed
	}
	// Потерю здоровья считаем по разнице, щит в неё не входит.
	if health, ok := s.ecs.Healths[playerID]; ok {
		current := max(health.Value, 0)
		if s.lastHealth >= 0 && current < s.lastHealth {
			s.stats.HealthLost += s.lastHealth - current
		}
		s.lastHealth = current
	}
}
