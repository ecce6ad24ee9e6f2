// internal/system/wave.go
package system

import (
	"log/slog"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/vec"
)

// WaveSystem продвигает часы волн и запускает спаунеры по расписанию.
// Курсор только растёт: уже сработавшие записи повторно не просматриваются.
type WaveSystem struct {
	ecs             *entity.ECS
	timeline        []defs.TimelineEntry
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, timeline []defs.TimelineEntry, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		timeline:        timeline,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	s.Advance(deltaTime)
}

// Advance сдвигает часы и создаёт спаунеры для всех наступивших записей.
// Возвращает количество сработавших записей.
func (s *WaveSystem) Advance(deltaTime float64) int {
	timer := s.ecs.WaveTimer
	timer.Elapsed += deltaTime

	fired := 0
	for timer.Cursor < len(s.timeline) && s.timeline[timer.Cursor].At <= timer.Elapsed {
		entry := s.timeline[timer.Cursor]
		timer.Cursor++
		fired++

		id := s.ecs.NewEntity()
		s.ecs.Spawners[id] = component.NewSpawner(entry.Spawner)

		slog.Info("wave entry started",
			"at", entry.At, "enemy", entry.Spawner.Enemy, "count", entry.Spawner.Count)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SpawnerStarted,
			Data: event.Wave{At: entry.At, Enemy: entry.Spawner.Enemy, Count: entry.Spawner.Count},
		})
	}
	return fired
}

// Reset обнуляет часы и курсор. Вызывается только при новой игре.
func (s *WaveSystem) Reset() {
	s.ecs.WaveTimer.Elapsed = 0
	s.ecs.WaveTimer.Cursor = 0
}

// SpawnerSystem выпускает врагов пачками вокруг игрока.
type SpawnerSystem struct {
	ecs      *entity.ECS
	commands *entity.Commands
	enemies  map[defs.EnemyType]defs.EnemyDefinition
	prng     *utils.PRNGService
}

func NewSpawnerSystem(ecs *entity.ECS, commands *entity.Commands, enemies map[defs.EnemyType]defs.EnemyDefinition, prng *utils.PRNGService) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:      ecs,
		commands: commands,
		enemies:  enemies,
		prng:     prng,
	}
}

func (s *SpawnerSystem) Update(deltaTime float64) {
	playerID, _, hasPlayer := s.ecs.Player()
	var playerPos vec.Vec2
	if hasPlayer {
		if pos, ok := s.ecs.Positions[playerID]; ok {
			playerPos = pos.Vec2
		} else {
			hasPlayer = false
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Spawners) {
		spawner := s.ecs.Spawners[id]
		if spawner.Remaining <= 0 {
			continue
		}
		spawner.CurrentInterval -= deltaTime
		if spawner.CurrentInterval >= 0 {
			continue
		}
		spawner.CurrentInterval = spawner.Interval
		if !hasPlayer {
			continue
		}

		def, ok := s.enemies[spawner.EnemyType]
		if !ok {
			slog.Warn("spawner references unknown enemy", "enemy", spawner.EnemyType)
			spawner.Remaining = 0
			s.commands.Despawn(id)
			continue
		}

		for i := 0; i < spawner.PerInterval && spawner.Remaining > 0; i++ {
			offset := vec.FromAngle(s.prng.Angle()).Scale(s.prng.Range(spawner.MinRange, spawner.MaxRange))
			SpawnEnemy(s.ecs, def, playerPos.Add(offset), playerID)
			spawner.Remaining--
		}
		slog.Debug("spawner batch", "spawner", id, "enemy", def.ID, "remaining", spawner.Remaining)

		if spawner.Remaining == 0 {
			s.commands.Despawn(id)
		}
	}
}
