package defs

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// SpawnerDefinition описывает порождающую врагов сущность.
type SpawnerDefinition struct {
	Enemy       EnemyType `yaml:"enemy"`
	Interval    float64   `yaml:"interval"`
	PerInterval int       `yaml:"per_interval"`
	Count       int       `yaml:"count"`
	// SpawnRange — [min, max] расстояние от игрока.
	SpawnRange [2]float64 `yaml:"spawn_range"`
}

// TimelineEntry — событие волны: в момент At создаётся спаунер.
type TimelineEntry struct {
	At      float64           `yaml:"at"`
	Spawner SpawnerDefinition `yaml:",inline"`
}

type wavesFile struct {
	Timeline []TimelineEntry `yaml:"timeline"`
}

// ParseTimeline разбирает расписание волн и упорядочивает его по времени.
// Записи с одинаковым временем сохраняют порядок из файла.
func ParseTimeline(data []byte, enemies map[EnemyType]EnemyDefinition) ([]TimelineEntry, error) {
	var file wavesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave timeline: %w", err)
	}

	for i, entry := range file.Timeline {
		sp := entry.Spawner
		if entry.At < 0 {
			return nil, fmt.Errorf("timeline entry %d: negative trigger time %v", i, entry.At)
		}
		if _, ok := enemies[sp.Enemy]; !ok {
			return nil, fmt.Errorf("timeline entry %d: unknown enemy type %q", i, sp.Enemy)
		}
		if sp.Interval <= 0 {
			return nil, fmt.Errorf("timeline entry %d: interval must be positive", i)
		}
		if sp.PerInterval <= 0 || sp.Count <= 0 {
			return nil, fmt.Errorf("timeline entry %d: per_interval and count must be positive", i)
		}
		if sp.SpawnRange[0] < 0 || sp.SpawnRange[1] < sp.SpawnRange[0] {
			return nil, fmt.Errorf("timeline entry %d: invalid spawn range %v", i, sp.SpawnRange)
		}
	}

	timeline := file.Timeline
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].At < timeline[j].At
	})
	return timeline, nil
}
