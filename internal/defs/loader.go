package defs

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

const (
	enemiesFileName = "enemies.yaml"
	wavesFileName   = "waves.yaml"
)

//go:embed data/enemies.yaml data/waves.yaml
var embedded embed.FS

// Library — все загруженные определения игры.
type Library struct {
	Enemies  map[EnemyType]EnemyDefinition
	Timeline []TimelineEntry
}

// Load читает определения из каталога dir, либо встроенные, если dir пуст.
func Load(dir string) (*Library, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS читает enemies.yaml и waves.yaml из файловой системы fsys.
func LoadFS(fsys fs.FS) (*Library, error) {
	enemyData, err := fs.ReadFile(fsys, enemiesFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	enemies, err := ParseEnemies(enemyData)
	if err != nil {
		return nil, err
	}

	waveData, err := fs.ReadFile(fsys, wavesFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave timeline file: %w", err)
	}
	timeline, err := ParseTimeline(waveData, enemies)
	if err != nil {
		return nil, err
	}

	slog.Info("definitions loaded", "enemies", len(enemies), "timeline_entries", len(timeline))
	return &Library{Enemies: enemies, Timeline: timeline}, nil
}
