package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnemyDefinition — архетип врага, загружаемый из enemies.yaml.
type EnemyDefinition struct {
	ID           EnemyType   `yaml:"id"`
	Health       int         `yaml:"health"`
	XpWorth      int         `yaml:"xp_worth"`
	Acceleration float64     `yaml:"acceleration"`
	VMax         float64     `yaml:"vmax"`
	InitialSpeed float64     `yaml:"initial_speed"`
	Weapon       PowerUpType `yaml:"weapon,omitempty"`
	WeaponLevel  int         `yaml:"weapon_level,omitempty"`
	Radius       float64     `yaml:"radius"`
	Color        HexColor    `yaml:"color"`
	DeadColor    HexColor    `yaml:"dead_color"`
}

// HexColor разбирает цвета вида "#rrggbb" или "#rrggbbaa".
type HexColor color.RGBA

// UnmarshalYAML реализует yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseHexColor(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = HexColor(parsed)
	return nil
}

// RGBA возвращает цвет в виде color.RGBA.
func (c HexColor) RGBA() color.RGBA {
	return color.RGBA(c)
}

// ParseHexColor разбирает строку "#rrggbb[aa]".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

type enemiesFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// ParseEnemies разбирает и проверяет определения врагов.
func ParseEnemies(data []byte) (map[EnemyType]EnemyDefinition, error) {
	var file enemiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyType]EnemyDefinition, len(file.Enemies))
	for _, def := range file.Enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition without id")
		}
		if _, dup := library[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		if def.Health <= 0 {
			return nil, fmt.Errorf("enemy %q: health must be positive", def.ID)
		}
		if def.Weapon != "" {
			if _, ok := WeaponLibrary[def.Weapon]; !ok {
				return nil, fmt.Errorf("enemy %q: unknown weapon %q", def.ID, def.Weapon)
			}
		}
		library[def.ID] = def
	}
	return library, nil
}
