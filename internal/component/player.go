// internal/component/player.go
package component

import (
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
)

// Player хранит информацию, специфичную для игрока: уровень и опыт.
type Player struct {
	Level int
	Xp    int
}

// XpPellet — шарик опыта, летящий к игроку.
type XpPellet struct {
	Worth int
}

// Pickup — ящик с усилением.
type Pickup struct{}

// Powerup — усиление в слоте и его уровень.
type Powerup struct {
	Type  defs.PowerUpType
	Level int
}

// Powerups — слоты усилений корабля. Пустой слот имеет пустой Type.
type Powerups struct {
	Slots [config.PowerupSlots]Powerup
	// Dirty выставляется при изменении, менеджер усилений сбрасывает его.
	Dirty bool
}

// UnusedSlots — количество пустых слотов.
func (p *Powerups) UnusedSlots() int {
	n := 0
	for _, s := range p.Slots {
		if s.Type == "" {
			n++
		}
	}
	return n
}

// Get возвращает усиление данного типа.
func (p *Powerups) Get(t defs.PowerUpType) (*Powerup, bool) {
	for i := range p.Slots {
		if p.Slots[i].Type == t {
			return &p.Slots[i], true
		}
	}
	return nil, false
}

// Add повышает уровень имеющегося усиления или занимает первый пустой слот.
// Возвращает false, если слотов не осталось.
func (p *Powerups) Add(t defs.PowerUpType) bool {
	if existing, ok := p.Get(t); ok {
		existing.Level++
		p.Dirty = true
		return true
	}
	for i := range p.Slots {
		if p.Slots[i].Type == "" {
			p.Slots[i] = Powerup{Type: t, Level: 1}
			p.Dirty = true
			return true
		}
	}
	return false
}

// Current — типы занятых слотов по порядку.
func (p *Powerups) Current() []defs.PowerUpType {
	var out []defs.PowerUpType
	for _, s := range p.Slots {
		if s.Type != "" {
			out = append(out, s.Type)
		}
	}
	return out
}

// Unused — типы усилений, которых у корабля ещё нет.
func (p *Powerups) Unused() []defs.PowerUpType {
	var out []defs.PowerUpType
	for _, t := range defs.AllPowerUps {
		if _, ok := p.Get(t); !ok {
			out = append(out, t)
		}
	}
	return out
}
