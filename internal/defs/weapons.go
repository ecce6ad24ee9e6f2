package defs

import (
	"image/color"
	"math"
)

// MaxWeaponLevel — уровни выше этого используют последнюю строку таблиц.
const MaxWeaponLevel = 6

// WeaponDefinition описывает таблицы характеристик оружия по уровням.
type WeaponDefinition struct {
	Kind PowerUpType
	// Cooldowns индексируется уровнем 0..MaxWeaponLevel.
	Cooldowns [MaxWeaponLevel + 1]float64
	// Damage по корзинам уровней: 0-2, 3-5, 6+.
	Damage           [3]int
	ProjectileSpeed  float64
	ProjectileHealth int
	Lifetime         float64
	Color            color.RGBA
	// BasePellets > 1 делает оружие веерным; каждые ExtraPelletEvery уровней добавляют снаряд.
	BasePellets      int
	ExtraPelletEvery int
	// Spread — половина угла веера в радианах.
	Spread float64
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxWeaponLevel {
		return MaxWeaponLevel
	}
	return level
}

// CooldownAt возвращает перезарядку для уровня.
func (w *WeaponDefinition) CooldownAt(level int) float64 {
	return w.Cooldowns[clampLevel(level)]
}

// DamageAt возвращает урон для уровня.
func (w *WeaponDefinition) DamageAt(level int) int {
	switch l := clampLevel(level); {
	case l <= 2:
		return w.Damage[0]
	case l <= 5:
		return w.Damage[1]
	default:
		return w.Damage[2]
	}
}

// PelletCount — количество снарядов за выстрел.
func (w *WeaponDefinition) PelletCount(level int) int {
	n := w.BasePellets
	if n < 1 {
		n = 1
	}
	if w.ExtraPelletEvery > 0 && level > 0 {
		n += level / w.ExtraPelletEvery
	}
	return n
}

// BarrelAngles раскладывает снаряды равномерно по вееру [-Spread, +Spread].
func (w *WeaponDefinition) BarrelAngles(level int) []float64 {
	n := w.PelletCount(level)
	if n == 1 || w.Spread == 0 {
		return []float64{0}
	}
	angles := make([]float64, n)
	step := 2 * w.Spread / float64(n-1)
	for i := range angles {
		angles[i] = -w.Spread + step*float64(i)
	}
	return angles
}

// WeaponLibrary — таблицы всех видов оружия.
var WeaponLibrary = map[PowerUpType]*WeaponDefinition{
	PowerMachineGun: {
		Kind:             PowerMachineGun,
		Cooldowns:        [MaxWeaponLevel + 1]float64{0.5, 0.5, 0.4, 0.3, 0.2, 0.1, 0.05},
		Damage:           [3]int{2, 5, 6},
		ProjectileSpeed:  150,
		ProjectileHealth: 1,
		Lifetime:         30,
		Color:            color.RGBA{255, 215, 0, 255},
	},
	PowerPeaShooter: {
		Kind:             PowerPeaShooter,
		Cooldowns:        [MaxWeaponLevel + 1]float64{2.5, 1.0, 0.9, 0.8, 0.7, 0.6, 0.5},
		Damage:           [3]int{5, 10, 6},
		ProjectileSpeed:  200,
		ProjectileHealth: 2,
		Lifetime:         30,
		Color:            color.RGBA{120, 200, 80, 255},
	},
	PowerSniper: {
		Kind:             PowerSniper,
		Cooldowns:        [MaxWeaponLevel + 1]float64{5.0, 5.0, 5.0, 5.0, 4.0, 3.0, 2.0},
		Damage:           [3]int{100, 100, 6},
		ProjectileSpeed:  500,
		ProjectileHealth: 10,
		Lifetime:         30,
		Color:            color.RGBA{255, 255, 255, 255},
	},
	PowerBile: {
		Kind:             PowerBile,
		Cooldowns:        [MaxWeaponLevel + 1]float64{1.5, 1.5, 1.3, 1.1, 0.9, 0.8, 0.7},
		Damage:           [3]int{3, 4, 5},
		ProjectileSpeed:  180,
		ProjectileHealth: 1,
		Lifetime:         2,
		Color:            color.RGBA{120, 220, 60, 255},
		BasePellets:      3,
		ExtraPelletEvery: 2,
		Spread:           20 * math.Pi / 180,
	},
}
