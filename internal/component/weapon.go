package component

import (
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
)

// Weapon — общий интерфейс для закрытого набора видов оружия.
// Характеристики берутся из таблиц defs по уровню.
type Weapon interface {
	Definition() *defs.WeaponDefinition
	State() *WeaponState
}

// WeaponState — уровень и оставшаяся перезарядка.
// Пока CooldownRemaining > 0 оружие перезаряжается, иначе готово к выстрелу.
type WeaponState struct {
	Level             int
	CooldownRemaining float64
}

func (s *WeaponState) State() *WeaponState {
	return s
}

// Ready сообщает, может ли оружие выстрелить.
func (s *WeaponState) Ready() bool {
	return s.CooldownRemaining <= 0
}

// MachineGun — скорострельное оружие.
type MachineGun struct{ WeaponState }

func (*MachineGun) Definition() *defs.WeaponDefinition {
	return defs.WeaponLibrary[defs.PowerMachineGun]
}

// PeaShooter — одиночные пробивающие выстрелы.
type PeaShooter struct{ WeaponState }

func (*PeaShooter) Definition() *defs.WeaponDefinition {
	return defs.WeaponLibrary[defs.PowerPeaShooter]
}

// Sniper — редкий мощный выстрел, пробивает до десяти целей.
type Sniper struct{ WeaponState }

func (*Sniper) Definition() *defs.WeaponDefinition {
	return defs.WeaponLibrary[defs.PowerSniper]
}

// Bile — веер короткоживущих снарядов.
type Bile struct{ WeaponState }

func (*Bile) Definition() *defs.WeaponDefinition {
	return defs.WeaponLibrary[defs.PowerBile]
}

func newState(level int) WeaponState {
	return WeaponState{Level: level, CooldownRemaining: config.NewWeaponCooldown}
}

func NewMachineGun(level int) *MachineGun { return &MachineGun{newState(level)} }
func NewPeaShooter(level int) *PeaShooter { return &PeaShooter{newState(level)} }
func NewSniper(level int) *Sniper         { return &Sniper{newState(level)} }
func NewBile(level int) *Bile             { return &Bile{newState(level)} }

// SpecialMunitions увеличивает урон всего оружия владельца.
type SpecialMunitions struct {
	Level int
}

// DamageMultiplier — множитель урона, не меньше единицы.
func (m *SpecialMunitions) DamageMultiplier() int {
	if m == nil || m.Level < 1 {
		return 1
	}
	return m.Level
}
