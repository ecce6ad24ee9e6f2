package defs

// PowerUpType перечисляет все усиления, которые может носить корабль.
// Игрок и враги пользуются одним и тем же набором.
type PowerUpType string

const (
	PowerPeaShooter       PowerUpType = "pea_shooter"
	PowerMachineGun       PowerUpType = "machine_gun"
	PowerSniper           PowerUpType = "sniper"
	PowerBile             PowerUpType = "bile"
	PowerOvershield       PowerUpType = "overshield"
	PowerSpecialMunitions PowerUpType = "special_munitions"
)

// AllPowerUps — фиксированный порядок, в котором усиления предлагаются игроку.
var AllPowerUps = []PowerUpType{
	PowerPeaShooter,
	PowerMachineGun,
	PowerSniper,
	PowerBile,
	PowerOvershield,
	PowerSpecialMunitions,
}

// IsWeapon сообщает, порождает ли усиление оружие.
func (p PowerUpType) IsWeapon() bool {
	switch p {
	case PowerPeaShooter, PowerMachineGun, PowerSniper, PowerBile:
		return true
	}
	return false
}

// Title — подпись для меню выбора.
func (p PowerUpType) Title() string {
	switch p {
	case PowerPeaShooter:
		return "Pea Shooter"
	case PowerMachineGun:
		return "Machine Gun"
	case PowerSniper:
		return "Sniper"
	case PowerBile:
		return "Bile"
	case PowerOvershield:
		return "Overshield"
	case PowerSpecialMunitions:
		return "Special Munitions"
	default:
		return string(p)
	}
}

// EnemyType — идентификатор архетипа врага из enemies.yaml.
type EnemyType string

const (
	EnemyRedPlane EnemyType = "red_plane"
	EnemyMosquito EnemyType = "mosquito"
	EnemySailBoat EnemyType = "sail_boat"
)
