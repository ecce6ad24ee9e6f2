// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	// FixedTimestep — шаг фиксированного обновления (стрельба, подбор опыта, уровни).
	FixedTimestep = 1.0 / 60.0
	// MaxFixedSteps ограничивает догоняющие шаги после долгого кадра.
	MaxFixedSteps = 5

	// FiringRange — дальность, в пределах которой вычисляется вектор на цель.
	FiringRange = 1000.0
	// ProjectileHitRadius — радиус попадания снаряда.
	ProjectileHitRadius = 40.0
	ProjectileLifetime  = 30.0
	ProjectileRadius    = 4.0
	NewWeaponCooldown   = 0.5
	ImpactEffectLife    = 0.2
	ImpactEffectRadius  = 10.0

	PlayerHealth         = 100
	PlayerThrust         = 1000.0
	PlayerMaxSpeed       = 200.0
	PlayerInitialSpeedY  = 100.0
	PlayerRadius         = 16.0
	PlayerCorpseLifetime = 3.0
	CorpseLifetime       = 10.0

	// Щит: 100 единиц на уровень, пауза после урона, затем +1 каждые 0.1 с.
	ShieldPerLevel      = 100
	ShieldRechargeDelay = 3.0
	ShieldRechargeStep  = 0.1

	// Квадрат радиуса подбора опыта и ящиков.
	PickupRadiusSquared = 1000.0
	PickupDropChance    = 0.3
	PickupRadius        = 12.0

	XpPelletSpeed  = 100.0
	XpPelletAccel  = 1.0
	XpPelletVMax   = 600.0
	XpPelletRadius = 5.0

	PowerupSlots   = 6
	PowerupChoices = 3

	CameraMinZoom = 0.5
	CameraMaxZoom = 2.0
	ZoomStep      = 0.1

	// FollowEpsilon — минимальное расстояние до точки касания, при котором корабль рулит к ней.
	FollowEpsilon = 5.0

	SampleRate = 44100
)

var (
	BackgroundColor   = color.RGBA{40, 110, 170, 255}
	GridColor         = color.RGBA{60, 130, 190, 255}
	PlayerColor       = color.RGBA{240, 240, 240, 255}
	PlayerDeadColor   = color.RGBA{90, 90, 90, 255}
	EnemyDeadColor    = color.RGBA{60, 40, 40, 255}
	FriendlyShotColor = color.RGBA{255, 215, 0, 255}
	HostileShotColor  = color.RGBA{255, 80, 80, 255}
	BileColor         = color.RGBA{120, 220, 60, 255}
	ImpactColor       = color.RGBA{255, 255, 200, 200}
	XpPelletColor     = color.RGBA{80, 255, 160, 255}
	PickupColor       = color.RGBA{170, 120, 60, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	HealthBarColor = color.RGBA{220, 60, 60, 220}
	ShieldBarColor = color.RGBA{70, 160, 255, 220}
	XpBarColor     = color.RGBA{70, 100, 120, 220}
	PanelColor     = color.RGBA{200, 100, 0, 230}
	ButtonColor    = color.RGBA{0, 80, 0, 255}
	OverlayColor   = color.RGBA{0, 0, 0, 128}
)

// XpRequiredForLevel возвращает количество опыта для перехода с уровня level на следующий.
func XpRequiredForLevel(level int) int {
	return int(71.429*float64(level*level) + 190.0)
}
