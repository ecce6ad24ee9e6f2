package event

import (
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

const (
	DamageDealt     EventType = "DamageDealt"     // Снаряд попал в цель
	EntityDied      EventType = "EntityDied"      // Здоровье упало до нуля
	ProjectileFired EventType = "ProjectileFired" // Оружие выстрелило
	LevelUp         EventType = "LevelUp"         // Игрок получил уровень
	PickupCollected EventType = "PickupCollected" // Игрок подобрал ящик
	SpawnerStarted  EventType = "SpawnerStarted"  // Сработала запись расписания волн
)

// Damage — нагрузка DamageDealt.
type Damage struct {
	DamagedBy types.EntityID
	AppliedTo types.EntityID
	Amount    int
}

// Death — нагрузка EntityDied.
type Death struct {
	Entity types.EntityID
	// Position — где сущность погибла.
	Position vec.Vec2
}

// Shot — нагрузка ProjectileFired.
type Shot struct {
	FiredBy    types.EntityID
	Projectile types.EntityID
	Weapon     defs.PowerUpType
}

// Level — нагрузка LevelUp.
type Level struct {
	Player types.EntityID
	Level  int
}

// Wave — нагрузка SpawnerStarted.
type Wave struct {
	At    float64
	Enemy defs.EnemyType
	Count int
}

// Pickup — нагрузка PickupCollected.
type Pickup struct {
	Player types.EntityID
	Crate  types.EntityID
}
