package component

import "go-sky-shooter/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID defs.EnemyType
}

// XpWorth — сколько опыта выпадает при смерти.
type XpWorth struct {
	Amount int
}

// Spawner — сущность, порождающая врагов пачками вокруг игрока.
type Spawner struct {
	EnemyType defs.EnemyType
	// Interval — пауза между пачками, CurrentInterval — остаток до следующей.
	Interval        float64
	CurrentInterval float64
	PerInterval     int
	// Remaining — сколько врагов спаунер ещё создаст.
	Remaining int
	MinRange  float64
	MaxRange  float64
}

// NewSpawner создаёт спаунер из записи расписания. Первая пачка выходит сразу.
func NewSpawner(def defs.SpawnerDefinition) *Spawner {
	return &Spawner{
		EnemyType:   def.Enemy,
		Interval:    def.Interval,
		PerInterval: def.PerInterval,
		Remaining:   def.Count,
		MinRange:    def.SpawnRange[0],
		MaxRange:    def.SpawnRange[1],
	}
}
