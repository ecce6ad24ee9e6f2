// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Accelerations map[types.EntityID]*component.ConstantAcceleration
	SpeedLimits   map[types.EntityID]*component.VMax
	Orientations  map[types.EntityID]*component.OrientTowardsVelocity
	MoveToTargets map[types.EntityID]*component.MoveToTarget

	Teams         map[types.EntityID]component.Team
	Targets       map[types.EntityID]*component.Target
	TargetVectors map[types.EntityID]*component.TargetVector
	AutoTargets   map[types.EntityID]*component.AutoTarget

	MachineGuns map[types.EntityID]*component.MachineGun
	PeaShooters map[types.EntityID]*component.PeaShooter
	Snipers     map[types.EntityID]*component.Sniper
	Biles       map[types.EntityID]*component.Bile
	Munitions   map[types.EntityID]*component.SpecialMunitions
	Projectiles map[types.EntityID]*component.Projectile

	Healths       map[types.EntityID]*component.Health
	Deads         map[types.EntityID]*component.Dead
	DespawnTimers map[types.EntityID]*component.DespawnTimer
	Overshields   map[types.EntityID]*component.Overshield
	ShieldStates  map[types.EntityID]*component.OvershieldState

	Enemies   map[types.EntityID]*component.Enemy
	XpWorths  map[types.EntityID]*component.XpWorth
	Spawners  map[types.EntityID]*component.Spawner
	Players   map[types.EntityID]*component.Player
	XpPellets map[types.EntityID]*component.XpPellet
	Pickups   map[types.EntityID]*component.Pickup
	Powerups  map[types.EntityID]*component.Powerups

	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	ImpactEffects map[types.EntityID]*component.ImpactEffect

	WaveTimer *component.WaveTimer
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Accelerations: make(map[types.EntityID]*component.ConstantAcceleration),
		SpeedLimits:   make(map[types.EntityID]*component.VMax),
		Orientations:  make(map[types.EntityID]*component.OrientTowardsVelocity),
		MoveToTargets: make(map[types.EntityID]*component.MoveToTarget),
		Teams:         make(map[types.EntityID]component.Team),
		Targets:       make(map[types.EntityID]*component.Target),
		TargetVectors: make(map[types.EntityID]*component.TargetVector),
		AutoTargets:   make(map[types.EntityID]*component.AutoTarget),
		MachineGuns:   make(map[types.EntityID]*component.MachineGun),
		PeaShooters:   make(map[types.EntityID]*component.PeaShooter),
		Snipers:       make(map[types.EntityID]*component.Sniper),
		Biles:         make(map[types.EntityID]*component.Bile),
		Munitions:     make(map[types.EntityID]*component.SpecialMunitions),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Healths:       make(map[types.EntityID]*component.Health),
		Deads:         make(map[types.EntityID]*component.Dead),
		DespawnTimers: make(map[types.EntityID]*component.DespawnTimer),
		Overshields:   make(map[types.EntityID]*component.Overshield),
		ShieldStates:  make(map[types.EntityID]*component.OvershieldState),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		XpWorths:      make(map[types.EntityID]*component.XpWorth),
		Spawners:      make(map[types.EntityID]*component.Spawner),
		Players:       make(map[types.EntityID]*component.Player),
		XpPellets:     make(map[types.EntityID]*component.XpPellet),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		Powerups:      make(map[types.EntityID]*component.Powerups),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		ImpactEffects: make(map[types.EntityID]*component.ImpactEffect),
		WaveTimer:     &component.WaveTimer{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists сообщает, есть ли у сущности позиция. Все игровые сущности её имеют,
// кроме спаунеров.
func (ecs *ECS) Exists(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	if _, ok := ecs.Positions[id]; ok {
		return true
	}
	_, ok := ecs.Spawners[id]
	return ok
}

// IsDead сообщает, помечена ли сущность мёртвой.
func (ecs *ECS) IsDead(id types.EntityID) bool {
	_, dead := ecs.Deads[id]
	return dead
}

// Player возвращает единственного игрока. ok == false, если игрока нет.
func (ecs *ECS) Player() (types.EntityID, *component.Player, bool) {
	for id, p := range ecs.Players {
		return id, p, true
	}
	return 0, nil, false
}

// RemoveWeapons снимает с сущности всё оружие.
func (ecs *ECS) RemoveWeapons(id types.EntityID) {
	delete(ecs.MachineGuns, id)
	delete(ecs.PeaShooters, id)
	delete(ecs.Snipers, id)
	delete(ecs.Biles, id)
}

// Despawn удаляет сущность из всех хранилищ.
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Accelerations, id)
	delete(ecs.SpeedLimits, id)
	delete(ecs.Orientations, id)
	delete(ecs.MoveToTargets, id)
	delete(ecs.Teams, id)
	delete(ecs.Targets, id)
	delete(ecs.TargetVectors, id)
	delete(ecs.AutoTargets, id)
	ecs.RemoveWeapons(id)
	delete(ecs.Munitions, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Healths, id)
	delete(ecs.Deads, id)
	delete(ecs.DespawnTimers, id)
	delete(ecs.Overshields, id)
	delete(ecs.ShieldStates, id)
	delete(ecs.Enemies, id)
	delete(ecs.XpWorths, id)
	delete(ecs.Spawners, id)
	delete(ecs.Players, id)
	delete(ecs.XpPellets, id)
	delete(ecs.Pickups, id)
	delete(ecs.Powerups, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.ImpactEffects, id)
}

// SortedIDs возвращает ключи хранилища по возрастанию, чтобы проходы по
// сущностям не зависели от случайного порядка обхода map.
func SortedIDs[V any](store map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(store))
}
