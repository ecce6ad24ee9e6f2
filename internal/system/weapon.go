// internal/system/weapon.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// WeaponSystem ведёт перезарядку оружия и создаёт снаряды.
// Работает на фиксированном шаге; новые сущности создаются через буфер команд.
type WeaponSystem struct {
	ecs             *entity.ECS
	commands        *entity.Commands
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, commands *entity.Commands, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{
		ecs:             ecs,
		commands:        commands,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	updateWeapons(s, s.ecs.MachineGuns, deltaTime)
	updateWeapons(s, s.ecs.PeaShooters, deltaTime)
	updateWeapons(s, s.ecs.Snipers, deltaTime)
	updateWeapons(s, s.ecs.Biles, deltaTime)
}

// updateWeapons — общий цикл для всех видов оружия.
// Перезарядка уменьшается только пока она положительна; готовое оружие ждёт цель.
func updateWeapons[W component.Weapon](s *WeaponSystem, store map[types.EntityID]W, deltaTime float64) {
	for _, id := range entity.SortedIDs(store) {
		weapon := store[id]
		state := weapon.State()
		if state.CooldownRemaining > 0 {
			state.CooldownRemaining -= deltaTime
		}
		if !state.Ready() || s.ecs.IsDead(id) {
			continue
		}
		vector, ok := s.ecs.TargetVectors[id]
		if !ok || !vector.Valid {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		def := weapon.Definition()
		s.fire(id, pos.Vec2, vector.Dir, def, state.Level)
		state.CooldownRemaining = def.CooldownAt(state.Level)
	}
}

func (s *WeaponSystem) fire(owner types.EntityID, origin, direction vec.Vec2, def *defs.WeaponDefinition, level int) {
	team := s.ecs.Teams[owner]
	// Множитель берётся в момент выстрела; последующие улучшения на летящие снаряды не влияют.
	damage := def.DamageAt(level) * s.ecs.Munitions[owner].DamageMultiplier()

	shotColor := def.Color
	if team == component.TeamHostile {
		shotColor = config.HostileShotColor
	}

	for _, angle := range def.BarrelAngles(level) {
		velocity := direction.Rotate(angle).Scale(def.ProjectileSpeed)
		s.commands.Spawn(func(ecs *entity.ECS, id types.EntityID) {
			ecs.Positions[id] = &component.Position{Vec2: origin, Rotation: velocity.Angle()}
			ecs.Velocities[id] = &component.Velocity{Vec2: velocity}
			ecs.Orientations[id] = &component.OrientTowardsVelocity{}
			ecs.Teams[id] = team
			ecs.Projectiles[id] = &component.Projectile{
				FiredBy:   owner,
				Damage:    damage,
				Size:      config.ProjectileHitRadius,
				HitPoints: def.ProjectileHealth,
				OnImpact:  s.spawnImpact,
			}
			ecs.DespawnTimers[id] = &component.DespawnTimer{Remaining: def.Lifetime}
			ecs.Renderables[id] = &component.Renderable{
				Shape:  component.ShapeCircle,
				Color:  shotColor,
				Radius: config.ProjectileRadius,
			}
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ProjectileFired,
				Data: event.Shot{FiredBy: owner, Projectile: id, Weapon: def.Kind},
			})
		})
	}
}

// spawnImpact создаёт короткую вспышку в точке попадания.
func (s *WeaponSystem) spawnImpact(at vec.Vec2) {
	s.commands.Spawn(func(ecs *entity.ECS, id types.EntityID) {
		ecs.Positions[id] = &component.Position{Vec2: at}
		ecs.ImpactEffects[id] = &component.ImpactEffect{}
		ecs.DespawnTimers[id] = &component.DespawnTimer{Remaining: config.ImpactEffectLife}
		ecs.Renderables[id] = &component.Renderable{
			Shape:  component.ShapeCircle,
			Color:  config.ImpactColor,
			Radius: config.ImpactEffectRadius,
		}
	})
}
