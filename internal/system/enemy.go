// internal/system/enemy.go
package system

import (
	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

// SpawnEnemy создаёт врага по определению. Враг летит к target и целится в него.
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, at vec.Vec2, target types.EntityID) types.EntityID {
	id := ecs.NewEntity()

	heading := vec.New(0, 1)
	if targetPos, ok := ecs.Positions[target]; ok {
		if toTarget := targetPos.Sub(at); !toTarget.IsZero() {
			heading = toTarget.Normalize()
		}
	}

	ecs.Positions[id] = &component.Position{Vec2: at, Rotation: heading.Angle()}
	ecs.Velocities[id] = &component.Velocity{Vec2: heading.Scale(def.InitialSpeed)}
	ecs.Accelerations[id] = &component.ConstantAcceleration{Factor: def.Acceleration}
	ecs.SpeedLimits[id] = &component.VMax{Limit: def.VMax}
	ecs.Orientations[id] = &component.OrientTowardsVelocity{}
	ecs.MoveToTargets[id] = &component.MoveToTarget{}
	ecs.Teams[id] = component.TeamHostile
	ecs.Targets[id] = &component.Target{ID: target}
	ecs.TargetVectors[id] = &component.TargetVector{}
	ecs.Healths[id] = component.NewHealth(def.Health)
	ecs.Enemies[id] = &component.Enemy{DefID: def.ID}
	if def.XpWorth > 0 {
		ecs.XpWorths[id] = &component.XpWorth{Amount: def.XpWorth}
	}
	ecs.Renderables[id] = &component.Renderable{
		Shape:     component.ShapeShip,
		Color:     def.Color.RGBA(),
		DeadColor: def.DeadColor.RGBA(),
		Radius:    float32(def.Radius),
	}
	if def.Weapon != "" {
		AttachWeapon(ecs, id, def.Weapon, def.WeaponLevel)
	}
	return id
}
