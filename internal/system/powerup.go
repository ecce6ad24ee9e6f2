// internal/system/powerup.go
package system

import (
	"log/slog"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/internal/utils"
)

// AttachWeapon выдаёт сущности оружие нужного уровня.
// Если такое оружие уже есть, меняется только уровень, перезарядка сохраняется.
func AttachWeapon(ecs *entity.ECS, id types.EntityID, kind defs.PowerUpType, level int) {
	switch kind {
	case defs.PowerMachineGun:
		if w, ok := ecs.MachineGuns[id]; ok {
			w.Level = level
		} else {
			ecs.MachineGuns[id] = component.NewMachineGun(level)
		}
	case defs.PowerPeaShooter:
		if w, ok := ecs.PeaShooters[id]; ok {
			w.Level = level
		} else {
			ecs.PeaShooters[id] = component.NewPeaShooter(level)
		}
	case defs.PowerSniper:
		if w, ok := ecs.Snipers[id]; ok {
			w.Level = level
		} else {
			ecs.Snipers[id] = component.NewSniper(level)
		}
	case defs.PowerBile:
		if w, ok := ecs.Biles[id]; ok {
			w.Level = level
		} else {
			ecs.Biles[id] = component.NewBile(level)
		}
	default:
		slog.Warn("not a weapon", "powerup", kind)
		return
	}
	if _, ok := ecs.TargetVectors[id]; !ok {
		ecs.TargetVectors[id] = &component.TargetVector{}
	}
}

// PowerupSystem роняет ящики с врагов, подбирает их и применяет усиления к кораблю.
type PowerupSystem struct {
	ecs             *entity.ECS
	commands        *entity.Commands
	eventDispatcher *event.Dispatcher
	prng            *utils.PRNGService
}

func NewPowerupSystem(ecs *entity.ECS, commands *entity.Commands, eventDispatcher *event.Dispatcher, prng *utils.PRNGService) *PowerupSystem {
	s := &PowerupSystem{
		ecs:             ecs,
		commands:        commands,
		eventDispatcher: eventDispatcher,
		prng:            prng,
	}
	eventDispatcher.Subscribe(event.EntityDied, s)
	return s
}

// OnEvent с некоторой вероятностью оставляет ящик на месте погибшего врага.
func (s *PowerupSystem) OnEvent(e event.Event) {
	death, ok := e.Data.(event.Death)
	if !ok {
		return
	}
	if _, isEnemy := s.ecs.Enemies[death.Entity]; !isEnemy {
		return
	}
	if !s.prng.Bool(config.PickupDropChance) {
		return
	}
	s.commands.Spawn(func(ecs *entity.ECS, id types.EntityID) {
		ecs.Positions[id] = &component.Position{Vec2: death.Position}
		ecs.Pickups[id] = &component.Pickup{}
		ecs.Renderables[id] = &component.Renderable{
			Shape:     component.ShapeSquare,
			Color:     config.PickupColor,
			Radius:    config.PickupRadius,
			HasStroke: true,
		}
	})
}

// Update работает на фиксированном шаге: подбор ящиков игроком.
func (s *PowerupSystem) Update(deltaTime float64) {
	playerID, _, ok := s.ecs.Player()
	if !ok || s.ecs.IsDead(playerID) {
		return
	}
	playerPos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Pickups) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if pos.Sub(playerPos.Vec2).LengthSquared() < config.PickupRadiusSquared {
			s.ecs.Despawn(id)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PickupCollected,
				Data: event.Pickup{Player: playerID, Crate: id},
			})
		}
	}
}

// ApplyPowerups переносит изменившиеся слоты на компоненты: оружие, боеприпасы, щит.
func (s *PowerupSystem) ApplyPowerups() {
	for _, id := range entity.SortedIDs(s.ecs.Powerups) {
		powerups := s.ecs.Powerups[id]
		if !powerups.Dirty {
			continue
		}
		for _, slot := range powerups.Slots {
			switch {
			case slot.Type == "":
			case slot.Type.IsWeapon():
				AttachWeapon(s.ecs, id, slot.Type, slot.Level)
			case slot.Type == defs.PowerSpecialMunitions:
				s.ecs.Munitions[id] = &component.SpecialMunitions{Level: slot.Level}
			case slot.Type == defs.PowerOvershield:
				s.ecs.Overshields[id] = &component.Overshield{Level: slot.Level}
			}
		}
		powerups.Dirty = false
	}
}

// Choices предлагает до PowerupChoices разных усилений: имеющиеся улучшаются,
// новые предлагаются, пока есть свободные слоты. Каждый свободный слот
// повторяет неиспользованные типы в пуле ещё раз.
func (s *PowerupSystem) Choices(id types.EntityID) []defs.PowerUpType {
	powerups, ok := s.ecs.Powerups[id]
	if !ok {
		return nil
	}
	pool := powerups.Current()
	unused := powerups.Unused()
	for i := 0; i < powerups.UnusedSlots(); i++ {
		pool = append(pool, unused...)
	}
	return s.prng.ChooseDistinct(pool, config.PowerupChoices)
}

// Choose добавляет выбранное усиление и сразу применяет его.
func (s *PowerupSystem) Choose(id types.EntityID, choice defs.PowerUpType) bool {
	powerups, ok := s.ecs.Powerups[id]
	if !ok || !powerups.Add(choice) {
		return false
	}
	slog.Info("powerup chosen", "powerup", choice)
	s.ApplyPowerups()
	return true
}
