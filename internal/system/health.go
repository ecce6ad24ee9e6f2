// internal/system/health.go
package system

import (
	"log/slog"
	"slices"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
)

const damageFlashDuration = 0.15

// HealthSystem копит события урона и применяет их в своей фазе кадра:
// сначала щит, затем здоровье, затем проверка смерти.
type HealthSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	pending         []event.Damage
	touched         []types.EntityID
}

func NewHealthSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *HealthSystem {
	s := &HealthSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.DamageDealt, s)
	return s
}

// OnEvent ставит урон в очередь в порядке поступления.
func (s *HealthSystem) OnEvent(e event.Event) {
	if damage, ok := e.Data.(event.Damage); ok {
		s.pending = append(s.pending, damage)
	}
}

// Reset отбрасывает накопленный урон (новая игра).
func (s *HealthSystem) Reset() {
	s.pending = nil
	s.touched = nil
}

func (s *HealthSystem) Update(deltaTime float64) {
	s.applyDamage()
	s.checkDeaths()
}

func (s *HealthSystem) applyDamage() {
	for _, damage := range s.pending {
		health, ok := s.ecs.Healths[damage.AppliedTo]
		if !ok {
			continue
		}
		ApplyDamage(health, s.ecs.ShieldStates[damage.AppliedTo], damage.Amount)
		s.touched = append(s.touched, damage.AppliedTo)

		if flash, ok := s.ecs.DamageFlashes[damage.AppliedTo]; ok {
			flash.Timer = flash.Duration
		} else {
			s.ecs.DamageFlashes[damage.AppliedTo] = &component.DamageFlash{
				Timer:    damageFlashDuration,
				Duration: damageFlashDuration,
			}
		}
	}
	s.pending = s.pending[:0]
}

// ApplyDamage проводит урон через щит: щит откладывает перезарядку и поглощает,
// что может, остаток уходит в здоровье.
func ApplyDamage(health *component.Health, shield *component.OvershieldState, amount int) {
	if shield == nil {
		health.Value -= amount
		return
	}
	shield.SecsUntilRecharge = config.ShieldRechargeDelay
	shield.Current -= amount
	if shield.Current < 0 {
		health.Value -= -shield.Current
		shield.Current = 0
	}
}

// checkDeaths проходит только по сущностям, получившим урон в этом кадре.
// Метка Dead гарантирует одно событие смерти на сущность.
func (s *HealthSystem) checkDeaths() {
	slices.Sort(s.touched)
	for _, id := range slices.Compact(s.touched) {
		health, ok := s.ecs.Healths[id]
		if !ok || health.Value > 0 || s.ecs.IsDead(id) {
			continue
		}

		s.ecs.Deads[id] = &component.Dead{}
		delete(s.ecs.MoveToTargets, id)

		lifetime := config.CorpseLifetime
		_, isPlayer := s.ecs.Players[id]
		if isPlayer {
			lifetime = config.PlayerCorpseLifetime
			slog.Info("player destroyed", "game_time", s.ecs.GameTime)
		}
		s.ecs.DespawnTimers[id] = &component.DespawnTimer{Remaining: lifetime}

		death := event.Death{Entity: id}
		if pos, ok := s.ecs.Positions[id]; ok {
			death.Position = pos.Vec2
		}
		slog.Debug("entity died", "entity", id, "player", isPlayer)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: death})
	}
	s.touched = s.touched[:0]
}

// DespawnSystem отсчитывает DespawnTimer и удаляет сущности через буфер команд.
type DespawnSystem struct {
	ecs      *entity.ECS
	commands *entity.Commands
}

func NewDespawnSystem(ecs *entity.ECS, commands *entity.Commands) *DespawnSystem {
	return &DespawnSystem{ecs: ecs, commands: commands}
}

func (s *DespawnSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.DespawnTimers) {
		timer := s.ecs.DespawnTimers[id]
		timer.Remaining -= deltaTime
		if timer.Remaining <= 0 {
			s.commands.Despawn(id)
		}
	}
}
