// internal/app/game.go
package app

import (
	"log/slog"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/logging"
	"go-sky-shooter/internal/system"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/vec"
)

// Phase — что сейчас происходит в забеге. Слой состояний переключается по ней.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseChoosing
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseChoosing:
		return "choosing"
	default:
		return "over"
	}
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Commands        *entity.Commands
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Library         *defs.Library
	PlayerID        types.EntityID
	RunID           string

	PlayerControlSystem *system.PlayerControlSystem
	TargetingSystem     *system.TargetingSystem
	TargetVectorSystem  *system.TargetVectorSystem
	MovementSystem      *system.MovementSystem
	WeaponSystem        *system.WeaponSystem
	CollisionSystem     *system.CollisionSystem
	HealthSystem        *system.HealthSystem
	DespawnSystem       *system.DespawnSystem
	OvershieldSystem    *system.OvershieldSystem
	WaveSystem          *system.WaveSystem
	SpawnerSystem       *system.SpawnerSystem
	LevelingSystem      *system.LevelingSystem
	PowerupSystem       *system.PowerupSystem
	StatsSystem         *system.StatsSystem
	VisualEffectSystem  *system.VisualEffectSystem

	phase          Phase
	accumulator    float64
	pendingChoices int
	offer          []defs.PowerUpType
	logger         *slog.Logger
}

// NewGame initializes a new game instance and starts the first run.
func NewGame(library *defs.Library, rng *utils.PRNGService) *Game {
	ecs := entity.NewECS()
	commands := entity.NewCommands()
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		Commands:        commands,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Library:         library,
		logger:          logging.ForComponent("game"),
	}

	g.PlayerControlSystem = system.NewPlayerControlSystem(ecs)
	g.TargetingSystem = system.NewTargetingSystem(ecs)
	g.TargetVectorSystem = system.NewTargetVectorSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.WeaponSystem = system.NewWeaponSystem(ecs, commands, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, commands, eventDispatcher)
	g.HealthSystem = system.NewHealthSystem(ecs, eventDispatcher)
	g.DespawnSystem = system.NewDespawnSystem(ecs, commands)
	g.OvershieldSystem = system.NewOvershieldSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, library.Timeline, eventDispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, commands, library.Enemies, rng)
	g.LevelingSystem = system.NewLevelingSystem(ecs, commands, eventDispatcher)
	g.PowerupSystem = system.NewPowerupSystem(ecs, commands, eventDispatcher, rng)
	g.StatsSystem = system.NewStatsSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	eventDispatcher.Subscribe(event.LevelUp, g)
	eventDispatcher.Subscribe(event.PickupCollected, g)

	g.Restart()
	return g
}

// OnEvent копит заслуженные выборы усилений.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp, event.PickupCollected:
		g.pendingChoices++
	}
}

// Restart очищает мир и начинает новый забег с выбора первого усиления.
func (g *Game) Restart() {
	*g.ECS = *entity.NewECS()
	g.Commands.Discard()
	g.WaveSystem.Reset()
	g.HealthSystem.Reset()
	g.accumulator = 0

	g.RunID = logging.NewRunID()
	g.StatsSystem.Reset(g.RunID)
	g.logger = logging.ForComponent("game").With("run_id", g.RunID)

	g.PlayerID = g.createPlayerEntity()
	g.pendingChoices = 1
	g.phase = PhasePlaying
	g.openChooser()
	g.logger.Info("run started", "seed", g.Rng.Seed())
}

// Update продвигает симуляцию на один кадр. Вне PhasePlaying ничего не делает.
func (g *Game) Update(deltaTime float64) {
	if g.phase != PhasePlaying {
		return
	}
	dt := min(deltaTime, config.MaxDeltaTime)
	g.ECS.GameTime += dt

	g.TargetingSystem.Update(dt)
	g.TargetVectorSystem.Update(dt)
	g.PlayerControlSystem.Update(dt)
	g.MovementSystem.Update(dt)

	g.accumulator += dt
	for steps := 0; g.accumulator >= config.FixedTimestep; steps++ {
		if steps == config.MaxFixedSteps {
			g.accumulator = 0
			break
		}
		g.WeaponSystem.Update(config.FixedTimestep)
		g.LevelingSystem.Update(config.FixedTimestep)
		g.PowerupSystem.Update(config.FixedTimestep)
		g.accumulator -= config.FixedTimestep
	}

	g.CollisionSystem.Update(dt)
	g.HealthSystem.Update(dt)
	g.DespawnSystem.Update(dt)
	g.OvershieldSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.SpawnerSystem.Update(dt)
	g.StatsSystem.Update(dt)
	g.VisualEffectSystem.Update(dt)
	g.Commands.Apply(g.ECS)

	switch {
	case !g.ECS.Exists(g.PlayerID):
		g.phase = PhaseOver
		stats := g.StatsSystem.Stats()
		g.logger.Info("run over",
			"survived", stats.SurvivalTime,
			"kills", stats.EnemiesKilled,
			"damage_done", stats.DamageDone)
	case g.pendingChoices > 0 && !g.ECS.IsDead(g.PlayerID):
		g.openChooser()
	}
}

// SetInput передаёт управление кораблём на следующий кадр.
func (g *Game) SetInput(input system.PlayerInput) {
	g.PlayerControlSystem.SetInput(input)
}

// Phase возвращает текущую фазу забега.
func (g *Game) Phase() Phase {
	return g.phase
}

// Offer — усиления, предложенные в текущем выборе.
func (g *Game) Offer() []defs.PowerUpType {
	return g.offer
}

// Choose применяет усиление из текущего предложения по индексу.
func (g *Game) Choose(index int) bool {
	if g.phase != PhaseChoosing || index < 0 || index >= len(g.offer) {
		return false
	}
	if !g.PowerupSystem.Choose(g.PlayerID, g.offer[index]) {
		return false
	}
	g.pendingChoices--
	g.offer = nil
	if g.pendingChoices > 0 {
		g.openChooser()
	} else {
		g.phase = PhasePlaying
	}
	return true
}

func (g *Game) openChooser() {
	g.offer = g.PowerupSystem.Choices(g.PlayerID)
	if len(g.offer) == 0 {
		g.pendingChoices = 0
		g.phase = PhasePlaying
		return
	}
	g.phase = PhaseChoosing
}

// Player возвращает компонент игрока и его здоровье, если игрок ещё существует.
func (g *Game) Player() (*component.Player, *component.Health, bool) {
	player, ok := g.ECS.Players[g.PlayerID]
	if !ok {
		return nil, nil, false
	}
	return player, g.ECS.Healths[g.PlayerID], true
}

// PlayerPosition — позиция игрока для камеры.
func (g *Game) PlayerPosition() (vec.Vec2, bool) {
	pos, ok := g.ECS.Positions[g.PlayerID]
	if !ok {
		return vec.Zero, false
	}
	return pos.Vec2, true
}

// Stats — статистика текущего забега.
func (g *Game) Stats() system.Stats {
	return g.StatsSystem.Stats()
}

func (g *Game) createPlayerEntity() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Rotation: vec.New(0, 1).Angle()}
	g.ECS.Velocities[id] = &component.Velocity{Vec2: vec.New(0, config.PlayerInitialSpeedY)}
	g.ECS.Orientations[id] = &component.OrientTowardsVelocity{}
	g.ECS.Teams[id] = component.TeamFriendly
	g.ECS.AutoTargets[id] = &component.AutoTarget{}
	g.ECS.Targets[id] = &component.Target{}
	g.ECS.TargetVectors[id] = &component.TargetVector{}
	g.ECS.Healths[id] = component.NewHealth(config.PlayerHealth)
	g.ECS.Players[id] = &component.Player{Level: 1}
	g.ECS.Powerups[id] = &component.Powerups{}
	g.ECS.Renderables[id] = &component.Renderable{
		Shape:     component.ShapeShip,
		Color:     config.PlayerColor,
		DeadColor: config.PlayerDeadColor,
		Radius:    config.PlayerRadius,
		HasStroke: true,
	}
	return id
}
