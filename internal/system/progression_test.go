package system

import (
	"testing"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/vec"
)

func TestXpPelletDroppedAndCollected(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	leveling := NewLevelingSystem(ecs, cmds, dispatcher)
	enemy := SpawnEnemy(ecs, testEnemies[defs.EnemyMosquito], vec.New(20, 0), player)

	dispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: event.Death{Entity: enemy, Position: vec.New(20, 0)}})
	cmds.Apply(ecs)

	if len(ecs.XpPellets) != 1 {
		t.Fatalf("expected one xp pellet, got %d", len(ecs.XpPellets))
	}
	for id := range ecs.XpPellets {
		if ecs.Targets[id].ID != player {
			t.Error("pellet should home on the player")
		}
		if _, ok := ecs.MoveToTargets[id]; !ok {
			t.Error("pellet should steer towards its target")
		}
	}

	leveling.Update(config.FixedTimestep)
	if got := ecs.Players[player].Xp; got != 1 {
		t.Errorf("xp = %d, want 1", got)
	}
	if len(ecs.XpPellets) != 0 {
		t.Error("collected pellet should be removed")
	}
}

func TestPelletOutOfReachStays(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	spawnPlayer(ecs, vec.Zero)
	leveling := NewLevelingSystem(ecs, cmds, dispatcher)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec2: vec.New(40, 0)}
	ecs.XpPellets[id] = &component.XpPellet{Worth: 5}

	leveling.Update(config.FixedTimestep)

	if _, ok := ecs.XpPellets[id]; !ok {
		t.Error("pellet beyond the pickup radius was collected")
	}
}

func TestLevelUp(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	levels := listen(dispatcher, event.LevelUp)
	leveling := NewLevelingSystem(ecs, cmds, dispatcher)
	ecs.Players[player].Xp = 300

	leveling.Update(config.FixedTimestep)

	p := ecs.Players[player]
	if p.Level != 2 || p.Xp != 300-261 {
		t.Errorf("player = %+v, want level 2 with 39 xp", p)
	}
	if levels.count(event.LevelUp) != 1 {
		t.Errorf("expected one level up event, got %d", levels.count(event.LevelUp))
	}
}

func TestPickupDropAndCollect(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	collected := listen(dispatcher, event.PickupCollected)
	powerups := NewPowerupSystem(ecs, cmds, dispatcher, utils.NewPRNGService(5))

	for i := 0; i < 100; i++ {
		enemy := SpawnEnemy(ecs, testEnemies[defs.EnemyMosquito], vec.New(10, 0), player)
		dispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: event.Death{Entity: enemy, Position: vec.New(10, 0)}})
	}
	cmds.Apply(ecs)

	drops := len(ecs.Pickups)
	if drops < 10 || drops > 60 {
		t.Fatalf("expected roughly 30%% drops out of 100, got %d", drops)
	}

	powerups.Update(config.FixedTimestep)
	if len(ecs.Pickups) != 0 {
		t.Errorf("%d pickups left next to the player", len(ecs.Pickups))
	}
	if collected.count(event.PickupCollected) != drops {
		t.Errorf("collected %d, want %d", collected.count(event.PickupCollected), drops)
	}
}

func TestPlayerDeathDropsNothing(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	NewPowerupSystem(ecs, cmds, dispatcher, utils.NewPRNGService(5))
	NewLevelingSystem(ecs, cmds, dispatcher)

	for i := 0; i < 20; i++ {
		dispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: event.Death{Entity: player}})
	}
	cmds.Apply(ecs)

	if len(ecs.Pickups) != 0 || len(ecs.XpPellets) != 0 {
		t.Error("player death should not drop loot")
	}
}

func TestChoosePowerupAppliesComponents(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	sys := NewPowerupSystem(ecs, cmds, dispatcher, utils.NewPRNGService(5))

	for _, p := range []defs.PowerUpType{defs.PowerMachineGun, defs.PowerOvershield, defs.PowerSpecialMunitions} {
		if !sys.Choose(player, p) {
			t.Fatalf("could not choose %s", p)
		}
	}
	ecs.MachineGuns[player].CooldownRemaining = 0.25
	sys.Choose(player, defs.PowerMachineGun)

	gun, ok := ecs.MachineGuns[player]
	if !ok || gun.Level != 2 {
		t.Fatalf("machine gun = %+v", gun)
	}
	if gun.CooldownRemaining != 0.25 {
		t.Error("levelling a weapon should keep its cooldown")
	}
	if ecs.Overshields[player].Level != 1 || ecs.Munitions[player].Level != 1 {
		t.Error("overshield and munitions should be applied at level 1")
	}
	if _, ok := ecs.TargetVectors[player]; !ok {
		t.Error("armed ship needs a target vector")
	}
	if ecs.Powerups[player].Dirty {
		t.Error("applied powerups should be clean")
	}
}

func TestChoicesAreDistinct(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	sys := NewPowerupSystem(ecs, cmds, dispatcher, utils.NewPRNGService(9))

	for i := 0; i < 20; i++ {
		choices := sys.Choices(player)
		if len(choices) != config.PowerupChoices {
			t.Fatalf("got %d choices, want %d", len(choices), config.PowerupChoices)
		}
		seen := map[defs.PowerUpType]bool{}
		for _, c := range choices {
			if seen[c] {
				t.Fatalf("duplicate choice in %v", choices)
			}
			seen[c] = true
		}
	}

	for _, p := range defs.AllPowerUps {
		sys.Choose(player, p)
	}
	for _, c := range sys.Choices(player) {
		if _, owned := ecs.Powerups[player].Get(c); !owned {
			t.Errorf("full rack offered new powerup %s", c)
		}
	}
}

func TestStatsCounting(t *testing.T) {
	ecs, _, dispatcher := newWorld()
	stats := NewStatsSystem(ecs, dispatcher)
	health := NewHealthSystem(ecs, dispatcher)
	stats.Reset("run-1")
	player := spawnPlayer(ecs, vec.Zero)
	enemy := SpawnEnemy(ecs, testEnemies[defs.EnemyMosquito], vec.New(10, 0), player)
	stats.Update(0.016)

	dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.Shot{FiredBy: player}})
	dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.Shot{FiredBy: enemy}})
	dispatcher.Dispatch(event.Event{Type: event.DamageDealt, Data: event.Damage{DamagedBy: player, AppliedTo: enemy, Amount: 5}})
	dispatcher.Dispatch(event.Event{Type: event.DamageDealt, Data: event.Damage{DamagedBy: enemy, AppliedTo: player, Amount: 12}})
	health.Update(0.016)
	ecs.WaveTimer.Elapsed = 42
	stats.Update(0.016)

	got := stats.Stats()
	want := Stats{
		RunID:         "run-1",
		DamageDone:    5,
		HealthLost:    12,
		EnemiesKilled: 1,
		BulletsFired:  1,
		EnemiesAlive:  0,
		SurvivalTime:  42,
	}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}
