package app

import (
	"testing"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/system"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/vec"
)

const frame = 1.0 / 60.0

func testLibrary(timeline []defs.TimelineEntry) *defs.Library {
	return &defs.Library{
		Enemies: map[defs.EnemyType]defs.EnemyDefinition{
			defs.EnemyMosquito: {
				ID: defs.EnemyMosquito, Health: 2, XpWorth: 1,
				Acceleration: 100, VMax: 500, InitialSpeed: 0.01, Radius: 8,
			},
		},
		Timeline: timeline,
	}
}

func newTestGame(t *testing.T, timeline []defs.TimelineEntry) *Game {
	t.Helper()
	g := NewGame(testLibrary(timeline), utils.NewPRNGService(99))
	if g.Phase() != PhaseChoosing {
		t.Fatalf("a new run should open with a choice, phase %s", g.Phase())
	}
	if !g.Choose(0) {
		t.Fatal("could not take the first offer")
	}
	return g
}

func TestNewGameOffersFirstPowerup(t *testing.T) {
	g := NewGame(testLibrary(nil), utils.NewPRNGService(1))

	offer := g.Offer()
	if len(offer) != config.PowerupChoices {
		t.Fatalf("offer = %v", offer)
	}
	g.Update(1)
	if g.ECS.GameTime != 0 {
		t.Error("simulation advanced while choosing")
	}

	if g.Choose(5) {
		t.Error("out of range choice accepted")
	}
	if !g.Choose(1) {
		t.Fatal("valid choice rejected")
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %s, want playing", g.Phase())
	}
	if _, ok := g.ECS.Powerups[g.PlayerID].Get(offer[1]); !ok {
		t.Errorf("player does not own chosen %s", offer[1])
	}
}

func TestPlayerShootsDownEnemy(t *testing.T) {
	g := newTestGame(t, nil)
	system.AttachWeapon(g.ECS, g.PlayerID, defs.PowerMachineGun, 6)
	system.SpawnEnemy(g.ECS, g.Library.Enemies[defs.EnemyMosquito], vec.New(0, 300), g.PlayerID)

	for i := 0; i < 300 && g.Phase() == PhasePlaying; i++ {
		g.SetInput(system.PlayerInput{})
		g.Update(frame)
	}

	stats := g.Stats()
	if stats.EnemiesKilled != 1 {
		t.Errorf("kills = %d, want 1", stats.EnemiesKilled)
	}
	if stats.BulletsFired == 0 || stats.DamageDone == 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.RunID != g.RunID {
		t.Errorf("stats run id %q, game run id %q", stats.RunID, g.RunID)
	}
}

func TestWavesSpawnEnemies(t *testing.T) {
	timeline := []defs.TimelineEntry{{
		At: 1,
		Spawner: defs.SpawnerDefinition{
			Enemy: defs.EnemyMosquito, Interval: 10, PerInterval: 3, Count: 3,
			SpawnRange: [2]float64{400, 500},
		},
	}}
	g := newTestGame(t, timeline)

	for i := 0; i < 30; i++ {
		g.Update(frame)
	}
	if len(g.ECS.Enemies) != 0 {
		t.Fatal("enemies spawned before their wave")
	}
	for i := 0; i < 60; i++ {
		g.Update(frame)
	}
	if len(g.ECS.Enemies) != 3 {
		t.Errorf("expected 3 enemies after the wave started, got %d", len(g.ECS.Enemies))
	}
	if len(g.ECS.Spawners) != 0 {
		t.Error("exhausted spawner left behind")
	}
}

func TestLevelUpOpensChooser(t *testing.T) {
	g := newTestGame(t, nil)
	player, _, _ := g.Player()
	player.Xp = config.XpRequiredForLevel(1)

	for i := 0; i < 3 && g.Phase() == PhasePlaying; i++ {
		g.Update(frame)
	}

	if g.Phase() != PhaseChoosing {
		t.Fatalf("phase = %s, want choosing", g.Phase())
	}
	if player.Level != 2 {
		t.Errorf("level = %d, want 2", player.Level)
	}
}

func TestPlayerDeathEndsRun(t *testing.T) {
	g := newTestGame(t, nil)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.Damage{AppliedTo: g.PlayerID, Amount: 10_000},
	})

	g.Update(frame)
	if !g.ECS.IsDead(g.PlayerID) {
		t.Fatal("player should be dead")
	}
	if g.Phase() != PhasePlaying {
		t.Fatal("run should end only when the corpse is gone")
	}

	for i := 0; i < int(config.PlayerCorpseLifetime/frame)+10 && g.Phase() == PhasePlaying; i++ {
		g.Update(frame)
	}
	if g.Phase() != PhaseOver {
		t.Errorf("phase = %s, want over", g.Phase())
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, []defs.TimelineEntry{{
		At:      0,
		Spawner: defs.SpawnerDefinition{Enemy: defs.EnemyMosquito, Interval: 1, PerInterval: 1, Count: 50, SpawnRange: [2]float64{300, 400}},
	}})
	for i := 0; i < 120; i++ {
		g.Update(frame)
	}
	oldRun := g.RunID

	g.Restart()

	if g.RunID == oldRun {
		t.Error("restart should start a new run id")
	}
	if g.ECS.WaveTimer.Elapsed != 0 || g.ECS.WaveTimer.Cursor != 0 {
		t.Errorf("wave timer = %+v", g.ECS.WaveTimer)
	}
	if len(g.ECS.Enemies) != 0 || len(g.ECS.Spawners) != 0 {
		t.Error("world not cleared")
	}
	if _, _, ok := g.Player(); !ok {
		t.Error("restart should spawn a player")
	}
	if g.Stats().EnemiesKilled != 0 {
		t.Error("stats not reset")
	}
}
