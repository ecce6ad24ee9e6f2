package system

import (
	"testing"

	"go-sky-shooter/internal/defs"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/utils"
	"go-sky-shooter/pkg/vec"
)

var testEnemies = map[defs.EnemyType]defs.EnemyDefinition{
	defs.EnemyRedPlane: {
		ID: defs.EnemyRedPlane, Health: 20, XpWorth: 10,
		Acceleration: 1000, VMax: 100, InitialSpeed: 1,
		Weapon: defs.PowerPeaShooter, Radius: 18,
	},
	defs.EnemyMosquito: {
		ID: defs.EnemyMosquito, Health: 2, XpWorth: 1,
		Acceleration: 100, VMax: 500, InitialSpeed: 0.01, Radius: 8,
	},
}

func twoEntryTimeline() []defs.TimelineEntry {
	return []defs.TimelineEntry{
		{At: 0, Spawner: defs.SpawnerDefinition{Enemy: defs.EnemyRedPlane, Interval: 1, PerInterval: 1, Count: 1, SpawnRange: [2]float64{100, 200}}},
		{At: 5, Spawner: defs.SpawnerDefinition{Enemy: defs.EnemyMosquito, Interval: 1, PerInterval: 1, Count: 1, SpawnRange: [2]float64{100, 200}}},
	}
}

func TestWaveTimelineCursor(t *testing.T) {
	ecs, _, dispatcher := newWorld()
	started := listen(dispatcher, event.SpawnerStarted)
	sys := NewWaveSystem(ecs, twoEntryTimeline(), dispatcher)

	steps := []struct {
		advance float64
		want    []defs.EnemyType
	}{
		{4, []defs.EnemyType{defs.EnemyRedPlane}},
		{2, []defs.EnemyType{defs.EnemyMosquito}},
		{4, nil},
	}

	for i, step := range steps {
		before := len(started.events)
		fired := sys.Advance(step.advance)
		got := started.events[before:]
		if fired != len(step.want) || len(got) != len(step.want) {
			t.Fatalf("step %d: fired %d entries, want %d", i, fired, len(step.want))
		}
		for j, e := range got {
			if enemy := e.Data.(event.Wave).Enemy; enemy != step.want[j] {
				t.Errorf("step %d: started %s, want %s", i, enemy, step.want[j])
			}
		}
	}
	if len(ecs.Spawners) != 2 {
		t.Errorf("expected 2 spawners, got %d", len(ecs.Spawners))
	}
	if ecs.WaveTimer.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", ecs.WaveTimer.Cursor)
	}
}

func TestWaveReset(t *testing.T) {
	ecs, _, dispatcher := newWorld()
	sys := NewWaveSystem(ecs, twoEntryTimeline(), dispatcher)
	sys.Advance(10)

	sys.Reset()
	if ecs.WaveTimer.Elapsed != 0 || ecs.WaveTimer.Cursor != 0 {
		t.Fatalf("timer after reset = %+v", ecs.WaveTimer)
	}
	if fired := sys.Advance(0.1); fired != 1 {
		t.Errorf("after reset the first entry should fire again, fired %d", fired)
	}
}

func TestSpawnerExhaustion(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	player := spawnPlayer(ecs, vec.New(500, 500))
	timeline := []defs.TimelineEntry{{
		At: 0,
		Spawner: defs.SpawnerDefinition{
			Enemy: defs.EnemyMosquito, Interval: 1, PerInterval: 2, Count: 5,
			SpawnRange: [2]float64{100, 200},
		},
	}}
	NewWaveSystem(ecs, timeline, dispatcher).Advance(0.1)
	sys := NewSpawnerSystem(ecs, cmds, testEnemies, utils.NewPRNGService(11))

	sys.Update(0.1)
	if len(ecs.Enemies) != 2 {
		t.Fatalf("first batch should spawn immediately, got %d enemies", len(ecs.Enemies))
	}
	for i := 0; i < 30; i++ {
		sys.Update(0.1)
		cmds.Apply(ecs)
	}

	if len(ecs.Enemies) != 5 {
		t.Errorf("spawned %d enemies, want 5", len(ecs.Enemies))
	}
	if len(ecs.Spawners) != 0 {
		t.Error("exhausted spawner should despawn itself")
	}
	playerPos := ecs.Positions[player].Vec2
	for id := range ecs.Enemies {
		d := ecs.Positions[id].Distance(playerPos)
		if d < 100-1e-9 || d > 200+1e-9 {
			t.Errorf("enemy %d spawned %f away, want within [100, 200]", id, d)
		}
		if ecs.Targets[id].ID != player {
			t.Errorf("enemy %d does not target the player", id)
		}
	}
}

func TestSpawnerWithoutPlayerWaits(t *testing.T) {
	ecs, cmds, dispatcher := newWorld()
	NewWaveSystem(ecs, twoEntryTimeline(), dispatcher).Advance(0.1)
	sys := NewSpawnerSystem(ecs, cmds, testEnemies, utils.NewPRNGService(1))

	sys.Update(0.1)
	cmds.Apply(ecs)

	if len(ecs.Enemies) != 0 {
		t.Error("spawned enemies without a player")
	}
	if len(ecs.Spawners) != 1 {
		t.Error("spawner should wait for a player")
	}
}

func TestSpawnEnemyFromDefinition(t *testing.T) {
	ecs, _, _ := newWorld()
	player := spawnPlayer(ecs, vec.Zero)

	id := SpawnEnemy(ecs, testEnemies[defs.EnemyRedPlane], vec.New(100, 0), player)

	if ecs.Healths[id].Value != 20 || ecs.XpWorths[id].Amount != 10 {
		t.Errorf("health %+v xp %+v", ecs.Healths[id], ecs.XpWorths[id])
	}
	if _, ok := ecs.PeaShooters[id]; !ok {
		t.Error("red plane should carry a pea shooter")
	}
	if vel := ecs.Velocities[id]; vel.X >= 0 {
		t.Errorf("enemy should head towards the player, velocity %+v", vel.Vec2)
	}
}
