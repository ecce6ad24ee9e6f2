package system

import (
	"math"
	"testing"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/entity"
	"go-sky-shooter/internal/types"
	"go-sky-shooter/pkg/vec"
)

func TestTargetingPicksNearestLiveOpponent(t *testing.T) {
	ecs, _, _ := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	far := spawnShip(ecs, vec.New(300, 0), component.TeamHostile, 10)
	dead := spawnShip(ecs, vec.New(20, 0), component.TeamHostile, 10)
	ecs.Deads[dead] = &component.Dead{}
	spawnShip(ecs, vec.New(10, 0), component.TeamFriendly, 10)
	near := spawnShip(ecs, vec.New(0, -150), component.TeamHostile, 10)

	NewTargetingSystem(ecs).Update(0.016)

	if got := ecs.Targets[player].ID; got != near {
		t.Errorf("target = %d, want %d (far=%d)", got, near, far)
	}
}

func TestTargetingTieKeepsLowestID(t *testing.T) {
	ecs, _, _ := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	first := spawnShip(ecs, vec.New(100.2, 0), component.TeamHostile, 10)
	spawnShip(ecs, vec.New(0, 100.7), component.TeamHostile, 10)

	NewTargetingSystem(ecs).Update(0.016)

	if got := ecs.Targets[player].ID; got != first {
		t.Errorf("tie should keep first candidate %d, got %d", first, got)
	}
}

func TestTargetingWithoutCandidates(t *testing.T) {
	ecs, _, _ := newWorld()
	player := spawnPlayer(ecs, vec.Zero)
	enemy := spawnShip(ecs, vec.New(50, 0), component.TeamHostile, 10)
	sys := NewTargetingSystem(ecs)
	sys.Update(0.016)
	if ecs.Targets[player].ID != enemy {
		t.Fatal("expected enemy to be targeted")
	}

	ecs.Despawn(enemy)
	sys.Update(0.016)
	if got := ecs.Targets[player].ID; got != 0 {
		t.Errorf("target should be absent, got %d", got)
	}
}

func TestTargetVectorResolution(t *testing.T) {
	ecs, _, _ := newWorld()
	shooter := spawnShip(ecs, vec.Zero, component.TeamHostile, 10)
	target := spawnShip(ecs, vec.New(30, 40), component.TeamFriendly, 10)
	ecs.Targets[shooter] = &component.Target{ID: target}
	ecs.TargetVectors[shooter] = &component.TargetVector{}
	sys := NewTargetVectorSystem(ecs)

	sys.Update(0.016)
	vector := ecs.TargetVectors[shooter]
	if !vector.Valid {
		t.Fatal("expected resolved vector")
	}
	if math.Abs(vector.Dir.X-0.6) > 1e-9 || math.Abs(vector.Dir.Y-0.8) > 1e-9 {
		t.Errorf("direction = %+v, want (0.6, 0.8)", vector.Dir)
	}

	ecs.Despawn(target)
	sys.Update(0.016)
	if vector.Valid {
		t.Error("vector should be absent once the target is despawned")
	}
}

func TestTargetVectorAbsentCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *entity.ECS, shooter, target types.EntityID)
	}{
		{"out of range", func(w *entity.ECS, _, target types.EntityID) {
			w.Positions[target].Vec2 = vec.New(1000, 0)
		}},
		{"target dead", func(w *entity.ECS, _, target types.EntityID) {
			w.Deads[target] = &component.Dead{}
		}},
		{"shooter dead", func(w *entity.ECS, shooter, _ types.EntityID) {
			w.Deads[shooter] = &component.Dead{}
		}},
		{"shooter without position", func(w *entity.ECS, shooter, _ types.EntityID) {
			delete(w.Positions, shooter)
		}},
		{"no target", func(w *entity.ECS, shooter, _ types.EntityID) {
			w.Targets[shooter].ID = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, _, _ := newWorld()
			shooter := spawnShip(ecs, vec.Zero, component.TeamHostile, 10)
			target := spawnShip(ecs, vec.New(100, 0), component.TeamFriendly, 10)
			ecs.Targets[shooter] = &component.Target{ID: target}
			ecs.TargetVectors[shooter] = &component.TargetVector{Valid: true, Dir: vec.New(1, 0)}

			tt.setup(ecs, shooter, target)
			NewTargetVectorSystem(ecs).Update(0.016)

			if ecs.TargetVectors[shooter].Valid {
				t.Error("expected no vector")
			}
		})
	}
}
