package app

import (
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
)

func newTestGame(t *testing.T, levels defs.LevelTable) *Game {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 1
	g, err := NewGameWithLevels(settings, levels, nil)
	if err != nil {
		t.Fatalf("NewGameWithLevels: %v", err)
	}
	return g
}

// runUntil advances until done reports true or the tick limit is hit.
func runUntil(t *testing.T, g *Game, limit int, done func() bool) error {
	t.Helper()
	for i := 0; i < limit; i++ {
		if err := g.AdvanceTick(); err != nil {
			return err
		}
		if done() {
			return nil
		}
	}
	t.Fatalf("Condition not reached after %d ticks", limit)
	return nil
}

func TestNewGameStartsOnLevelOne(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	if g.Level() != 1 || g.Score() != 0 || g.BirdsRemaining() != 1 {
		t.Errorf("Expected level 1, score 0, 1 bird; got %d, %d, %d", g.Level(), g.Score(), g.BirdsRemaining())
	}
	if g.Phase() != component.PhaseAiming {
		t.Errorf("Expected aiming, got %v", g.Phase())
	}
	if g.World.SessionID == "" {
		t.Error("Expected a session ID")
	}
}

func TestNewGameRejectsMissingStartLevel(t *testing.T) {
	settings := config.DefaultSettings()
	settings.StartLevel = 42
	_, err := NewGameWithLevels(settings, defs.DefaultLevels(), nil)
	if !errors.Is(err, defs.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestNewGameMissingLevelFile(t *testing.T) {
	settings := config.DefaultSettings()
	settings.LevelFile = filepath.Join(t.TempDir(), "missing.json")
	if _, err := NewGame(settings, nil); err == nil {
		t.Error("Expected an error for a missing layout file")
	}
}

func TestInputIsAppliedAtTickBoundary(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	bird := g.World.CurrentBird()

	g.OnFireRequested()
	if bird.Launched {
		t.Fatal("Input must not apply before the next tick")
	}
	if err := g.AdvanceTick(); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	if !bird.Launched {
		t.Error("Expected the bird to be launched after the tick")
	}
	if g.Input.Len() != 0 {
		t.Errorf("Expected drained input, got %d pending", g.Input.Len())
	}
}

func TestDragAndFireThroughInput(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	rx, ry := config.RestPosition()
	bird := g.World.CurrentBird()

	g.OnPointerDown(rx, ry)
	g.OnPointerMove(rx-300, ry)
	g.OnPointerUp()
	if err := g.AdvanceTick(); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	if bird.Launched {
		t.Fatal("Releasing the pointer must not fire")
	}
	if g.Power() != config.MaxPower {
		t.Errorf("Expected full power, got %v", g.Power())
	}

	g.OnFireRequested()
	if err := g.AdvanceTick(); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	// Aim angle clamps to 0 for a pointer level with the pivot: a flat shot.
	if math.Abs(bird.Vel.X-config.MaxPower) > 1e-9 {
		t.Errorf("Expected vx %v, got %v", float64(config.MaxPower), bird.Vel.X)
	}
	if g.Phase() != component.PhaseInFlight {
		t.Errorf("Expected in flight, got %v", g.Phase())
	}
}

func TestSpecialThroughInput(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	bird := g.World.CurrentBird()
	bird.Kind = defs.BirdSplitter

	g.OnSpecialRequested()
	if err := g.AdvanceTick(); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	if bird.SpecialUsed {
		t.Fatal("Special must wait for launch")
	}

	g.OnFireRequested()
	g.OnSpecialRequested()
	if err := g.AdvanceTick(); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	if !bird.SpecialUsed || g.BirdsRemaining() != 3 {
		t.Errorf("Expected split into 3 birds, got used=%v birds=%d", bird.SpecialUsed, g.BirdsRemaining())
	}
	if s := g.Stats(); s.Shots != 1 || s.Specials != 1 {
		t.Errorf("Expected 1 shot and 1 special, got %+v", s)
	}
}

func TestLevelOneCompletionScore(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	for i := range g.World.Blocks {
		g.DamageSystem.Apply(i, 100)
	}
	if g.Score() != 300 {
		t.Fatalf("Expected 300 after three blocks, got %d", g.Score())
	}

	g.OnFireRequested()
	if err := runUntil(t, g, 200, func() bool { return g.Level() == 2 }); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	if g.Score() != 1300 {
		t.Errorf("Expected 1300, got %d", g.Score())
	}
	if g.World.LiveBlocks() != 4 || g.Phase() != component.PhaseAiming {
		t.Errorf("Expected level 2 ready to aim, got %d blocks, %v", g.World.LiveBlocks(), g.Phase())
	}
}

func TestReplacementBirdWhenBlocksRemain(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	first := g.World.CurrentBird()
	g.OnFireRequested()
	if err := runUntil(t, g, 200, func() bool { return g.World.CurrentBird() != first }); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	next := g.World.CurrentBird()
	if next == nil || next.Launched || g.Level() != 1 {
		t.Errorf("Expected a fresh bird on level 1, got %+v on %d", next, g.Level())
	}
}

func TestHaltWhenCampaignEnds(t *testing.T) {
	g := newTestGame(t, defs.LevelTable{1: defs.DefaultLevels()[1]})
	for i := range g.World.Blocks {
		g.DamageSystem.Apply(i, 100)
	}
	g.OnFireRequested()

	var err error
	for i := 0; i < 200 && err == nil; i++ {
		err = g.AdvanceTick()
	}
	if !errors.Is(err, defs.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration, got %v", err)
	}
	if !g.Halted() || g.Level() != 1 || g.Score() != 1300 {
		t.Errorf("Expected halt on level 1 with 1300, got halted=%v level=%d score=%d", g.Halted(), g.Level(), g.Score())
	}
	for i := 0; i < 5; i++ {
		if err := g.AdvanceTick(); err != nil {
			t.Fatalf("Halted session returned %v", err)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	g.OnFireRequested()
	for i := 0; i < 3; i++ {
		if err := g.AdvanceTick(); err != nil {
			t.Fatalf("AdvanceTick: %v", err)
		}
	}
	snap := g.Snapshot()
	if len(snap.Birds) != 1 || len(snap.Blocks) != 3 {
		t.Fatalf("Expected 1 bird and 3 blocks, got %d and %d", len(snap.Birds), len(snap.Blocks))
	}
	if len(snap.Birds[0].Trail) != 3 {
		t.Errorf("Expected 3 trail points, got %d", len(snap.Birds[0].Trail))
	}
	snap.Birds[0].Trail[0].X = -1
	snap.Blocks[0].Destroyed = true
	if g.World.Birds[0].Trail.At(0).X == -1 || g.World.Blocks[0].Destroyed {
		t.Error("Snapshot must not alias session state")
	}
	if cur, ok := snap.CurrentBird(); !ok || !cur.Launched {
		t.Error("Expected the launched bird first")
	}
}

func TestSnapshotJSON(t *testing.T) {
	g := newTestGame(t, defs.DefaultLevels())
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, want := range []string{`"phase":"aiming"`, `"kind":"standard"`, `"material":"wood"`, `"level":1`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %s in %s", want, data)
		}
	}
}
