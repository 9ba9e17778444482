// internal/system/level.go
package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/event"
	"go-slingshot/pkg/vmath"
)

// LevelSystem owns the level state machine: spent birds leave the queue, an empty queue
// either completes the level or hands out a replacement bird.
type LevelSystem struct {
	world      *entity.World
	levels     defs.LevelTable
	dispatcher *event.Dispatcher
	logger     *slog.Logger
}

// NewLevelSystem creates a level system over a layout table.
func NewLevelSystem(world *entity.World, levels defs.LevelTable, dispatcher *event.Dispatcher, logger *slog.Logger) *LevelSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &LevelSystem{
		world:      world,
		levels:     levels,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start installs level n and hands out its first bird.
func (s *LevelSystem) Start(n int) error {
	layout, err := s.levels.Layout(n)
	if err != nil {
		return fmt.Errorf("start level %d: %w", n, err)
	}
	s.install(n, layout)
	return nil
}

func (s *LevelSystem) install(n int, layout defs.LevelLayout) {
	s.world.InstallLayout(n, layout)
	s.world.Birds = s.world.Birds[:0]
	s.spawnBird()
	s.world.Phase = component.PhaseAiming
	s.logger.Info("level started", "session_id", s.world.SessionID, "level", n, "blocks", len(layout.Blocks))
	s.dispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: s.levelData()})
}

func (s *LevelSystem) spawnBird() {
	x, y := config.RestPosition()
	kind := s.world.Layout.RosterKind(s.world.BirdsDealt)
	s.world.BirdsDealt++
	b := s.world.AddBird(vmath.Vec2{X: x, Y: y}, kind)
	s.dispatcher.Dispatch(event.Event{Type: event.BirdSpawned, Data: birdData(b)})
}

// IsSpent reports whether a launched bird has left the field or come to rest near the ground.
func IsSpent(b *component.Bird) bool {
	if !b.Launched {
		return false
	}
	if b.Pos.X > config.ScreenWidth || b.Pos.X < -b.Radius || b.Pos.Y > config.ScreenHeight {
		return true
	}
	resting := math.Abs(b.Vel.X) < config.RestSpeed && math.Abs(b.Vel.Y) < config.RestSpeed
	return resting && b.Pos.Y > config.ScreenHeight-config.RestGroundDepth
}

// Update runs the lifecycle step. The returned error wraps defs.ErrInvalidConfiguration
// when a completed level has no successor; the session is halted in that case.
func (s *LevelSystem) Update() error {
	if s.world.Phase == component.PhaseHalted {
		return nil
	}

	removed := s.removeSpent()
	if len(s.world.Birds) > 0 {
		s.refreshPhase()
		return nil
	}
	if removed == 0 {
		return nil
	}

	s.world.Phase = component.PhaseBirdSpent
	if !s.world.AllBlocksDestroyed() {
		s.spawnBird()
		s.world.Phase = component.PhaseAiming
		return nil
	}
	return s.completeLevel()
}

// removeSpent drops spent birds from the queue in place, once each.
func (s *LevelSystem) removeSpent() int {
	kept := s.world.Birds[:0]
	removed := 0
	for _, b := range s.world.Birds {
		if IsSpent(b) {
			removed++
			s.dispatcher.Dispatch(event.Event{Type: event.BirdSpent, Data: birdData(b)})
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.world.Birds); i++ {
		s.world.Birds[i] = nil
	}
	s.world.Birds = kept
	return removed
}

func (s *LevelSystem) refreshPhase() {
	for _, b := range s.world.Birds {
		if b.Launched {
			s.world.Phase = component.PhaseInFlight
			return
		}
	}
	s.world.Phase = component.PhaseAiming
}

func (s *LevelSystem) completeLevel() error {
	s.world.Phase = component.PhaseLevelComplete
	s.world.Score += config.LevelBonus
	completed := s.world.Level
	s.logger.Info("level complete", "session_id", s.world.SessionID, "level", completed, "score", s.world.Score)
	s.dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: s.levelData()})

	next := completed + 1
	layout, err := s.levels.Layout(next)
	if err != nil {
		s.world.Phase = component.PhaseHalted
		s.logger.Warn("session halted", "session_id", s.world.SessionID, "level", next, "err", err)
		s.dispatcher.Dispatch(event.Event{Type: event.SessionHalted, Data: s.levelData()})
		return fmt.Errorf("advance to level %d: %w", next, err)
	}
	s.install(next, layout)
	return nil
}

func (s *LevelSystem) levelData() event.LevelData {
	return event.LevelData{Level: s.world.Level, Score: s.world.Score}
}
