// internal/entity/world.go
package entity

import (
	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

// World is the whole session state. Systems receive it by pointer; there is no other
// shared mutable state.
type World struct {
	SessionID string
	Tick      int64
	Score     int
	Level     int
	Phase     component.Phase

	Birds     []*component.Bird // queue, front is the current bird
	Blocks    []*component.Block
	Particles *ParticleBuffer
	Aim       component.Aim

	Layout     defs.LevelLayout
	NextBirdID int
	BirdsDealt int // birds handed out on the current level
}

// NewWorld creates an empty session at level 0. LevelSystem installs the first layout.
func NewWorld(sessionID string) *World {
	return &World{
		SessionID:  sessionID,
		Phase:      component.PhaseAiming,
		Particles:  NewParticleBuffer(config.ParticleCapacity),
		Aim:        component.Aim{Angle: config.DefaultAimAngle},
		NextBirdID: 1,
	}
}

// CurrentBird returns the front of the queue, or nil.
func (w *World) CurrentBird() *component.Bird {
	if len(w.Birds) == 0 {
		return nil
	}
	return w.Birds[0]
}

// AimableBird returns the current bird if it has not been launched yet.
func (w *World) AimableBird() *component.Bird {
	b := w.CurrentBird()
	if b == nil || b.Launched {
		return nil
	}
	return b
}

// AddBird appends a bird to the queue with a fresh ID.
func (w *World) AddBird(pos vmath.Vec2, kind defs.BirdKind) *component.Bird {
	b := component.NewBird(w.NextBirdID, pos, kind)
	w.NextBirdID++
	w.Birds = append(w.Birds, b)
	return b
}

// InstallLayout replaces the block set atomically.
func (w *World) InstallLayout(level int, layout defs.LevelLayout) {
	w.Level = level
	w.Layout = layout
	w.BirdsDealt = 0
	w.Blocks = make([]*component.Block, 0, len(layout.Blocks))
	for _, spec := range layout.Blocks {
		w.Blocks = append(w.Blocks, component.NewBlock(spec))
	}
}

// AllBlocksDestroyed reports whether the level is cleared.
func (w *World) AllBlocksDestroyed() bool {
	for _, b := range w.Blocks {
		if !b.Destroyed {
			return false
		}
	}
	return true
}

// LiveBlocks counts blocks still standing.
func (w *World) LiveBlocks() int {
	n := 0
	for _, b := range w.Blocks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}
