// internal/event/types.go
package event

import (
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

const (
	BirdLaunched   EventType = "BirdLaunched"   // BirdData
	BirdSpawned    EventType = "BirdSpawned"    // BirdData
	BirdSpent      EventType = "BirdSpent"      // BirdData
	SpecialUsed    EventType = "SpecialUsed"    // BirdData
	BirdSplit      EventType = "BirdSplit"      // BirdData of the parent
	BlockHit       EventType = "BlockHit"       // BlockData
	BlockDestroyed EventType = "BlockDestroyed" // BlockData
	LevelCompleted EventType = "LevelCompleted" // LevelData
	LevelStarted   EventType = "LevelStarted"   // LevelData
	SessionHalted  EventType = "SessionHalted"  // LevelData
)

// AllTypes lists every event type.
var AllTypes = []EventType{
	BirdLaunched, BirdSpawned, BirdSpent, SpecialUsed, BirdSplit,
	BlockHit, BlockDestroyed, LevelCompleted, LevelStarted, SessionHalted,
}

// BirdData describes the bird an event is about.
type BirdData struct {
	ID   int
	Kind defs.BirdKind
	Pos  vmath.Vec2
}

// BlockData describes the block an event is about. Index is stable for the level.
type BlockData struct {
	Index    int
	Material defs.Material
	Pos      vmath.Vec2
	Health   int
}

// LevelData describes a level transition.
type LevelData struct {
	Level int
	Score int
}
