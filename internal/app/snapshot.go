// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-slingshot/internal/component"
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

// Stats counts gameplay events over a whole session.
type Stats struct {
	Shots           int `json:"shots"`
	Specials        int `json:"specials"`
	Hits            int `json:"hits"`
	BlocksDestroyed int `json:"blocks_destroyed"`
}

// BirdView is the render-facing copy of a bird.
type BirdView struct {
	ID          int           `json:"id"`
	Pos         vmath.Vec2    `json:"pos"`
	Radius      float64       `json:"radius"`
	Rotation    float64       `json:"rotation"`
	Kind        defs.BirdKind `json:"kind"`
	Color       color.RGBA    `json:"-"`
	Launched    bool          `json:"launched"`
	SpecialUsed bool          `json:"special_used"`
	Trail       []vmath.Vec2  `json:"trail,omitempty"`
}

// BlockView is the render-facing copy of a block.
type BlockView struct {
	Pos       vmath.Vec2    `json:"pos"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Rotation  float64       `json:"rotation"`
	Material  defs.Material `json:"material"`
	Color     color.RGBA    `json:"-"`
	Destroyed bool          `json:"destroyed"`
	Health    float64       `json:"health"` // fraction of max health
}

// ParticleView is the render-facing copy of a particle.
type ParticleView struct {
	Pos   vmath.Vec2 `json:"pos"`
	Size  float64    `json:"size"`
	Life  float64    `json:"life"`
	Color color.RGBA `json:"-"`
}

// AimView describes the launcher.
type AimView struct {
	Dragging bool       `json:"dragging"`
	Pull     float64    `json:"pull"`
	Angle    float64    `json:"angle"`
	Power    float64    `json:"power"`
	Pivot    vmath.Vec2 `json:"pivot"`
}

// Snapshot is a read-only copy of the session taken between ticks.
type Snapshot struct {
	SessionID      string          `json:"session_id"`
	Tick           int64           `json:"tick"`
	Score          int             `json:"score"`
	Level          int             `json:"level"`
	BirdsRemaining int             `json:"birds_remaining"`
	Phase          component.Phase `json:"phase"`
	Aim            AimView         `json:"aim"`
	Birds          []BirdView      `json:"birds"`
	Blocks         []BlockView     `json:"blocks"`
	Particles      []ParticleView  `json:"particles,omitempty"`
	Stats          Stats           `json:"stats"`
}

// Snapshot copies the current state. The result shares no memory with the session.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	s := Snapshot{
		SessionID:      w.SessionID,
		Tick:           w.Tick,
		Score:          w.Score,
		Level:          w.Level,
		BirdsRemaining: len(w.Birds),
		Phase:          w.Phase,
		Aim: AimView{
			Dragging: w.Aim.Dragging,
			Pull:     w.Aim.PullDistance,
			Angle:    w.Aim.Angle,
			Power:    g.AimSystem.Power(),
			Pivot:    g.AimSystem.Pivot(),
		},
		Birds:     make([]BirdView, 0, len(w.Birds)),
		Blocks:    make([]BlockView, 0, len(w.Blocks)),
		Particles: make([]ParticleView, 0, w.Particles.Len()),
		Stats:     g.stats,
	}
	for _, b := range w.Birds {
		s.Birds = append(s.Birds, BirdView{
			ID:          b.ID,
			Pos:         b.Pos,
			Radius:      b.Radius,
			Rotation:    b.Rotation,
			Kind:        b.Kind,
			Color:       b.Color,
			Launched:    b.Launched,
			SpecialUsed: b.SpecialUsed,
			Trail:       b.Trail.Points(),
		})
	}
	for _, b := range w.Blocks {
		s.Blocks = append(s.Blocks, BlockView{
			Pos:       b.Pos,
			Width:     b.Width,
			Height:    b.Height,
			Rotation:  b.Rotation,
			Material:  b.Material,
			Color:     b.Color,
			Destroyed: b.Destroyed,
			Health:    b.HealthFraction(),
		})
	}
	for _, p := range w.Particles.Items() {
		s.Particles = append(s.Particles, ParticleView{Pos: p.Pos, Size: p.Size, Life: p.Life, Color: p.Color})
	}
	return s
}

// CurrentBird returns the front bird of a snapshot, if any.
func (s Snapshot) CurrentBird() (BirdView, bool) {
	if len(s.Birds) == 0 {
		return BirdView{}, false
	}
	return s.Birds[0], true
}
