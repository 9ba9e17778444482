// internal/component/block.go
package component

import (
	"image/color"

	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

// Block is a destructible obstacle. Destroyed blocks stay in place as tombstones.
type Block struct {
	Pos       vmath.Vec2
	Width     float64
	Height    float64
	Material  defs.Material
	Color     color.RGBA
	Health    int
	MaxHealth int
	Destroyed bool
	Rotation  float64
}

// NewBlock builds a block at full health from a layout entry.
func NewBlock(spec defs.BlockSpec) *Block {
	maxHealth := defs.MaxHealthFor(spec.Material)
	return &Block{
		Pos:       vmath.Vec2{X: spec.X, Y: spec.Y},
		Width:     config.BlockWidth,
		Height:    config.BlockHeight,
		Material:  spec.Material,
		Color:     defs.MaterialColor(spec.Material),
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// HealthFraction returns Health/MaxHealth in [0, 1].
func (b *Block) HealthFraction() float64 {
	if b.MaxHealth <= 0 || b.Health <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
