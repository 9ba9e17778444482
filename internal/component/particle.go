// internal/component/particle.go
package component

import (
	"image/color"

	"go-slingshot/pkg/vmath"
)

// Particle is a cosmetic point effect. Gameplay never reads it.
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Size  float64
	Color color.RGBA
	Life  float64 // 1 at birth, removed once <= 0
}
