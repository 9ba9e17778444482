// internal/component/bird.go
package component

import (
	"image/color"

	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/pkg/vmath"
)

// Bird is a projectile. Vel stays zero until Launched; SpecialUsed never reverts.
type Bird struct {
	ID          int
	Pos         vmath.Vec2
	Vel         vmath.Vec2
	Radius      float64
	Kind        defs.BirdKind
	Color       color.RGBA
	Launched    bool
	SpecialUsed bool
	Rotation    float64 // cosmetic, follows the velocity
	Trail       Trail
}

// NewBird creates an un-launched bird at pos.
func NewBird(id int, pos vmath.Vec2, kind defs.BirdKind) *Bird {
	return &Bird{
		ID:     id,
		Pos:    pos,
		Radius: config.BirdRadius,
		Kind:   kind,
		Color:  defs.BirdColor(kind),
	}
}
