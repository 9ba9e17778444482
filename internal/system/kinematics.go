// internal/system/kinematics.go
package system

import "go-slingshot/pkg/vmath"

// Integrate advances one fixed tick under gravity: the velocity picks up gravity first,
// then the position moves by the new velocity.
func Integrate(pos, vel *vmath.Vec2, gravity float64) {
	vel.Y += gravity
	pos.X += vel.X
	pos.Y += vel.Y
}
