// internal/system/aim.go
package system

import (
	"math"

	"go-slingshot/internal/config"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/utils"
	"go-slingshot/pkg/vmath"
)

// AimSystem maps pointer drags onto the launcher. It only ever touches the un-launched
// current bird; releasing the pointer never fires.
type AimSystem struct {
	world *entity.World
	birds *BirdSystem
	pivot vmath.Vec2
}

// NewAimSystem creates an aim system pivoting on the launcher arm.
func NewAimSystem(world *entity.World, birds *BirdSystem) *AimSystem {
	return &AimSystem{
		world: world,
		birds: birds,
		pivot: vmath.Vec2{X: config.LauncherX, Y: config.LauncherPivotY},
	}
}

// Pivot returns the launcher pivot.
func (s *AimSystem) Pivot() vmath.Vec2 {
	return s.pivot
}

// PointerDown starts a drag when p lands on the aimable bird.
func (s *AimSystem) PointerDown(p vmath.Vec2) {
	b := s.world.AimableBird()
	if b == nil || s.world.Aim.Dragging {
		return
	}
	if p.Dist(b.Pos) >= config.GrabRadiusScale*b.Radius {
		return
	}
	s.world.Aim.Dragging = true
	s.world.Aim.DragStart = p
}

// PointerMove updates pull distance, aim angle and the bird's displayed position.
func (s *AimSystem) PointerMove(p vmath.Vec2) {
	aim := &s.world.Aim
	if !aim.Dragging {
		return
	}
	aim.PullDistance = utils.Clamp(aim.DragStart.X-p.X, 0, config.MaxPullDistance)
	aim.Angle = utils.Clamp(math.Atan2(p.Y-s.pivot.Y, p.X-s.pivot.X), config.MinAimAngle, config.MaxAimAngle)

	if b := s.world.AimableBird(); b != nil {
		b.Pos = s.pivot.Add(vmath.FromAngle(aim.Angle, config.LauncherArmLength-aim.PullDistance))
	}
}

// PointerUp ends the drag and keeps the aim.
func (s *AimSystem) PointerUp() {
	s.world.Aim.Dragging = false
}

// Fire launches the aimable bird with power proportional to the pull, then resets the pull.
// It returns false when there is nothing to fire.
func (s *AimSystem) Fire() bool {
	b := s.world.AimableBird()
	if b == nil {
		return false
	}
	aim := &s.world.Aim
	power := aim.PullDistance / config.MaxPullDistance * config.MaxPower
	s.birds.Launch(b, power, aim.Angle)
	aim.PullDistance = 0
	aim.Dragging = false
	return true
}

// Power returns the launch power the current pull would produce.
func (s *AimSystem) Power() float64 {
	return s.world.Aim.PullDistance / config.MaxPullDistance * config.MaxPower
}
