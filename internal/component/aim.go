// internal/component/aim.go
package component

import "go-slingshot/pkg/vmath"

// Aim is the input mapper state.
type Aim struct {
	Dragging     bool
	DragStart    vmath.Vec2
	PullDistance float64
	Angle        float64
}
