// internal/component/trail.go
package component

import (
	"go-slingshot/internal/config"
	"go-slingshot/pkg/vmath"
)

// Trail is a fixed-capacity ring of past positions. Index 0 is the most recent.
// Pushing onto a full trail evicts the oldest point.
type Trail struct {
	points [config.TrailLength]vmath.Vec2
	head   int // slot of the most recent point
	n      int
}

// Push records p as the most recent point.
func (t *Trail) Push(p vmath.Vec2) {
	t.head = (t.head - 1 + len(t.points)) % len(t.points)
	t.points[t.head] = p
	if t.n < len(t.points) {
		t.n++
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.n
}

// At returns the i-th most recent point.
func (t *Trail) At(i int) vmath.Vec2 {
	return t.points[(t.head+i)%len(t.points)]
}

// Points copies the trail, most recent first.
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
