// internal/entity/particles.go
package entity

import "go-slingshot/internal/component"

// ParticleBuffer is a bounded, order-independent particle collection. When full, new
// particles overwrite old ones in circular order.
type ParticleBuffer struct {
	items  []component.Particle
	max    int
	ovrIdx int
}

// NewParticleBuffer creates a buffer holding at most capacity particles.
func NewParticleBuffer(capacity int) *ParticleBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &ParticleBuffer{
		items: make([]component.Particle, 0, capacity),
		max:   capacity,
	}
}

// Add stores p, evicting the slot at the overwrite cursor when full.
func (pb *ParticleBuffer) Add(p component.Particle) {
	if len(pb.items) < pb.max {
		pb.items = append(pb.items, p)
		return
	}
	if pb.ovrIdx >= pb.max {
		pb.ovrIdx = 0
	}
	pb.items[pb.ovrIdx] = p
	pb.ovrIdx++
}

// Len returns the number of live particles.
func (pb *ParticleBuffer) Len() int {
	return len(pb.items)
}

// Cap returns the capacity.
func (pb *ParticleBuffer) Cap() int {
	return pb.max
}

// Items exposes the live particles for in-place mutation. Do not retain the slice.
func (pb *ParticleBuffer) Items() []component.Particle {
	return pb.items
}

// Compact drops every particle for which keep returns false, in place.
func (pb *ParticleBuffer) Compact(keep func(*component.Particle) bool) {
	alive := 0
	for i := range pb.items {
		if keep(&pb.items[i]) {
			pb.items[alive] = pb.items[i]
			alive++
		}
	}
	pb.items = pb.items[:alive]
	if pb.ovrIdx > alive {
		pb.ovrIdx = 0
	}
}

// Clear removes all particles.
func (pb *ParticleBuffer) Clear() {
	pb.items = pb.items[:0]
	pb.ovrIdx = 0
}
