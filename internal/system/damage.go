// internal/system/damage.go
package system

import (
	"go-slingshot/internal/config"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/event"
	"go-slingshot/internal/utils"
)

// DamageSystem is the only writer of block health.
type DamageSystem struct {
	world      *entity.World
	particles  *ParticleSystem
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

// NewDamageSystem creates a damage system.
func NewDamageSystem(world *entity.World, particles *ParticleSystem, dispatcher *event.Dispatcher, rng *utils.PRNGService) *DamageSystem {
	return &DamageSystem{
		world:      world,
		particles:  particles,
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// Apply deals amount to the block at index and reports whether this hit destroyed it.
// Destroyed blocks and out-of-range indices are ignored.
func (s *DamageSystem) Apply(index, amount int) bool {
	if index < 0 || index >= len(s.world.Blocks) || amount <= 0 {
		return false
	}
	block := s.world.Blocks[index]
	if block.Destroyed {
		return false
	}

	block.Health -= amount
	if block.Health < 0 {
		block.Health = 0
	}
	block.Rotation += s.rng.Range(-config.BlockRotJitter, config.BlockRotJitter)

	data := event.BlockData{Index: index, Material: block.Material, Pos: block.Pos, Health: block.Health}
	s.dispatcher.Dispatch(event.Event{Type: event.BlockHit, Data: data})

	if block.Health > 0 {
		return false
	}

	block.Destroyed = true
	s.world.Score += config.DestroyBonus
	s.particles.Emit(block.Pos, block.Color, config.DestroyParticles)
	s.dispatcher.Dispatch(event.Event{Type: event.BlockDestroyed, Data: data})
	return true
}
