// internal/system/particle.go
package system

import (
	"image/color"

	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/utils"
	"go-slingshot/pkg/vmath"
)

// ParticleSystem spawns and decays cosmetic particles.
type ParticleSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewParticleSystem creates a particle system over world.
func NewParticleSystem(world *entity.World, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// Emit adds n particles at pos with random size and velocity.
func (s *ParticleSystem) Emit(pos vmath.Vec2, c color.RGBA, n int) {
	for i := 0; i < n; i++ {
		s.world.Particles.Add(component.Particle{
			Pos: pos,
			Vel: vmath.Vec2{
				X: s.rng.Range(-config.ParticleMaxSpeed, config.ParticleMaxSpeed),
				Y: s.rng.Range(-config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			},
			Size:  config.ParticleMinSize + s.rng.Float64()*config.ParticleSizeVar,
			Color: c,
			Life:  1,
		})
	}
}

// Update moves every particle, decays its life and drops the dead ones.
func (s *ParticleSystem) Update() {
	s.world.Particles.Compact(func(p *component.Particle) bool {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= config.ParticleDecay
		return p.Life > 0
	})
}
