// internal/system/collision.go
package system

import (
	"go-slingshot/internal/config"
	"go-slingshot/internal/entity"
)

// CollisionSystem tests every launched bird against every standing block. A contact
// deals a fixed hit; the bird is not deflected and keeps its ballistic path.
type CollisionSystem struct {
	world  *entity.World
	damage *DamageSystem
}

// NewCollisionSystem creates a collision system.
func NewCollisionSystem(world *entity.World, damage *DamageSystem) *CollisionSystem {
	return &CollisionSystem{world: world, damage: damage}
}

// Update resolves one tick of contacts and returns the number of hits dealt.
func (s *CollisionSystem) Update() int {
	hits := 0
	for _, bird := range s.world.Birds {
		if !bird.Launched {
			continue
		}
		for i, block := range s.world.Blocks {
			if block.Destroyed {
				continue
			}
			if bird.Pos.Dist(block.Pos) < bird.Radius+block.Width/2 {
				s.damage.Apply(i, config.HitDamage)
				hits++
			}
		}
	}
	return hits
}
