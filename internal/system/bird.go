// internal/system/bird.go
package system

import (
	"math"

	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/event"
	"go-slingshot/internal/utils"
	"go-slingshot/pkg/vmath"
)

// specialFunc applies a kind's one-shot ability to a launched bird.
type specialFunc func(s *BirdSystem, b *component.Bird)

// specials must hold an entry for every defs.BirdKind.
var specials = map[defs.BirdKind]specialFunc{
	defs.BirdStandard:   func(*BirdSystem, *component.Bird) {},
	defs.BirdSpeedBoost: (*BirdSystem).speedBoost,
	defs.BirdSplitter:   (*BirdSystem).split,
	defs.BirdAreaDamage: (*BirdSystem).areaDamage,
}

// BirdSystem launches, flies and triggers abilities of birds.
type BirdSystem struct {
	world      *entity.World
	particles  *ParticleSystem
	damage     *DamageSystem
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

// NewBirdSystem creates a bird system.
func NewBirdSystem(world *entity.World, particles *ParticleSystem, damage *DamageSystem, dispatcher *event.Dispatcher, rng *utils.PRNGService) *BirdSystem {
	return &BirdSystem{
		world:      world,
		particles:  particles,
		damage:     damage,
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// Launch fires b with power along angle. Angle 0 points toward the target, negative
// angles point up. A second call is a no-op.
func (s *BirdSystem) Launch(b *component.Bird, power, angle float64) {
	if b == nil || b.Launched {
		return
	}
	power = utils.Clamp(power, 0, config.MaxPower)
	b.Launched = true
	b.Vel = vmath.Vec2{X: power * math.Cos(angle), Y: -power * math.Sin(angle)}
	s.particles.Emit(b.Pos, b.Color, config.LaunchParticles)
	s.dispatcher.Dispatch(event.Event{Type: event.BirdLaunched, Data: birdData(b)})
}

// Update advances every launched bird by one tick.
func (s *BirdSystem) Update() {
	for _, b := range s.world.Birds {
		s.updateBird(b)
	}
}

func (s *BirdSystem) updateBird(b *component.Bird) {
	if !b.Launched {
		return
	}
	b.Trail.Push(b.Pos)
	Integrate(&b.Pos, &b.Vel, config.Gravity)
	b.Rotation = math.Atan2(b.Vel.Y, b.Vel.X)
	if s.rng.Chance(config.TrailParticleRate) {
		s.particles.Emit(b.Pos, b.Color, 1)
	}
}

// UseSpecial triggers b's ability once. Un-launched birds and repeated calls are ignored.
func (s *BirdSystem) UseSpecial(b *component.Bird) {
	if b == nil || !b.Launched || b.SpecialUsed {
		return
	}
	if fn, ok := specials[b.Kind]; ok {
		fn(s, b)
	}
	b.SpecialUsed = true
	s.dispatcher.Dispatch(event.Event{Type: event.SpecialUsed, Data: birdData(b)})
}

func (s *BirdSystem) speedBoost(b *component.Bird) {
	b.Vel = b.Vel.Scale(config.BoostFactor)
	s.particles.Emit(b.Pos, b.Color, config.BoostParticles)
}

// split spawns two launched siblings diverging horizontally. The parent keeps flying
// unchanged. Siblings cannot split again.
func (s *BirdSystem) split(b *component.Bird) {
	for _, dx := range [2]float64{config.SplitSpreadX, -config.SplitSpreadX} {
		child := s.world.AddBird(b.Pos, b.Kind)
		child.Launched = true
		child.SpecialUsed = true
		child.Vel = vmath.Vec2{X: b.Vel.X + dx, Y: b.Vel.Y}
	}
	s.particles.Emit(b.Pos, b.Color, config.SplitParticles)
	s.dispatcher.Dispatch(event.Event{Type: event.BirdSplit, Data: birdData(b)})
}

func (s *BirdSystem) areaDamage(b *component.Bird) {
	for i, block := range s.world.Blocks {
		if block.Destroyed || block.Pos.Dist(b.Pos) >= config.AreaRadius {
			continue
		}
		s.damage.Apply(i, config.AreaDamage)
		s.particles.Emit(block.Pos, b.Color, config.AreaParticles)
	}
}

func birdData(b *component.Bird) event.BirdData {
	return event.BirdData{ID: b.ID, Kind: b.Kind, Pos: b.Pos}
}
