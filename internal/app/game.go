// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/entity"
	"go-slingshot/internal/event"
	"go-slingshot/internal/input"
	"go-slingshot/internal/system"
	"go-slingshot/internal/utils"
	"go-slingshot/pkg/vmath"
)

// Game holds one play session and the systems that advance it.
type Game struct {
	World           *entity.World
	Levels          defs.LevelTable
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Input           *input.Queue

	ParticleSystem  *system.ParticleSystem
	DamageSystem    *system.DamageSystem
	BirdSystem      *system.BirdSystem
	CollisionSystem *system.CollisionSystem
	AimSystem       *system.AimSystem
	LevelSystem     *system.LevelSystem

	logger *slog.Logger
	stats  Stats
}

// NewGame creates a session from settings. Layouts come from settings.LevelFile when set,
// otherwise from the built-in campaign.
func NewGame(settings config.Settings, logger *slog.Logger) (*Game, error) {
	levels := defs.DefaultLevels()
	if settings.LevelFile != "" {
		loaded, err := defs.LoadLevels(settings.LevelFile)
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		levels = loaded
	}
	return NewGameWithLevels(settings, levels, logger)
}

// NewGameWithLevels creates a session over an explicit layout table.
func NewGameWithLevels(settings config.Settings, levels defs.LevelTable, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	startLevel := settings.StartLevel
	if startLevel < 1 {
		startLevel = 1
	}

	world := entity.NewWorld(uuid.NewString())
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	g := &Game{
		World:           world,
		Levels:          levels,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Input:           input.NewQueue(),
		logger:          logger.With("session_id", world.SessionID),
	}
	g.ParticleSystem = system.NewParticleSystem(world, rng)
	g.DamageSystem = system.NewDamageSystem(world, g.ParticleSystem, dispatcher, rng)
	g.BirdSystem = system.NewBirdSystem(world, g.ParticleSystem, g.DamageSystem, dispatcher, rng)
	g.CollisionSystem = system.NewCollisionSystem(world, g.DamageSystem)
	g.AimSystem = system.NewAimSystem(world, g.BirdSystem)
	g.LevelSystem = system.NewLevelSystem(world, levels, dispatcher, logger)

	listener := &GameEventListener{game: g}
	dispatcher.SubscribeAll(listener,
		event.BirdLaunched, event.SpecialUsed, event.BlockHit, event.BlockDestroyed, event.BirdSpent)

	if err := g.LevelSystem.Start(startLevel); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return g, nil
}

// GameEventListener keeps session statistics in sync with gameplay events.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BirdLaunched:
		l.game.stats.Shots++
	case event.SpecialUsed:
		l.game.stats.Specials++
	case event.BlockHit:
		l.game.stats.Hits++
	case event.BlockDestroyed:
		l.game.stats.BlocksDestroyed++
	case event.BirdSpent:
		if data, ok := e.Data.(event.BirdData); ok {
			l.game.logger.Debug("bird spent", "bird_id", data.ID, "kind", data.Kind, "x", data.Pos.X, "y", data.Pos.Y)
		}
	}
}

// AdvanceTick runs one simulation step: buffered input, birds, particles, collisions, then
// lifecycle and level progression. A halted session only decays its particles.
func (g *Game) AdvanceTick() error {
	g.World.Tick++
	if g.Halted() {
		g.Input.Drain()
		g.ParticleSystem.Update()
		return nil
	}

	g.applyInput()
	g.BirdSystem.Update()
	g.ParticleSystem.Update()
	g.CollisionSystem.Update()
	if err := g.LevelSystem.Update(); err != nil {
		g.logger.Error("level progression failed", "tick", g.World.Tick, "err", err)
		return err
	}
	return nil
}

func (g *Game) applyInput() {
	for _, cmd := range g.Input.Drain() {
		switch cmd.Kind {
		case input.PointerDown:
			g.AimSystem.PointerDown(vmath.Vec2{X: cmd.X, Y: cmd.Y})
		case input.PointerMove:
			g.AimSystem.PointerMove(vmath.Vec2{X: cmd.X, Y: cmd.Y})
		case input.PointerUp:
			g.AimSystem.PointerUp()
		case input.Fire:
			g.AimSystem.Fire()
		case input.Special:
			if b := g.World.CurrentBird(); b != nil && b.Launched {
				g.BirdSystem.UseSpecial(b)
			}
		}
	}
}

// OnPointerDown buffers a pointer press. Safe to call from any goroutine.
func (g *Game) OnPointerDown(x, y float64) {
	g.Input.Push(input.Command{Kind: input.PointerDown, X: x, Y: y})
}

// OnPointerMove buffers a pointer move.
func (g *Game) OnPointerMove(x, y float64) {
	g.Input.Push(input.Command{Kind: input.PointerMove, X: x, Y: y})
}

// OnPointerUp buffers a pointer release.
func (g *Game) OnPointerUp() {
	g.Input.Push(input.Command{Kind: input.PointerUp})
}

// OnFireRequested buffers a launch of the current bird.
func (g *Game) OnFireRequested() {
	g.Input.Push(input.Command{Kind: input.Fire})
}

// OnSpecialRequested buffers the current bird's special ability.
func (g *Game) OnSpecialRequested() {
	g.Input.Push(input.Command{Kind: input.Special})
}

func (g *Game) Score() int {
	return g.World.Score
}

func (g *Game) Level() int {
	return g.World.Level
}

// BirdsRemaining counts birds in the queue, launched or not.
func (g *Game) BirdsRemaining() int {
	return len(g.World.Birds)
}

func (g *Game) Phase() component.Phase {
	return g.World.Phase
}

// Halted reports whether the campaign ran out of layouts.
func (g *Game) Halted() bool {
	return g.World.Phase == component.PhaseHalted
}

// Stats returns the running session statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Power returns the launch power the current pull would produce.
func (g *Game) Power() float64 {
	return g.AimSystem.Power()
}
