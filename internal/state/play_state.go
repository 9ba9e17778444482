// internal/state/play_state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-slingshot/internal/app"
	"go-slingshot/internal/component"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/ui"
	"go-slingshot/pkg/render"
)

const (
	tickDuration     = 1.0 / config.TicksPerSec
	maxTicksPerFrame = 5
	publishEvery     = 6 // ticks between spectator snapshots
)

var _ State = (*PlayState)(nil)

// PlayState runs a session: it feeds pointer and keyboard input to the game and steps it
// at a fixed rate.
type PlayState struct {
	sm       *StateMachine
	opts     Options
	game     *app.Game
	logger   *slog.Logger
	renderer *render.SceneRenderer

	infoPanel   *ui.InfoPanel
	queue       *ui.BirdQueueIndicator
	powerMeter  *ui.PowerMeter
	pauseButton *ui.PauseButton

	accumulator float64
	pointerDown bool
	lastX       int
	lastY       int
	message     string
	messageTTL  int
	lastLevel   int
}

func NewPlayState(sm *StateMachine, opts Options, game *app.Game) *PlayState {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayState{
		sm:          sm,
		opts:        opts,
		game:        game,
		logger:      logger,
		renderer:    render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight),
		infoPanel:   ui.NewInfoPanel(10, 10),
		queue:       ui.NewBirdQueueIndicator(10, 90),
		powerMeter:  ui.NewPowerMeter(config.ScreenWidth-210, 30, 200, 14),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-20, 70, 8, config.TextLightColor, config.MeterLowColor),
		lastLevel:   game.Level(),
	}
}

func (s *PlayState) Enter() {
	s.pauseButton.IsPaused = false
}

// Game exposes the running session.
func (s *PlayState) Game() *app.Game {
	return s.game
}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.opts.Sound != nil {
		s.opts.Sound.SetMuted(!s.opts.Sound.Muted())
	}

	if s.handlePointer() {
		return
	}
	s.handleKeys()

	s.accumulator += deltaTime
	for n := 0; s.accumulator >= tickDuration && n < maxTicksPerFrame; n++ {
		s.accumulator -= tickDuration
		if s.step() {
			return
		}
	}
	if s.accumulator > tickDuration {
		s.accumulator = 0
	}
	if s.messageTTL > 0 {
		s.messageTTL--
	}
}

// handlePointer forwards mouse input and reports whether the pause button consumed it.
func (s *PlayState) handlePointer() bool {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s.pauseButton.IsClicked(float32(x), float32(y)) {
			s.pause()
			return true
		}
		s.pointerDown = true
		s.game.OnPointerDown(float64(x), float64(y))
	}
	if s.pointerDown && (x != s.lastX || y != s.lastY) {
		s.game.OnPointerMove(float64(x), float64(y))
	}
	if s.pointerDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.pointerDown = false
		s.game.OnPointerUp()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.game.OnSpecialRequested()
	}
	s.lastX, s.lastY = x, y
	return false
}

func (s *PlayState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.game.OnFireRequested()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s.game.Phase() == component.PhaseInFlight {
			s.game.OnSpecialRequested()
		} else {
			s.game.OnFireRequested()
		}
	}
}

// step advances one tick and reports whether the state changed screens.
func (s *PlayState) step() bool {
	err := s.game.AdvanceTick()
	if s.opts.Hub != nil && s.game.World.Tick%publishEvery == 0 {
		s.opts.Hub.Publish(s.game.Snapshot())
	}
	if err != nil {
		if errors.Is(err, defs.ErrInvalidConfiguration) && s.game.Halted() {
			s.sm.SetState(NewCampaignState(s.sm, s.opts, s.game))
			return true
		}
		s.logger.Error("tick failed", "err", err)
	}
	if lvl := s.game.Level(); lvl != s.lastLevel {
		s.lastLevel = lvl
		s.flash(fmt.Sprintf("Level %d", lvl))
	}
	return false
}

func (s *PlayState) flash(msg string) {
	s.message = msg
	s.messageTTL = 2 * config.TicksPerSec
}

func (s *PlayState) pause() {
	s.pauseButton.TogglePause()
	s.pointerDown = false
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	s.DrawUI(screen, snap)
}

// DrawUI draws the overlay widgets for snap.
func (s *PlayState) DrawUI(screen *ebiten.Image, snap app.Snapshot) {
	s.infoPanel.Draw(screen, snap.Score, snap.Level, snap.BirdsRemaining, snap.Phase.String())

	slots := make([]ui.QueueSlot, 0, len(snap.Birds))
	for _, b := range snap.Birds {
		slots = append(slots, ui.QueueSlot{Color: b.Color, Launched: b.Launched})
	}
	s.queue.Draw(screen, slots)

	if cur, ok := snap.CurrentBird(); ok && !cur.Launched {
		s.powerMeter.Draw(screen, snap.Aim.Power, config.MaxPower)
	}
	s.pauseButton.Draw(screen)

	if s.messageTTL > 0 {
		ui.DrawCentered(screen, s.message, config.ScreenWidth/2, 40, config.TextDarkColor)
	}
	ui.DrawText(screen, "drag to aim  SPACE fire/special  P pause  M mute", 10, config.ScreenHeight-10, config.TextLightColor)
}

func (s *PlayState) Exit() {}
