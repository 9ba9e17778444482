// internal/terminal/host.go
package terminal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-slingshot/internal/component"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/interfaces"
)

// Host drives a game from a tcell screen: mouse drags aim, Enter fires, Space fires or
// triggers the special, q quits.
type Host struct {
	screen     tcell.Screen
	view       *View
	game       interfaces.Game
	logger     *slog.Logger
	spectators interfaces.Spectators
	ticks      int64
	paused     bool
	dragged    bool
}

// publishEvery is the number of ticks between spectator snapshots.
const publishEvery = 6

// NewHost binds game to screen. spectators may be nil.
func NewHost(screen tcell.Screen, game interfaces.Game, logger *slog.Logger, spectators interfaces.Spectators) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	screen.EnableMouse()
	return &Host{
		screen:     screen,
		view:       NewView(screen),
		game:       game,
		logger:     logger,
		spectators: spectators,
	}
}

// HandleEvent applies one terminal event and reports whether the host should keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyEnter:
			h.game.OnFireRequested()
		case ev.Rune() == ' ':
			if h.game.Phase() == component.PhaseInFlight {
				h.game.OnSpecialRequested()
			} else {
				h.game.OnFireRequested()
			}
		case ev.Rune() == 'p':
			h.paused = !h.paused
		}
	case *tcell.EventMouse:
		p := h.view.ToField(ev.Position())
		switch {
		case ev.Buttons()&tcell.Button1 != 0 && !h.dragged:
			h.dragged = true
			h.game.OnPointerDown(p.X, p.Y)
		case ev.Buttons()&tcell.Button1 != 0:
			h.game.OnPointerMove(p.X, p.Y)
		case h.dragged:
			h.dragged = false
			h.game.OnPointerMove(p.X, p.Y)
			h.game.OnPointerUp()
		}
		if ev.Buttons()&tcell.Button2 != 0 {
			h.game.OnSpecialRequested()
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Tick advances the game once unless paused. It returns false once the campaign is over.
func (h *Host) Tick() bool {
	if h.paused {
		return true
	}
	err := h.game.AdvanceTick()
	h.ticks++
	if h.spectators != nil && h.ticks%publishEvery == 0 {
		h.spectators.Publish(h.game.Snapshot())
	}
	if err != nil {
		if errors.Is(err, defs.ErrInvalidConfiguration) && h.game.Halted() {
			return false
		}
		h.logger.Error("tick failed", "err", err)
	}
	return true
}

// Run loops until ctx is done, the player quits or the campaign ends.
func (h *Host) Run(ctx context.Context, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			running := h.Tick()
			h.view.Draw(h.game.Snapshot())
			if !running {
				return
			}
		}
	}
}
