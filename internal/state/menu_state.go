// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-slingshot/internal/ui"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen.
type MenuState struct {
	sm   *StateMachine
	opts Options
	err  error
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.RequestQuit()
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	g, err := m.opts.NewSession()
	if err != nil {
		m.err = err
		if m.opts.Logger != nil {
			m.opts.Logger.Error("failed to start session", "err", err)
		}
		return
	}
	m.sm.SetState(NewPlayState(m.sm, m.opts, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 24, 40, 255})
	lines := []string{"SPACE to start, ESC to quit"}
	if m.err != nil {
		lines = append(lines, m.err.Error())
	}
	ui.DrawBanner(screen, "SLINGSHOT", lines...)
}

func (m *MenuState) Exit() {}
