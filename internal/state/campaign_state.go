// internal/state/campaign_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/internal/ui"
	"go-slingshot/pkg/render"
)

var _ State = (*CampaignState)(nil)

// CampaignState is shown once the last level is cleared. The halted game keeps decaying
// its particles in the background.
type CampaignState struct {
	sm       *StateMachine
	opts     Options
	game     *app.Game
	renderer *render.SceneRenderer
}

func NewCampaignState(sm *StateMachine, opts Options, game *app.Game) *CampaignState {
	return &CampaignState{
		sm:       sm,
		opts:     opts,
		game:     game,
		renderer: render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *CampaignState) Enter() {}

func (s *CampaignState) Update(deltaTime float64) {
	_ = s.game.AdvanceTick()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm, s.opts))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.RequestQuit()
	}
}

func (s *CampaignState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	ui.DrawBanner(screen, "CAMPAIGN COMPLETE",
		fmt.Sprintf("Final score: %d", snap.Score),
		fmt.Sprintf("Shots: %d  Hits: %d  Blocks: %d", snap.Stats.Shots, snap.Stats.Hits, snap.Stats.BlocksDestroyed),
		"SPACE for the title screen",
	)
}

func (s *CampaignState) Exit() {}
