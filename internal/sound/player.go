// internal/sound/player.go
package sound

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-slingshot/internal/event"
	"go-slingshot/internal/utils"
)

const SampleRate = beep.SampleRate(48000)

// Player turns gameplay events into sound cues. Cues are synthesized once and replayed
// from memory.
type Player struct {
	mu      sync.Mutex
	context *audio.Context
	pcm     map[Cue][]byte
	muted   bool
	logger  *slog.Logger
}

// NewPlayer renders every cue and binds them to ctx. A nil ctx keeps the player silent,
// which is what tests and the terminal host use.
func NewPlayer(ctx *audio.Context, volume float64, seed int64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	rng := utils.NewPRNGService(seed)
	p := &Player{
		context: ctx,
		pcm:     make(map[Cue][]byte, cueCount),
		logger:  logger,
	}
	for _, c := range Cues() {
		p.pcm[c] = Render(NewCueStreamer(c, SampleRate, volume, rng), SampleRate)
	}
	return p
}

// Subscribe registers the player for every event that has a cue.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, event.BirdLaunched, event.BlockHit, event.BlockDestroyed, event.SpecialUsed, event.LevelCompleted)
}

// CueFor maps an event type to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.BirdLaunched:
		return CueLaunch, true
	case event.BlockHit:
		return CueHit, true
	case event.BlockDestroyed:
		return CueDestroy, true
	case event.SpecialUsed:
		return CueSpecial, true
	case event.LevelCompleted:
		return CueLevelComplete, true
	}
	return 0, false
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if c, ok := CueFor(e.Type); ok {
		p.Play(c)
	}
}

// Play starts cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.context == nil {
		return
	}
	data, ok := p.pcm[c]
	if !ok {
		return
	}
	player := p.context.NewPlayerFromBytes(data)
	player.Play()
	p.logger.Debug("cue", "cue", c.String())
}

// SetMuted toggles output.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// PCM returns the rendered bytes of a cue.
func (p *Player) PCM(c Cue) []byte {
	return p.pcm[c]
}
