// cmd/slingshot/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-slingshot/internal/config"
	"go-slingshot/internal/sound"
	"go-slingshot/internal/spectate"
	"go-slingshot/internal/state"
)

const startFromGame = true // false shows the title screen first

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.FromEnv()
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "random seed, 0 = time based")
	flag.IntVar(&settings.StartLevel, "level", settings.StartLevel, "first level")
	flag.StringVar(&settings.LevelFile, "levels", settings.LevelFile, "JSON level layout file")
	flag.StringVar(&settings.SpectateAddr, "spectate", settings.SpectateAddr, "websocket spectator address, e.g. localhost:8090")
	flag.BoolVar(&settings.Mute, "mute", settings.Mute, "start muted")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	player := sound.NewPlayer(audio.NewContext(int(sound.SampleRate)), 0.4, settings.Seed, logger)
	player.SetMuted(settings.Mute)
	opts := state.Options{Settings: settings, Logger: logger, Sound: player}

	if settings.SpectateAddr != "" {
		hub := spectate.NewHub("", logger)
		opts.Hub = hub
		mux := http.NewServeMux()
		mux.Handle("/spectate", hub)
		go func() {
			log.Println(http.ListenAndServe(settings.SpectateAddr, mux))
		}()
		log.Printf("spectators: ws://%s/spectate", settings.SpectateAddr)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		g, err := opts.NewSession()
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(state.NewPlayState(sm, opts, g))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Slingshot")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
