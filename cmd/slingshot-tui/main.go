// cmd/slingshot-tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/internal/interfaces"
	"go-slingshot/internal/spectate"
	"go-slingshot/internal/terminal"
)

func main() {
	settings := config.FromEnv()
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "random seed, 0 = time based")
	flag.IntVar(&settings.StartLevel, "level", settings.StartLevel, "first level")
	flag.StringVar(&settings.LevelFile, "levels", settings.LevelFile, "JSON level layout file")
	flag.StringVar(&settings.SpectateAddr, "spectate", settings.SpectateAddr, "websocket spectator address, e.g. localhost:8090")
	logFile := flag.String("log", "", "log file; the terminal is busy drawing")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	g, err := app.NewGame(settings, logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var spectators interfaces.Spectators
	if settings.SpectateAddr != "" {
		hub := spectate.NewHub(g.World.SessionID, logger)
		hub.Subscribe(g.EventDispatcher)
		spectators = hub
		mux := http.NewServeMux()
		mux.Handle("/spectate", hub)
		go func() {
			logger.Error("spectator server stopped", "err", http.ListenAndServe(settings.SpectateAddr, mux))
		}()
	}

	host := terminal.NewHost(screen, g, logger, spectators)
	host.Run(ctx, config.TicksPerSec)
	screen.Fini()

	fmt.Printf("level %d, score %d\n", g.Level(), g.Score())
}
