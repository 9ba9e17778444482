// internal/state/options.go
package state

import (
	"log/slog"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/internal/interfaces"
	"go-slingshot/internal/sound"
)

// Options carry what every screen needs to start a session.
type Options struct {
	Settings config.Settings
	Logger   *slog.Logger
	Sound    *sound.Player         // optional
	Hub      interfaces.Spectators // optional
}

// NewSession creates a game and attaches the optional listeners to it.
func (o Options) NewSession() (*app.Game, error) {
	g, err := app.NewGame(o.Settings, o.Logger)
	if err != nil {
		return nil, err
	}
	if o.Sound != nil {
		o.Sound.Subscribe(g.EventDispatcher)
	}
	if o.Hub != nil {
		o.Hub.SetSessionID(g.World.SessionID)
		o.Hub.Subscribe(g.EventDispatcher)
	}
	return g, nil
}
