// internal/interfaces/game_context.go
package interfaces

import (
	"go-slingshot/internal/app"
	"go-slingshot/internal/event"
	"go-slingshot/internal/spectate"
)

// Spectators receive a running session's snapshots and level events.
type Spectators interface {
	SetSessionID(id string)
	Subscribe(d *event.Dispatcher)
	Publish(snap app.Snapshot)
}

var _ Spectators = (*spectate.Hub)(nil)
