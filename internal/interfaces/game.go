// internal/interfaces/game.go
package interfaces

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . Game,Spectators

import (
	"go-slingshot/internal/app"
	"go-slingshot/internal/component"
)

// Game is the session surface a host drives. *app.Game implements it.
type Game interface {
	AdvanceTick() error
	OnPointerDown(x, y float64)
	OnPointerMove(x, y float64)
	OnPointerUp()
	OnFireRequested()
	OnSpecialRequested()
	Phase() component.Phase
	Halted() bool
	Snapshot() app.Snapshot
}

var _ Game = (*app.Game)(nil)
