// internal/ui/banner.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-slingshot/internal/config"
)

// DrawBanner dims the screen and prints a title with optional subtitle lines.
func DrawBanner(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cx := config.ScreenWidth / 2
	y := config.ScreenHeight/2 - 20
	DrawCentered(screen, title, cx, y, config.TextLightColor)
	for i, l := range lines {
		DrawCentered(screen, l, cx, y+28+i*18, config.TextLightColor)
	}
}
