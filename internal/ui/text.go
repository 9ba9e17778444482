// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the HUD font.
var Face font.Face = basicfont.Face7x13

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	b := text.BoundString(Face, s)
	return b.Max.X - b.Min.X
}

// DrawText draws s with its baseline at (x, y).
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawCentered draws s horizontally centered on cx.
func DrawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	text.Draw(screen, s, Face, cx-TextWidth(s)/2, y, clr)
}
