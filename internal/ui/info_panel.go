// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-slingshot/internal/config"
)

// InfoPanel shows score, level and bird count in the top-left corner.
type InfoPanel struct {
	X, Y float32
}

func NewInfoPanel(x, y float32) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

// Draw renders the panel.
func (p *InfoPanel) Draw(screen *ebiten.Image, score, level, birds int, phase string) {
	lines := []string{
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Level: %d", level),
		fmt.Sprintf("Birds: %d", birds),
	}
	if phase != "" {
		lines = append(lines, phase)
	}

	width := 0
	for _, l := range lines {
		if w := TextWidth(l); w > width {
			width = w
		}
	}
	const lineHeight = 16
	vector.DrawFilledRect(screen, p.X, p.Y, float32(width+16), float32(len(lines)*lineHeight+8), config.OverlayColor, false)
	for i, l := range lines {
		DrawText(screen, l, int(p.X)+8, int(p.Y)+16+i*lineHeight, config.TextLightColor)
	}
}
