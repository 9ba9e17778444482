// internal/ui/power_meter.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-slingshot/internal/config"
)

// PowerMeter is a horizontal bar showing the launch power of the current pull.
type PowerMeter struct {
	X, Y          float32
	Width, Height float32
}

func NewPowerMeter(x, y, width, height float32) *PowerMeter {
	return &PowerMeter{X: x, Y: y, Width: width, Height: height}
}

// Draw renders the bar for power in [0, max].
func (m *PowerMeter) Draw(screen *ebiten.Image, power, max float64) {
	if max <= 0 {
		return
	}
	frac := power / max
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	vector.DrawFilledRect(screen, m.X, m.Y, m.Width, m.Height, config.MeterBackColor, false)
	vector.DrawFilledRect(screen, m.X, m.Y, m.Width*float32(frac), m.Height, MeterColor(frac), false)
	vector.StrokeRect(screen, m.X, m.Y, m.Width, m.Height, 1, config.TextLightColor, false)

	label := fmt.Sprintf("Power %d%%", int(frac*100+0.5))
	DrawText(screen, label, int(m.X), int(m.Y)-4, config.TextDarkColor)
}

// MeterColor picks the bar color for a power fraction.
func MeterColor(frac float64) color.RGBA {
	switch {
	case frac < 0.4:
		return config.MeterLowColor
	case frac < 0.75:
		return config.MeterMidColor
	default:
		return config.MeterHighColor
	}
}
