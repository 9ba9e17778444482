// internal/ui/bird_queue_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-slingshot/internal/config"
)

const (
	QueueCircleRadius  = 8.0
	QueueCircleSpacing = 4.0
)

// QueueSlot is one bird in the queue indicator.
type QueueSlot struct {
	Color    color.RGBA
	Launched bool
}

// BirdQueueIndicator draws the bird queue as a row of circles, current bird first.
type BirdQueueIndicator struct {
	X, Y float32
}

func NewBirdQueueIndicator(x, y float32) *BirdQueueIndicator {
	return &BirdQueueIndicator{X: x, Y: y}
}

// Draw renders one circle per slot. Launched birds are drawn hollow.
func (i *BirdQueueIndicator) Draw(screen *ebiten.Image, slots []QueueSlot) {
	for j, slot := range slots {
		cx := i.X + QueueCircleRadius + float32(j)*(QueueCircleRadius*2+QueueCircleSpacing)
		cy := i.Y + QueueCircleRadius
		if slot.Launched {
			vector.StrokeCircle(screen, cx, cy, QueueCircleRadius, 2, slot.Color, true)
			continue
		}
		vector.DrawFilledCircle(screen, cx, cy, QueueCircleRadius, slot.Color, true)
		vector.StrokeCircle(screen, cx, cy, QueueCircleRadius, 1, config.TextLightColor, true)
	}
}

// Width returns the indicator width for n slots.
func (i *BirdQueueIndicator) Width(n int) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*(QueueCircleRadius*2+QueueCircleSpacing) - QueueCircleSpacing
}
