// internal/terminal/view.go
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/pkg/vmath"
)

// View draws snapshots onto a character grid. The field is scaled to fit the screen with
// one row reserved for the status line.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *View) fieldSize() (w, h int) {
	w, h = v.screen.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// ToCell maps a field position to a cell. ok is false off screen.
func (v *View) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	w, h := v.fieldSize()
	x = int(p.X * float64(w) / config.ScreenWidth)
	y = int(p.Y * float64(h) / config.ScreenHeight)
	return x, y, x >= 0 && y >= 0 && x < w && y < h
}

// ToField maps a cell to the field position at its center.
func (v *View) ToField(x, y int) vmath.Vec2 {
	w, h := v.fieldSize()
	return vmath.Vec2{
		X: (float64(x) + 0.5) * config.ScreenWidth / float64(w),
		Y: (float64(y) + 0.5) * config.ScreenHeight / float64(h),
	}
}

func (v *View) put(p vmath.Vec2, r rune, style tcell.Style) {
	if x, y, ok := v.ToCell(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

// Draw renders snap and shows the screen.
func (v *View) Draw(snap app.Snapshot) {
	v.screen.Clear()
	w, h := v.fieldSize()

	sky := tcell.StyleDefault.Background(rgb(config.SkyTopColor))
	ground := tcell.StyleDefault.Background(rgb(config.GroundColor))
	groundRow := int((config.ScreenHeight - config.GroundHeight) * float64(h) / config.ScreenHeight)
	for y := 0; y < h; y++ {
		style := sky
		if y >= groundRow {
			style = ground
		}
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	launcher := sky.Foreground(rgb(config.LauncherColor))
	for y := snap.Aim.Pivot.Y; y < config.ScreenHeight; y += config.ScreenHeight / float64(h) {
		v.put(vmath.Vec2{X: snap.Aim.Pivot.X, Y: y}, '#', launcher)
	}

	for _, b := range snap.Blocks {
		if b.Destroyed {
			continue
		}
		style := sky.Foreground(rgb(b.Color))
		glyph := '█'
		if b.Health < 0.5 {
			glyph = '▓'
		}
		for y := b.Pos.Y - b.Height/2; y < b.Pos.Y+b.Height/2; y += config.ScreenHeight / float64(h) {
			for x := b.Pos.X - b.Width/2; x < b.Pos.X+b.Width/2; x += config.ScreenWidth / float64(w) {
				v.put(vmath.Vec2{X: x, Y: y}, glyph, style)
			}
		}
	}

	for _, p := range snap.Particles {
		v.put(p.Pos, '*', sky.Foreground(rgb(p.Color)))
	}
	for _, b := range snap.Birds {
		trail := sky.Foreground(rgb(b.Color)).Dim(true)
		for _, p := range b.Trail {
			v.put(p, '·', trail)
		}
	}
	for _, b := range snap.Birds {
		v.put(b.Pos, '●', sky.Foreground(rgb(b.Color)).Bold(true))
	}

	status := fmt.Sprintf(" score %d  level %d  birds %d  power %3.0f%%  %s ",
		snap.Score, snap.Level, snap.BirdsRemaining, snap.Aim.Power/config.MaxPower*100, snap.Phase)
	bar := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.screen.SetContent(x, h, r, nil, bar)
	}
	v.screen.Show()
}
