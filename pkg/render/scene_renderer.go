// pkg/render/scene_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/internal/utils"
	"go-slingshot/pkg/vmath"
)

// SceneRenderer draws a snapshot: backdrop, launcher, blocks, birds and particles.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	background   *ebiten.Image // sky and ground, rendered once
}

func NewSceneRenderer(screenWidth, screenHeight int) *SceneRenderer {
	r := &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		background:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderBackground()
	return r
}

// RenderBackground redraws the static backdrop.
func (r *SceneRenderer) RenderBackground() {
	r.background.Clear()
	const bands = 60
	bandHeight := float32(r.screenHeight) / bands
	for i := 0; i < bands; i++ {
		c := MixColor(config.SkyTopColor, config.SkyBottomColor, float64(i)/(bands-1))
		vector.DrawFilledRect(r.background, 0, float32(i)*bandHeight, float32(r.screenWidth), bandHeight+1, c, false)
	}
	groundY := float32(r.screenHeight) - config.GroundHeight
	vector.DrawFilledRect(r.background, 0, groundY, float32(r.screenWidth), config.GroundHeight, config.GroundColor, false)
	vector.DrawFilledRect(r.background, 0, groundY, float32(r.screenWidth), 4, config.GroundDarkColor, false)
}

// Draw renders snap onto screen.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.DrawImage(r.background, nil)

	r.drawLauncher(screen, snap)
	for _, b := range snap.Blocks {
		if !b.Destroyed {
			r.drawBlock(screen, b)
		}
	}
	for _, p := range snap.Particles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), WithAlpha(p.Color, p.Life), true)
	}
	for _, b := range snap.Birds {
		r.drawTrail(screen, b)
	}
	for _, b := range snap.Birds {
		r.drawBird(screen, b)
	}
}

func (r *SceneRenderer) drawLauncher(screen *ebiten.Image, snap app.Snapshot) {
	pivot := snap.Aim.Pivot
	baseX := float32(pivot.X - config.LauncherBaseWidth/2)
	vector.DrawFilledRect(screen, baseX, float32(pivot.Y), config.LauncherBaseWidth, config.LauncherBaseHeight, config.LauncherColor, false)
	vector.StrokeRect(screen, baseX, float32(pivot.Y), config.LauncherBaseWidth, config.LauncherBaseHeight, 2, DarkenColor(config.LauncherColor), false)

	tip := pivot.Add(vmath.FromAngle(snap.Aim.Angle, config.LauncherArmLength-snap.Aim.Pull))
	if cur, ok := snap.CurrentBird(); ok && !cur.Launched {
		tip = cur.Pos
		vector.StrokeCircle(screen, float32(tip.X), float32(tip.Y), config.BucketRadius, 3, config.ArmColor, true)
	}
	vector.StrokeLine(screen, float32(pivot.X), float32(pivot.Y), float32(tip.X), float32(tip.Y), 8, config.ArmColor, true)

	if snap.Aim.Dragging {
		end := tip.Add(vmath.FromAngle(snap.Aim.Angle, config.AimLineLength))
		drawDashed(screen, tip, end, 10, config.AimLineColor)
	}
}

func (r *SceneRenderer) drawBlock(screen *ebiten.Image, b app.BlockView) {
	fill := MixColor(DarkenColor(b.Color), b.Color, b.Health)
	path := rectPath(b.Pos, b.Width, b.Height, b.Rotation)
	FillPath(screen, path, fill)
	StrokePath(screen, path, 2, DarkenColor(b.Color))

	if b.Health < 1 {
		const barHeight = 5
		x := float32(b.Pos.X - b.Width/2)
		y := float32(b.Pos.Y-b.Height/2) - barHeight - 4
		vector.DrawFilledRect(screen, x, y, float32(b.Width), barHeight, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, x, y, float32(b.Width*b.Health), barHeight, config.HealthFillColor, false)
	}
}

func (r *SceneRenderer) drawTrail(screen *ebiten.Image, b app.BirdView) {
	n := len(b.Trail)
	for i, p := range b.Trail {
		t := float32(n-i) / float32(n+1)
		radius := utils.Lerp(2, float32(b.Radius)*0.5, t)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, WithAlpha(b.Color, float64(t)*0.6), true)
	}
}

func (r *SceneRenderer) drawBird(screen *ebiten.Image, b app.BirdView) {
	x, y, rad := float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius)
	vector.DrawFilledCircle(screen, x, y, rad, b.Color, true)
	vector.StrokeCircle(screen, x, y, rad, 2, DarkenColor(b.Color), true)

	eye := b.Pos.Add(vmath.FromAngle(b.Rotation-0.5, b.Radius*0.45))
	vector.DrawFilledCircle(screen, float32(eye.X), float32(eye.Y), rad*0.25, config.EyeWhiteColor, true)
	vector.DrawFilledCircle(screen, float32(eye.X), float32(eye.Y), rad*0.12, config.EyePupilColor, true)

	var beak vector.Path
	tipPt := b.Pos.Add(vmath.FromAngle(b.Rotation, b.Radius*1.4))
	left := b.Pos.Add(vmath.FromAngle(b.Rotation-0.35, b.Radius*0.8))
	right := b.Pos.Add(vmath.FromAngle(b.Rotation+0.35, b.Radius*0.8))
	beak.MoveTo(float32(left.X), float32(left.Y))
	beak.LineTo(float32(tipPt.X), float32(tipPt.Y))
	beak.LineTo(float32(right.X), float32(right.Y))
	beak.Close()
	FillPath(screen, &beak, config.BeakColor)

	if b.SpecialUsed {
		vector.StrokeCircle(screen, x, y, rad+4, 1, WithAlpha(config.EyeWhiteColor, 0.7), true)
	}
}

// rectPath returns a w×h rectangle centered on c and rotated by angle.
func rectPath(c vmath.Vec2, w, h, angle float64) *vector.Path {
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	var path vector.Path
	for i, k := range corners {
		px := c.X + k[0]*cos - k[1]*sin
		py := c.Y + k[0]*sin + k[1]*cos
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return &path
}

func drawDashed(screen *ebiten.Image, from, to vmath.Vec2, dash float64, clr color.Color) {
	length := from.Dist(to)
	if length == 0 {
		return
	}
	dir := to.Sub(from).Scale(1 / length)
	for d := 0.0; d < length; d += dash * 2 {
		a := from.Add(dir.Scale(d))
		b := from.Add(dir.Scale(math.Min(d+dash, length)))
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
	}
}
