//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"chronal/internal/render"
	"chronal/internal/sims/lights"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws optional debugging visuals on top of the field: velocity
// arrows and the positions every light reaches on the next tick. It also
// draws lights as points when the field is too large to rasterize.
type Overlay struct {
	ShowVelocity bool
	ShowNext     bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw paints the enabled visuals for ls through vp.
func (o *Overlay) Draw(screen *ebiten.Image, ls []lights.Light, vp render.Viewport) {
	if o == nil {
		return
	}
	if o.ShowNext {
		size := math.Max(vp.Scale*0.6, 1.5)
		for _, l := range ls {
			x, y := vp.ToScreen(l.Pos.Add(l.Vel))
			o.drawPoint(screen, x, y, size, color.RGBA{R: 90, G: 130, B: 170, A: 160})
		}
	}
	if o.ShowVelocity {
		o.drawVelocities(screen, ls, vp)
	}
}

// DrawPoints draws every light as a dot. Used when the bounding box is
// too large for a raster.
func (o *Overlay) DrawPoints(screen *ebiten.Image, ls []lights.Light, vp render.Viewport) {
	if o == nil {
		return
	}
	size := math.Max(vp.Scale, 2)
	for _, l := range ls {
		x, y := vp.ToScreen(l.Pos)
		o.drawPoint(screen, x, y, size, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) drawVelocities(screen *ebiten.Image, ls []lights.Light, vp render.Viewport) {
	const headAngle = math.Pi / 6

	maxSpeed := 0.0
	for _, l := range ls {
		maxSpeed = math.Max(maxSpeed, math.Hypot(float64(l.Vel.X), float64(l.Vel.Y)))
	}
	if maxSpeed == 0 {
		return
	}
	thickness := math.Max(vp.Scale*0.15, 1)
	for _, l := range ls {
		speed := math.Hypot(float64(l.Vel.X), float64(l.Vel.Y))
		if speed == 0 {
			continue
		}
		x1, y1 := vp.ToScreen(l.Pos)
		x2, y2 := vp.ToScreen(l.Pos.Add(l.Vel))
		col := interpolateColor(speed / maxSpeed)
		o.drawLine(screen, x1, y1, x2, y2, thickness, col)

		headLength := math.Min(math.Hypot(x2-x1, y2-y1)*0.3, 8)
		angle := math.Atan2(y2-y1, x2-x1)
		o.drawLine(screen, x2, y2, x2-math.Cos(angle+headAngle)*headLength, y2-math.Sin(angle+headAngle)*headLength, thickness, col)
		o.drawLine(screen, x2, y2, x2-math.Cos(angle-headAngle)*headLength, y2-math.Sin(angle-headAngle)*headLength, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// interpolateColor maps t in [0, 1] from slow blue to fast orange.
func interpolateColor(t float64) color.RGBA {
	slow := color.RGBA{R: 80, G: 150, B: 230, A: 220}
	fast := color.RGBA{R: 250, G: 150, B: 60, A: 220}
	return lerpRGBA(slow, fast, clamp01(t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
