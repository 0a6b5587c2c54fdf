package render

import "chronal/internal/core"

// Viewport maps plane coordinates inside a bounding box onto a screen
// region, preserving the aspect ratio and centring the box.
type Viewport struct {
	Origin  core.Point // plane coordinate drawn at the top-left corner
	Scale   float64    // screen pixels per cell
	OffsetX float64
	OffsetY float64
}

// Fit returns the viewport that shows b as large as possible inside a
// w*h screen region. An empty box maps to the origin at scale 1.
func Fit(b core.Bounds, w, h int) Viewport {
	if b.Empty() || w <= 0 || h <= 0 {
		return Viewport{Scale: 1}
	}
	sx := float64(w) / float64(b.Width())
	sy := float64(h) / float64(b.Height())
	scale := min(sx, sy)
	return Viewport{
		Origin:  core.Point{X: b.MinX, Y: b.MinY},
		Scale:   scale,
		OffsetX: (float64(w) - scale*float64(b.Width())) / 2,
		OffsetY: (float64(h) - scale*float64(b.Height())) / 2,
	}
}

// ToScreen returns the screen position of the centre of cell p.
func (v Viewport) ToScreen(p core.Point) (float64, float64) {
	x := v.OffsetX + (float64(p.X-v.Origin.X)+0.5)*v.Scale
	y := v.OffsetY + (float64(p.Y-v.Origin.Y)+0.5)*v.Scale
	return x, y
}
