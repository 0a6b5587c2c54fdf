//go:build ebiten

package render

import (
	"image/color"

	"chronal/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a ByteGrid into an RGBA image and draws it through a
// Viewport. The image is reallocated whenever the grid changes size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter with no image allocated yet.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit converts grid with palette and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, palette []color.RGBA, vp Viewport) {
	if grid == nil {
		return
	}
	gp.ensure(grid.W, grid.H)
	fillPaletteRGBA(gp.buf, grid.Cells(), palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.Scale, vp.Scale)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	dst.DrawImage(gp.img, op)
}

// BlitBinary draws grid in two colours, ignoring the per-cell counts.
func (gp *GridPainter) BlitBinary(dst *ebiten.Image, grid *core.ByteGrid, on, off color.Color, vp Viewport) {
	if grid == nil {
		return
	}
	gp.ensure(grid.W, grid.H)
	fillBinaryRGBA(gp.buf, grid.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.Scale, vp.Scale)
	op.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	dst.DrawImage(gp.img, op)
}
