//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the field view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     Status
	showHelp   bool
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, showHelp: true}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update stores the status to draw next.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// ToggleHelp shows or hides the key bindings.
func (h *HUD) ToggleHelp() {
	if h != nil {
		h.showHelp = !h.showHelp
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	title := h.status.Title
	if title == "" {
		title = "Lights"
	}
	y := panelPadding + headerBaseline
	text.Draw(h.panel, strings.ToUpper(title[:1])+title[1:], face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing

	for _, line := range h.status.Lines() {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if h.status.Err != nil && line == h.status.Err.Error() {
			col = color.RGBA{R: 240, G: 120, B: 110, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}
	if h.showHelp {
		y += lineHeight
		for _, line := range KeyHelp {
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	infoSpacing    = 28
)
