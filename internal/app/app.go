//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"chronal/internal/render"
	"chronal/internal/sims/lights"
	"chronal/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a light field to the ebiten.Game interface.
type Game struct {
	field   *Field
	cfg     *Config
	logger  *log.Logger
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	lights  lights.Config

	palette  []color.RGBA
	onColor  color.Color
	offColor color.Color
	mono     bool

	paused   bool
	tickOnce bool
	err      error
}

// New constructs a Game for the provided field.
func New(field *Field, cfg *Config, logger *log.Logger) *Game {
	off := color.RGBA{R: 8, G: 8, B: 14, A: 255}
	on := color.RGBA{R: 120, G: 200, B: 255, A: 255}
	return &Game{
		field:    field,
		cfg:      cfg,
		logger:   logger,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(cfg.Panel),
		lights:   cfg.Lights(),
		palette:  render.Heat(off, on, 4),
		onColor:  on,
		offColor: off,
	}
}

// Update handles per-frame logic and advances the field.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.paused = true
		g.field.Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.paused = true
		tick, err := g.field.Align(g.lights.AlignLimit)
		if err != nil {
			g.logger.Warn("align failed", "err", err)
		} else {
			g.logger.Info("aligned", "tick", tick)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.field.Reload(); err != nil {
			g.logger.Error("reload failed", "err", err)
		}
		g.tickOnce = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mono = !g.mono
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.overlay.ShowVelocity = !g.overlay.ShowVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ShowNext = !g.overlay.ShowNext
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}

	if !g.paused || g.tickOnce {
		if err := g.field.Step(); err != nil {
			return err
		}
		g.tickOnce = false
	}

	tick, count, b := g.field.Status()
	g.hud.Update(ui.Status{
		Title:  "lights",
		Tick:   tick,
		Lights: count,
		Bounds: b,
		Paused: g.paused,
		Err:    g.err,
		Params: g.lights.Parameters(),
	})
	return nil
}

// Draw renders the current field.
func (g *Game) Draw(screen *ebiten.Image) {
	sky := g.field.Sky()
	vp := render.Fit(sky.Bounds(), g.cfg.Width, g.cfg.Height)
	grid, err := sky.Raster(g.lights.MaxArea)
	g.err = nil
	switch {
	case errors.Is(err, lights.ErrFieldTooLarge):
		g.err = err
		g.overlay.DrawPoints(screen, sky.Lights(), vp)
	case g.mono:
		g.painter.BlitBinary(screen, grid, g.onColor, g.offColor, vp)
	default:
		g.painter.Blit(screen, grid, g.palette, vp)
	}
	if err == nil {
		g.overlay.Draw(screen, sky.Lights(), vp)
	}
	g.hud.Draw(screen, g.cfg.Width, g.cfg.Height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width + g.hud.Width(), g.cfg.Height
}
