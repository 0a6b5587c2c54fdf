package app

import (
	"fmt"

	"chronal/internal/core"
	"chronal/internal/sims/lights"
)

// Field owns the light field shown by the viewer and the source it was
// parsed from, so it can be reloaded.
type Field struct {
	src   []byte
	start int
	sky   *lights.Sky
}

// NewField parses src and advances it to tick start.
func NewField(src []byte, start int) (*Field, error) {
	f := &Field{src: src, start: start}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Reload re-parses the source and returns to the start tick.
func (f *Field) Reload() error {
	sky, err := lights.Parse(f.src)
	if err != nil {
		return err
	}
	if f.start > 0 {
		if _, err := core.NewDriver(sky, core.WithMaxTicks(f.start)).Run(); err != nil {
			return fmt.Errorf("app: advance to tick %d: %w", f.start, err)
		}
	}
	f.sky = sky
	return nil
}

// Sky exposes the current field.
func (f *Field) Sky() *lights.Sky { return f.sky }

// Step advances one tick.
func (f *Field) Step() error { return f.sky.Step() }

// Back rewinds one tick.
func (f *Field) Back() { f.sky.Back() }

// Align moves the field to the tick where its bounding box is smallest.
func (f *Field) Align(limit int) (int, error) {
	return lights.Align(f.sky, limit)
}

// Status summarizes the field for the HUD.
func (f *Field) Status() (tick, count int, b core.Bounds) {
	return f.sky.Tick(), f.sky.Len(), f.sky.Bounds()
}
