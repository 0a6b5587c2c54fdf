package lights

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"chronal/internal/core"
)

var (
	// ErrMalformedLight marks an input line without two <x, y> pairs.
	ErrMalformedLight = errors.New("lights: malformed light")
	// ErrNoLights is returned for input that holds no lights at all.
	ErrNoLights = errors.New("lights: no lights in input")
	// ErrFieldTooLarge is returned when rendering would exceed the area limit.
	ErrFieldTooLarge = errors.New("lights: field too large to render")
)

var lightPattern = regexp.MustCompile(`<\s*(-?\d+),\s*(-?\d+)\s*>.*<\s*(-?\d+),\s*(-?\d+)\s*>`)

// Light is a point moving with constant velocity.
type Light struct {
	Pos core.Point
	Vel core.Point
}

// Sky holds every light and the bounding box of their positions.
// Coincident lights are kept as separate entries.
type Sky struct {
	lights []Light
	bounds core.Bounds
	tick   int
}

// NewSky builds a sky from the given lights at tick zero.
func NewSky(lights []Light) *Sky {
	s := &Sky{lights: append([]Light(nil), lights...)}
	s.bounds = core.BoundsOf(s.Positions())
	return s
}

// Parse reads one light per line in the form
// "position=< 9,  1> velocity=< 0,  2>".
func Parse(input []byte) (*Sky, error) {
	var lights []Light
	for _, line := range core.Lines(input) {
		m := lightPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Wrap(ErrMalformedLight)
		}
		var v [4]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, line.Wrap(fmt.Errorf("%w: %v", ErrMalformedLight, err))
			}
			v[i] = n
		}
		lights = append(lights, Light{
			Pos: core.Point{X: v[0], Y: v[1]},
			Vel: core.Point{X: v[2], Y: v[3]},
		})
	}
	if len(lights) == 0 {
		return nil, ErrNoLights
	}
	return NewSky(lights), nil
}

// Name returns the simulation identifier.
func (s *Sky) Name() string { return "lights" }

// Done is always false: the light field has no intrinsic end.
func (s *Sky) Done() bool { return false }

// Tick reports the net number of ticks applied since construction.
func (s *Sky) Tick() int { return s.tick }

// Bounds returns the bounding box maintained across ticks.
func (s *Sky) Bounds() core.Bounds { return s.bounds }

// Len returns the number of lights.
func (s *Sky) Len() int { return len(s.lights) }

// Lights returns a copy of the current lights.
func (s *Sky) Lights() []Light { return append([]Light(nil), s.lights...) }

// Positions returns the current position of every light.
func (s *Sky) Positions() []core.Point {
	pts := make([]core.Point, len(s.lights))
	for i, l := range s.lights {
		pts[i] = l.Pos
	}
	return pts
}

// Step moves every light by its velocity.
func (s *Sky) Step() error {
	s.advance(1)
	return nil
}

// Back undoes one tick.
func (s *Sky) Back() {
	s.advance(-1)
}

// advance replaces the light set with one where every position moved by
// dir*velocity, rebuilding the bounding box in the same pass.
func (s *Sky) advance(dir int) {
	next := make([]Light, len(s.lights))
	b := core.EmptyBounds()
	for i, l := range s.lights {
		l.Pos = core.Point{X: l.Pos.X + dir*l.Vel.X, Y: l.Pos.Y + dir*l.Vel.Y}
		next[i] = l
		b = b.Extend(l.Pos)
	}
	s.lights = next
	s.bounds = b
	s.tick += dir
}

// Raster rasterizes the sky into a grid spanning the bounding box. Each
// cell holds the number of lights on it, saturating at 255. maxArea <= 0
// disables the size guard, but a box whose area does not fit in an int is
// always rejected.
func (s *Sky) Raster(maxArea int) (*core.ByteGrid, error) {
	b := s.bounds
	w, h := b.Width(), b.Height()
	if w == math.MaxInt || h == math.MaxInt || (h > 0 && w > math.MaxInt/h) {
		return nil, fmt.Errorf("%w: x: [%d, %d]; y: [%d, %d]", ErrFieldTooLarge, b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	if maxArea > 0 && h > 0 && w > maxArea/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrFieldTooLarge, w, h, maxArea)
	}
	g := core.NewByteGrid(b.Width(), b.Height())
	for _, l := range s.lights {
		g.Inc(l.Pos.X-b.MinX, l.Pos.Y-b.MinY)
	}
	return g, nil
}

// Render draws the sky as text: a bounds header, then '#' for occupied
// cells and '.' for empty ones.
func (s *Sky) Render(maxArea int) (string, error) {
	g, err := s.Raster(maxArea)
	if err != nil {
		return "", err
	}
	b := s.bounds

	var sb strings.Builder
	sb.Grow(b.Area() + b.Height() + 32)
	fmt.Fprintf(&sb, "x: [%d, %d]; y: [%d, %d]\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
