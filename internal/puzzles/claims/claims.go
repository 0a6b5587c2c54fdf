// Package claims finds overlapping rectangular claims on a sheet of fabric.
package claims

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"chronal/internal/core"
)

var (
	// ErrMalformedClaim marks a line that is not "#id @ x,y: wxh".
	ErrMalformedClaim = errors.New("claims: malformed claim")
	// ErrNoIntactClaim is returned when every claim overlaps another.
	ErrNoIntactClaim = errors.New("claims: no claim is free of overlap")
	// ErrFabricTooLarge is returned when the claims cover more square inches
	// than the configured limit.
	ErrFabricTooLarge = errors.New("claims: claims cover too much fabric")
)

var claimPattern = regexp.MustCompile(`^#(\d+)\s*@\s*(\d+),(\d+):\s*(\d+)x(\d+)$`)

// Claim is a rectangle of W×H square inches with its top-left corner at X,Y.
type Claim struct {
	ID   int
	X, Y int
	W, H int
}

// Parse reads one claim per line.
func Parse(input []byte) ([]Claim, error) {
	lines := core.Lines(input)
	claims := make([]Claim, 0, len(lines))
	for _, line := range lines {
		m := claimPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Wrap(ErrMalformedClaim)
		}
		var v [5]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, line.Wrap(fmt.Errorf("%w: %v", ErrMalformedClaim, err))
			}
			v[i] = n
		}
		c := Claim{ID: v[0], X: v[1], Y: v[2], W: v[3], H: v[4]}
		if c.X > math.MaxInt-c.W || c.Y > math.MaxInt-c.H {
			return nil, line.Wrap(fmt.Errorf("%w: extends past the coordinate range", ErrMalformedClaim))
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// sparseRatio is how many times larger than the claimed cells the bounding
// box may be before the fabric switches to a map.
const sparseRatio = 4

// Fabric counts how many claims cover each square inch. Counts saturate at
// 255, which is enough to tell single from multiple coverage. Claims that
// fill most of their bounding box are counted on a grid covering only that
// box; scattered claims are counted in a map keyed by square inch.
type Fabric struct {
	origin core.Point
	grid   *core.ByteGrid
	sparse map[core.Point]uint8
}

// NewFabric lays out every claim on a fabric sized to fit them. maxCells
// caps the total claimed square inches; maxCells <= 0 disables the cap.
func NewFabric(claims []Claim, maxCells int) (*Fabric, error) {
	b := core.EmptyBounds()
	total := 0
	for _, c := range claims {
		if c.W <= 0 || c.H <= 0 {
			continue
		}
		b = b.Extend(core.Point{X: c.X, Y: c.Y})
		b = b.Extend(core.Point{X: c.X + c.W - 1, Y: c.Y + c.H - 1})
		total = addCells(total, c.W, c.H)
	}
	if maxCells > 0 && total > maxCells {
		return nil, fmt.Errorf("%w: %d square inches exceeds %d", ErrFabricTooLarge, total, maxCells)
	}

	f := &Fabric{}
	if b.Area()/sparseRatio > total {
		f.sparse = make(map[core.Point]uint8, min(total, 1<<16))
	} else {
		if !b.Empty() {
			f.origin = core.Point{X: b.MinX, Y: b.MinY}
		}
		f.grid = core.NewByteGrid(b.Width(), b.Height())
	}
	for _, c := range claims {
		f.each(c, func(p core.Point) bool {
			f.inc(p)
			return true
		})
	}
	return f, nil
}

// addCells returns total + w*h, saturating at math.MaxInt.
func addCells(total, w, h int) int {
	if w > math.MaxInt/h {
		return math.MaxInt
	}
	if n := w * h; total <= math.MaxInt-n {
		return total + n
	}
	return math.MaxInt
}

// each visits the square inches covered by c until fn returns false.
func (f *Fabric) each(c Claim, fn func(p core.Point) bool) {
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			if !fn(core.Point{X: x, Y: y}) {
				return
			}
		}
	}
}

func (f *Fabric) inc(p core.Point) {
	if f.sparse == nil {
		f.grid.Inc(p.X-f.origin.X, p.Y-f.origin.Y)
		return
	}
	if v := f.sparse[p]; v < math.MaxUint8 {
		f.sparse[p] = v + 1
	}
}

func (f *Fabric) at(p core.Point) uint8 {
	if f.sparse == nil {
		return f.grid.At(p.X-f.origin.X, p.Y-f.origin.Y)
	}
	return f.sparse[p]
}

// Overlap counts the square inches covered by two or more claims.
func (f *Fabric) Overlap() int {
	n := 0
	if f.sparse != nil {
		for _, v := range f.sparse {
			if v >= 2 {
				n++
			}
		}
		return n
	}
	for _, v := range f.grid.Cells() {
		if v >= 2 {
			n++
		}
	}
	return n
}

// Intact reports whether no square inch of c is shared with another claim.
func (f *Fabric) Intact(c Claim) bool {
	intact := true
	f.each(c, func(p core.Point) bool {
		intact = f.at(p) == 1
		return intact
	})
	return intact
}

// IntactClaim returns the ID of the first claim without any overlap.
func IntactClaim(f *Fabric, claims []Claim) (int, error) {
	for _, c := range claims {
		if c.W > 0 && c.H > 0 && f.Intact(c) {
			return c.ID, nil
		}
	}
	return 0, ErrNoIntactClaim
}

// Config bounds the fabric layout.
type Config struct {
	MaxCells int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config { return Config{MaxCells: 16_000_000} }

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "max_cells", 1, &c.MaxCells)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Fabric",
		Params: []core.Parameter{core.IntParam("max_cells", "Claimed square inches", c.MaxCells)},
	}}}
}

type puzzle struct{ cfg Config }

func (p puzzle) Name() string                       { return "claims" }
func (p puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

func (p puzzle) Solve(input []byte) (core.Answers, error) {
	claims, err := Parse(input)
	if err != nil {
		return nil, err
	}
	f, err := NewFabric(claims, p.cfg.MaxCells)
	if err != nil {
		return nil, err
	}
	id, err := IntactClaim(f, claims)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, f.Overlap()), core.Part(2, id)}, nil
}

func init() {
	core.Register("claims", func(cfg map[string]string) core.Puzzle {
		return puzzle{cfg: FromMap(cfg)}
	})
}
