// Package coords measures the Manhattan regions around a set of points.
package coords

import (
	"errors"
	"regexp"
	"strconv"

	"chronal/internal/core"
)

var (
	// ErrMalformedPoint marks a line that is not "x, y".
	ErrMalformedPoint = errors.New("coords: malformed point")
	// ErrNoPoints is returned for empty input.
	ErrNoPoints = errors.New("coords: no points")
	// ErrNoFiniteArea is returned when every region touches the bounding box edge.
	ErrNoFiniteArea = errors.New("coords: every area is infinite")
)

var pointPattern = regexp.MustCompile(`^(-?\d+),\s*(-?\d+)$`)

// Parse reads one point per line.
func Parse(input []byte) ([]core.Point, error) {
	lines := core.Lines(input)
	points := make([]core.Point, 0, len(lines))
	for _, line := range lines {
		m := pointPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Wrap(ErrMalformedPoint)
		}
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX != nil || errY != nil {
			return nil, line.Wrap(ErrMalformedPoint)
		}
		points = append(points, core.Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

// closest returns the index of the single nearest point to p, or -1 on a tie.
func closest(points []core.Point, p core.Point) int {
	best, bestDist := -1, -1
	for i, q := range points {
		d := p.Manhattan(q)
		switch {
		case bestDist < 0 || d < bestDist:
			best, bestDist = i, d
		case d == bestDist:
			best = -1
		}
	}
	return best
}

// LargestFiniteArea returns the size of the largest region of cells closest
// to a single point. Regions reaching the edge of the bounding box extend
// forever and are skipped; cells tied between points belong to nobody.
func LargestFiniteArea(points []core.Point) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	b := core.BoundsOf(points)
	area := make([]int, len(points))
	infinite := make([]bool, len(points))
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			cell := core.Point{X: x, Y: y}
			owner := closest(points, cell)
			if owner < 0 {
				continue
			}
			area[owner]++
			if b.OnEdge(cell) {
				infinite[owner] = true
			}
		}
	}

	best := -1
	for i, n := range area {
		if !infinite[i] && n > best {
			best = n
		}
	}
	if best < 0 {
		return 0, ErrNoFiniteArea
	}
	return best, nil
}

// SafeRegion counts the cells whose total distance to all points is below
// threshold. The search box is the bounding box widened by threshold/len
// on every side; beyond that the total distance cannot stay below it.
func SafeRegion(points []core.Point, threshold int) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	margin := threshold/len(points) + 1
	b := core.BoundsOf(points)
	n := 0
	for y := b.MinY - margin; y <= b.MaxY+margin; y++ {
		for x := b.MinX - margin; x <= b.MaxX+margin; x++ {
			cell := core.Point{X: x, Y: y}
			total := 0
			for _, p := range points {
				total += cell.Manhattan(p)
				if total >= threshold {
					break
				}
			}
			if total < threshold {
				n++
			}
		}
	}
	return n, nil
}

// Config sets the safe region threshold.
type Config struct {
	Threshold int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config { return Config{Threshold: 10000} }

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "threshold", 1, &c.Threshold)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Region",
		Params: []core.Parameter{core.IntParam("threshold", "Total distance limit", c.Threshold)},
	}}}
}

type puzzle struct{ cfg Config }

func (p puzzle) Name() string                       { return "coords" }
func (p puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

func (p puzzle) Solve(input []byte) (core.Answers, error) {
	points, err := Parse(input)
	if err != nil {
		return nil, err
	}
	largest, err := LargestFiniteArea(points)
	if err != nil {
		return nil, err
	}
	safe, err := SafeRegion(points, p.cfg.Threshold)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, largest), core.Part(2, safe)}, nil
}

func init() {
	core.Register("coords", func(cfg map[string]string) core.Puzzle {
		return puzzle{cfg: FromMap(cfg)}
	})
}
