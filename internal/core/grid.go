package core

import (
	"math"
	"math/bits"
)

// Point is an integer coordinate in an unbounded plane.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds is an inclusive axis-aligned box. The zero value is a single cell at
// the origin; use EmptyBounds for a box that contains nothing yet.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// EmptyBounds returns a box that any call to Extend will replace.
func EmptyBounds() Bounds {
	return Bounds{MinX: math.MaxInt, MinY: math.MaxInt, MaxX: math.MinInt, MaxY: math.MinInt}
}

// BoundsOf computes the bounding box of pts from scratch.
func BoundsOf(pts []Point) Bounds {
	b := EmptyBounds()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Empty reports whether no point has been added to the box.
func (b Bounds) Empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// Extend grows the box to include p.
func (b Bounds) Extend(p Point) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Width is the number of columns covered by the box, saturating at
// math.MaxInt when the span does not fit in an int.
func (b Bounds) Width() int {
	if b.Empty() {
		return 0
	}
	return span(b.MinX, b.MaxX)
}

// Height is the number of rows covered by the box, saturating at math.MaxInt.
func (b Bounds) Height() int {
	if b.Empty() {
		return 0
	}
	return span(b.MinY, b.MaxY)
}

func span(lo, hi int) int {
	d := hi - lo
	if d < 0 || d == math.MaxInt {
		return math.MaxInt
	}
	return d + 1
}

// Area is Width*Height, saturating at math.MaxInt.
func (b Bounds) Area() int {
	w, h := b.Width(), b.Height()
	if h > 0 && w > math.MaxInt/h {
		return math.MaxInt
	}
	return w * h
}

// CompareArea returns -1, 0 or +1 as b covers fewer, as many or more cells
// than o. It is exact for any coordinates.
func (b Bounds) CompareArea(o Bounds) int {
	switch {
	case b.Empty() && o.Empty():
		return 0
	case b.Empty():
		return -1
	case o.Empty():
		return 1
	}
	bh, bl := b.cellsLessOne()
	oh, ol := o.cellsLessOne()
	switch {
	case bh < oh || bh == oh && bl < ol:
		return -1
	case bh > oh || bh == oh && bl > ol:
		return 1
	}
	return 0
}

// cellsLessOne returns the 128-bit cell count minus one as (hi, lo). With
// dx and dy the unsigned spans, (dx+1)(dy+1)-1 = dx*dy+dx+dy, which always
// fits in 128 bits.
func (b Bounds) cellsLessOne() (hi, lo uint64) {
	dx := uint64(b.MaxX) - uint64(b.MinX)
	dy := uint64(b.MaxY) - uint64(b.MinY)
	hi, lo = bits.Mul64(dx, dy)
	var c uint64
	lo, c = bits.Add64(lo, dx, 0)
	hi += c
	lo, c = bits.Add64(lo, dy, 0)
	hi += c
	return hi, lo
}

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// OnEdge reports whether p lies on the outer ring of the box.
func (b Bounds) OnEdge(p Point) bool {
	return b.Contains(p) && (p.X == b.MinX || p.X == b.MaxX || p.Y == b.MinY || p.Y == b.MaxY)
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Inc adds one to the cell at (x, y), saturating at 255.
func (g *ByteGrid) Inc(x, y int) {
	i := g.Index(x, y)
	if g.data[i] < math.MaxUint8 {
		g.data[i]++
	}
}
