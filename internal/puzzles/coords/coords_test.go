package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

const example = `1, 1
1, 6
8, 3
3, 4
5, 5
8, 9
`

func examplePoints(t *testing.T) []core.Point {
	t.Helper()
	points, err := Parse([]byte(example))
	require.NoError(t, err)
	return points
}

func TestParse(t *testing.T) {
	points := examplePoints(t)
	require.Len(t, points, 6)
	assert.Equal(t, core.Point{X: 8, Y: 3}, points[2])

	_, err := Parse([]byte("1, 1\n1; 6\n"))
	require.ErrorIs(t, err, ErrMalformedPoint)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = Parse([]byte("\n\n"))
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestLargestFiniteArea(t *testing.T) {
	got, err := LargestFiniteArea(examplePoints(t))
	require.NoError(t, err)
	assert.Equal(t, 17, got)
}

func TestAllAreasInfinite(t *testing.T) {
	_, err := LargestFiniteArea([]core.Point{{X: 0, Y: 0}, {X: 4, Y: 4}})
	assert.ErrorIs(t, err, ErrNoFiniteArea)
}

func TestClosestTies(t *testing.T) {
	points := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}
	assert.Equal(t, -1, closest(points, core.Point{X: 2, Y: 3}))
	assert.Equal(t, 1, closest(points, core.Point{X: 3, Y: 0}))
}

func TestSafeRegion(t *testing.T) {
	got, err := SafeRegion(examplePoints(t), 32)
	require.NoError(t, err)
	assert.Equal(t, 16, got)
}

func TestSafeRegionExtendsPastBounds(t *testing.T) {
	got, err := SafeRegion([]core.Point{{X: 0, Y: 0}}, 3)
	require.NoError(t, err)
	assert.Equal(t, 13, got, "diamond of radius 2")
}

func TestPuzzleSolve(t *testing.T) {
	f, err := core.Lookup("coords")
	require.NoError(t, err)
	p := f(map[string]string{"threshold": "32"})
	answers, err := p.Solve([]byte(example))
	require.NoError(t, err)
	assert.Equal(t, core.Answers{core.Part(1, 17), core.Part(2, 16)}, answers)

	d, ok := p.(core.Describer)
	require.True(t, ok)
	assert.Contains(t, d.Parameters().String(), "threshold=32")
}
