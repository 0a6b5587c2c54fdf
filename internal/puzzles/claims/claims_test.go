package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

const example = `#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
`

func TestParse(t *testing.T) {
	claims, err := Parse([]byte(example))
	require.NoError(t, err)
	require.Len(t, claims, 3)
	assert.Equal(t, Claim{ID: 2, X: 3, Y: 1, W: 4, H: 4}, claims[1])
}

func TestParseRejectsMalformedClaim(t *testing.T) {
	_, err := Parse([]byte("#1 @ 1,3: 4x4\n#2 @ 3,1 4x4\n"))
	require.ErrorIs(t, err, ErrMalformedClaim)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestExample(t *testing.T) {
	claims, err := Parse([]byte(example))
	require.NoError(t, err)
	f, err := NewFabric(claims, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Overlap())

	id, err := IntactClaim(f, claims)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestFabricIsSizedToClaims(t *testing.T) {
	claims := []Claim{{ID: 1, X: 900, Y: 950, W: 3, H: 2}, {ID: 2, X: 901, Y: 951, W: 3, H: 3}}
	f, err := NewFabric(claims, 0)
	require.NoError(t, err)
	require.Nil(t, f.sparse)
	assert.Equal(t, 4, f.grid.W)
	assert.Equal(t, 4, f.grid.H)
	assert.Equal(t, 2, f.Overlap())
}

func TestNoIntactClaim(t *testing.T) {
	claims := []Claim{{ID: 1, X: 0, Y: 0, W: 2, H: 2}, {ID: 2, X: 1, Y: 1, W: 2, H: 2}}
	f, err := NewFabric(claims, 0)
	require.NoError(t, err)
	_, err = IntactClaim(f, claims)
	assert.ErrorIs(t, err, ErrNoIntactClaim)
}

func TestHeavyOverlapSaturates(t *testing.T) {
	claims := make([]Claim, 300)
	for i := range claims {
		claims[i] = Claim{ID: i + 1, W: 1, H: 1}
	}
	f, err := NewFabric(claims, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Overlap())
	assert.Equal(t, uint8(255), f.grid.At(0, 0))
}

func TestParseRejectsClaimPastCoordinateRange(t *testing.T) {
	_, err := Parse([]byte("#1 @ 9223372036854775807,0: 2x1\n"))
	require.ErrorIs(t, err, ErrMalformedClaim)
}

func TestScatteredClaimsUseSparseFabric(t *testing.T) {
	answers, err := puzzle{cfg: DefaultConfig()}.Solve([]byte("#1 @ 0,0: 1x1\n#2 @ 4000000000,4000000000: 1x1\n"))
	require.NoError(t, err)
	assert.Equal(t, core.Answers{core.Part(1, 0), core.Part(2, 1)}, answers)

	claims := []Claim{
		{ID: 1, X: 0, Y: 0, W: 2, H: 2},
		{ID: 2, X: 1, Y: 1, W: 2, H: 2},
		{ID: 3, X: 4_000_000_000, Y: 4_000_000_000, W: 3, H: 1},
	}
	f, err := NewFabric(claims, 0)
	require.NoError(t, err)
	require.NotNil(t, f.sparse)
	assert.Nil(t, f.grid)
	assert.Equal(t, 1, f.Overlap())
	id, err := IntactClaim(f, claims)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestSparseAndDenseFabricsAgree(t *testing.T) {
	rng := core.NewRNG(11)
	claims := make([]Claim, 12)
	for i := range claims {
		claims[i] = Claim{ID: i + 1, X: rng.Between(0, 12), Y: rng.Between(0, 12), W: rng.Between(2, 6), H: rng.Between(2, 6)}
	}
	dense, err := NewFabric(claims, 0)
	require.NoError(t, err)
	require.Nil(t, dense.sparse)

	far := append([]Claim(nil), claims...)
	far = append(far, Claim{ID: 999, X: 1 << 40, Y: 1 << 40, W: 1, H: 1})
	sparse, err := NewFabric(far, 0)
	require.NoError(t, err)
	require.NotNil(t, sparse.sparse)

	assert.Equal(t, dense.Overlap(), sparse.Overlap())
	for _, c := range claims {
		assert.Equal(t, dense.Intact(c), sparse.Intact(c), "claim %d", c.ID)
	}
	assert.True(t, sparse.Intact(far[len(far)-1]))
}

func TestFabricRejectsTooManyCells(t *testing.T) {
	_, err := NewFabric([]Claim{{ID: 1, W: 4_000_000_000, H: 4_000_000_000}}, DefaultConfig().MaxCells)
	assert.ErrorIs(t, err, ErrFabricTooLarge)

	_, err = NewFabric([]Claim{{ID: 1, W: 3, H: 3}, {ID: 2, W: 2, H: 2}}, 12)
	assert.ErrorIs(t, err, ErrFabricTooLarge)

	_, err = NewFabric([]Claim{{ID: 1, W: 3, H: 3}, {ID: 2, W: 2, H: 2}}, 13)
	assert.NoError(t, err)
}

func TestFromMap(t *testing.T) {
	assert.Equal(t, 500, FromMap(map[string]string{"max_cells": "500"}).MaxCells)
	assert.Equal(t, DefaultConfig(), FromMap(map[string]string{"max_cells": "0"}))
	assert.Contains(t, Config{MaxCells: 77}.Parameters().String(), "max_cells=77")
}

func TestPuzzleSolve(t *testing.T) {
	f, err := core.Lookup("claims")
	require.NoError(t, err)
	answers, err := f(nil).Solve([]byte(example))
	require.NoError(t, err)
	assert.Equal(t, core.Answers{core.Part(1, 4), core.Part(2, 3)}, answers)
}
