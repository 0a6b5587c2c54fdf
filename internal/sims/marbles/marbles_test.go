package marbles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

func TestPublishedHighScores(t *testing.T) {
	cases := []struct {
		players, last, want int
	}{
		{9, 25, 32},
		{10, 1618, 8317},
		{13, 7999, 146373},
		{17, 1104, 2764},
		{21, 6111, 54718},
		{30, 5807, 37305},
	}
	for _, tc := range cases {
		got, err := Play(tc.players, tc.last)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "players=%d last=%d", tc.players, tc.last)
	}
}

func TestCircleMatchesWorkedExample(t *testing.T) {
	g, err := NewGame(9, 25)
	require.NoError(t, err)

	_, err = core.NewDriver(g, core.WithMaxTicks(22)).Run()
	require.NoError(t, err)
	assert.Equal(t, 22, g.Current())
	assert.Equal(t, 23, len(g.Circle()))

	require.NoError(t, g.Step())
	// Marble 23 scores together with marble 9, which sat seven places back.
	assert.Equal(t, 19, g.Current())
	assert.Equal(t, 32, g.Scores()[5])
	assert.Equal(t, 22, len(g.Circle()))
}

func TestIncrementalEquivalence(t *testing.T) {
	for _, n := range []int{1, 22, 23, 24, 46, 500} {
		whole, err := NewGame(13, n)
		require.NoError(t, err)
		_, err = core.NewDriver(whole).Run()
		require.NoError(t, err)

		partial, err := NewGame(13, n-1)
		require.NoError(t, err)
		_, err = core.NewDriver(partial).Run()
		require.NoError(t, err)
		require.NoError(t, partial.Step())

		assert.Equal(t, whole.Scores(), partial.Scores(), "n=%d", n)
		assert.Equal(t, whole.Circle(), partial.Circle(), "n=%d", n)
	}
}

func TestRingShrinksOnlyOnScoringTicks(t *testing.T) {
	g, err := NewGame(5, 100)
	require.NoError(t, err)
	for !g.Done() {
		before := len(g.Circle())
		k := g.next
		require.NoError(t, g.Step())
		if k%23 == 0 {
			assert.Equal(t, before-1, len(g.Circle()), "marble %d", k)
		} else {
			assert.Equal(t, before+1, len(g.Circle()), "marble %d", k)
		}
	}
}

func TestInvalidGame(t *testing.T) {
	_, err := NewGame(0, 10)
	assert.ErrorIs(t, err, ErrInvalidGame)
	_, err = Play(3, -1)
	assert.ErrorIs(t, err, ErrInvalidGame)
}

func TestPuzzleIsDeterministic(t *testing.T) {
	p := NewPuzzle(FromMap(map[string]string{"players": "10", "marbles": "1618", "factor": "2"}))
	first, err := p.Solve(nil)
	require.NoError(t, err)
	second, err := p.Solve(nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, core.Part(1, 8317), first[0])
}
