package polymer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

func TestReduce(t *testing.T) {
	cases := map[string]string{
		"aA":               "",
		"abBA":             "",
		"abAB":             "abAB",
		"aabAAB":           "aabAAB",
		"dabAcCaCBAcCcaDA": "dabCBAcaDA",
	}
	for in, want := range cases {
		assert.Equal(t, want, string(Reduce([]byte(in))), in)
	}
}

func TestShortest(t *testing.T) {
	assert.Equal(t, 4, Shortest([]byte("dabAcCaCBAcCcaDA")))
	assert.Equal(t, 0, Shortest(nil))
}

// Reducing twice must not change anything: no adjacent pair in the output
// may still react.
func TestReduceIsIdempotent(t *testing.T) {
	rng := core.NewRNG(5)
	const alphabet = "abcABC"
	for i := 0; i < 50; i++ {
		var b strings.Builder
		for n := rng.Between(0, 200); n > 0; n-- {
			b.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		once := Reduce([]byte(b.String()))
		assert.Equal(t, once, Reduce(once))
	}
}

func TestParse(t *testing.T) {
	units, err := Parse([]byte("dabAcCaCBAcCcaDA\n"))
	require.NoError(t, err)
	assert.Equal(t, "dabAcCaCBAcCcaDA", string(units))

	_, err = Parse([]byte("dab1"))
	assert.ErrorIs(t, err, ErrMalformedPolymer)

	_, err = Parse([]byte("ab\ncd\n"))
	require.ErrorIs(t, err, ErrMalformedPolymer)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestPuzzleSolve(t *testing.T) {
	f, err := core.Lookup("polymer")
	require.NoError(t, err)
	answers, err := f(nil).Solve([]byte("dabAcCaCBAcCcaDA"))
	require.NoError(t, err)
	assert.Equal(t, core.Answers{core.Part(1, 10), core.Part(2, 4)}, answers)
}
