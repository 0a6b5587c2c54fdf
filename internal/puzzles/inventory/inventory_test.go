package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

func TestChecksum(t *testing.T) {
	ids := []string{"abcdef", "bababc", "abbcde", "abcccd", "aabcdd", "abcdee", "ababab"}
	assert.Equal(t, 12, Checksum(ids))
	assert.Zero(t, Checksum(nil))
}

func TestCommonLetters(t *testing.T) {
	ids := []string{"abcde", "fghij", "klmno", "pqrst", "fguij", "axcye", "wvxyz"}
	got, err := CommonLetters(ids)
	require.NoError(t, err)
	assert.Equal(t, "fgij", got)
}

func TestCommonLettersSkipsUnequalLengths(t *testing.T) {
	got, err := CommonLetters([]string{"abc", "abcd", "abd"})
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestCommonLettersNoMatch(t *testing.T) {
	_, err := CommonLetters([]string{"abcde", "axcye", "abcde"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestParseRejectsWhitespace(t *testing.T) {
	_, err := Parse([]byte("abcdef\nab cd\n"))
	require.ErrorIs(t, err, ErrMalformedID)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestParseRejectsNonASCII(t *testing.T) {
	for _, input := range []string{"abcdé\nabcdf\n", "abcd\xff\nabcdf\n", "абвг\n"} {
		_, err := Parse([]byte(input))
		require.ErrorIs(t, err, ErrMalformedID, "%q", input)
		var pe *core.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Line)
	}
}

func TestPuzzleSolve(t *testing.T) {
	f, err := core.Lookup("inventory")
	require.NoError(t, err)
	answers, err := f(nil).Solve([]byte("abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n"))
	require.NoError(t, err)
	assert.Equal(t, "fgij", answers[1].Value)
	assert.Equal(t, "Part 1", answers[0].Label)
}
