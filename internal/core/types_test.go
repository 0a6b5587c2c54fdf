package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct{ name string }

func (e echo) Name() string { return e.name }
func (e echo) Solve(input []byte) (Answers, error) {
	return Answers{Part(1, len(input))}, nil
}

func TestRegistryIgnoresInvalidEntries(t *testing.T) {
	before := len(Puzzles())
	Register("", func(map[string]string) Puzzle { return echo{} })
	Register("nil-factory", nil)
	assert.Len(t, Puzzles(), before)
}

func TestRegistryLookupAndNames(t *testing.T) {
	Register("zz-echo", func(map[string]string) Puzzle { return echo{name: "zz-echo"} })
	Register("aa-echo", func(map[string]string) Puzzle { return echo{name: "aa-echo"} })
	t.Cleanup(func() {
		delete(puzzles, "zz-echo")
		delete(puzzles, "aa-echo")
	})

	names := Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "aa-echo")

	f, err := Lookup("zz-echo")
	require.NoError(t, err)
	ans, err := f(nil).Solve([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 3\n", ans.String())

	_, err = Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestAnswersStringPutsMultilineValuesOnTheirOwnLines(t *testing.T) {
	ans := Answers{
		{Label: "Tick 3", Value: "x: [0, 1]\n#.\n"},
		Part(2, "CABDFE"),
	}
	assert.Equal(t, "Tick 3:\nx: [0, 1]\n#.\nPart 2: CABDFE\n", ans.String())
}
