package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

var (
	errBroken = errors.New("broken")
	inFlight  atomic.Int32
	peak      atomic.Int32
)

type echo struct{ fail bool }

func (echo) Name() string { return "echo" }

func (e echo) Solve(input []byte) (core.Answers, error) {
	n := inFlight.Add(1)
	defer inFlight.Add(-1)
	for {
		p := peak.Load()
		if n <= p || peak.CompareAndSwap(p, n) {
			break
		}
	}
	if e.fail {
		return nil, errBroken
	}
	return core.Answers{core.Part(1, len(input))}, nil
}

func init() {
	core.Register("batch-echo", func(map[string]string) core.Puzzle { return echo{} })
	core.Register("batch-broken", func(map[string]string) core.Puzzle { return echo{fail: true} })
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name+".txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverSkipsMissingInputs(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "batch-echo", "abc")
	jobs, err := Discover(dir, []string{"batch-broken", "batch-echo"}, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "batch-echo", jobs[0].Puzzle)
}

func TestRunKeepsJobOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	var jobs []Job
	for i := 0; i < 12; i++ {
		name := "batch-echo"
		if i == 5 {
			name = "batch-broken"
		}
		jobs = append(jobs, Job{Puzzle: name, Input: writeInput(t, dir, string(rune('a'+i)), string(make([]byte, i)))})
	}
	peak.Store(0)
	results, err := Runner{Workers: 3}.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		if i == 5 {
			assert.ErrorIs(t, r.Err, errBroken)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, core.Answers{core.Part(1, i)}, r.Answers)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRunUnknownPuzzle(t *testing.T) {
	results, err := Runner{}.Run(context.Background(), []Job{{Puzzle: "batch-missing"}})
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, core.ErrUnknownPuzzle)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Runner{Workers: 2}.Run(ctx, []Job{{Puzzle: "batch-echo"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Job{Puzzle: "batch-echo", Input: filepath.Join(t.TempDir(), "none.txt")}.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	input, err := Job{Puzzle: "batch-echo"}.Load()
	require.NoError(t, err)
	assert.Empty(t, input)
}
