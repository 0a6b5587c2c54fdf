package steps

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronal/internal/core"
)

const exampleInput = `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
`

func exampleGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Parse([]byte(exampleInput))
	require.NoError(t, err)
	return g
}

func TestParseBuildsBothAdjacencies(t *testing.T) {
	g := exampleGraph(t)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Steps())
	assert.Equal(t, []string{"C"}, g.Roots())

	pre, err := g.Prerequisites("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "F"}, pre)

	deps, err := g.Dependents("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, deps)
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse([]byte("Step C must be finished before step A can begin.\nStep c must go first.\n"))
	require.ErrorIs(t, err, ErrMalformedStep)
	var pe *core.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestUnknownStepLookups(t *testing.T) {
	g := exampleGraph(t)
	_, err := g.Prerequisites("Z")
	assert.ErrorIs(t, err, ErrUnknownStep)
	_, err = g.Dependents("Z")
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestSerialOrderExample(t *testing.T) {
	order, err := SerialOrder(exampleGraph(t))
	require.NoError(t, err)
	assert.Equal(t, "CABDFE", order)
}

func TestSerialOrderPrefersLowestEligible(t *testing.T) {
	g := NewGraph()
	g.AddEdge("B", "A")
	g.AddStep("C")
	g.AddEdge("C", "D")
	order, err := SerialOrder(g)
	require.NoError(t, err)
	assert.Equal(t, "BACD", order)
}

func TestSerialOrderDetectsCycle(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "B")
	_, err := SerialOrder(g)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestTimedExecutionExample(t *testing.T) {
	total, err := TimedExecution(exampleGraph(t), Config{Workers: 2, BaseDuration: 0})
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	total, err = TimedExecution(exampleGraph(t), Config{Workers: 1, BaseDuration: 0})
	require.NoError(t, err)
	assert.Equal(t, 21, total, "one worker takes the sum of all durations")
}

func TestTimedExecutionDetectsStall(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	_, err := TimedExecution(g, DefaultConfig())
	assert.ErrorIs(t, err, ErrStalled)
}

func TestNoStepIsHeldByTwoWorkers(t *testing.T) {
	g := randomDAG(core.NewRNG(42), 26, 60)
	s := NewScheduler(g, Config{Workers: 4, BaseDuration: 3})
	check := func(int) error {
		held := map[string]bool{}
		for _, w := range s.Workers() {
			if w.Idle() {
				continue
			}
			if held[w.Step] {
				return fmt.Errorf("step %s held twice", w.Step)
			}
			held[w.Step] = true
		}
		return nil
	}
	_, err := core.NewDriver(s, core.WithObserver(check)).Run()
	require.NoError(t, err)
	assert.True(t, s.Done())
}

func TestRandomGraphsRespectDependencies(t *testing.T) {
	rng := core.NewRNG(7)
	for i := 0; i < 20; i++ {
		g := randomDAG(rng, 2+rng.IntN(25), rng.IntN(80))
		order, err := SerialOrder(g)
		require.NoError(t, err)
		require.Len(t, order, g.Len())

		for _, id := range g.Steps() {
			deps, err := g.Dependents(id)
			require.NoError(t, err)
			for _, d := range deps {
				assert.Less(t, strings.Index(order, id), strings.Index(order, d))
			}
		}

		again, err := SerialOrder(g)
		require.NoError(t, err)
		assert.Equal(t, order, again)
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration("A", 60)
	require.NoError(t, err)
	assert.Equal(t, 61, d)
	d, err = Duration("Z", 0)
	require.NoError(t, err)
	assert.Equal(t, 26, d)
	_, err = Duration("AB", 0)
	assert.ErrorIs(t, err, ErrBadStepID)
}

func TestPuzzleIsDeterministic(t *testing.T) {
	p := NewPuzzle(FromMap(map[string]string{"workers": "2", "base": "0"}))
	first, err := p.Solve([]byte(exampleInput))
	require.NoError(t, err)
	second, err := p.Solve([]byte(exampleInput))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, core.Answers{core.Part(1, "CABDFE"), core.Part(2, 15)}, first)
}

// randomDAG draws edges only from lower to higher letters, so the result
// is always acyclic.
func randomDAG(rng *core.RNG, n, edges int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		g.AddStep(string(rune('A' + i)))
	}
	for i := 0; i < edges; i++ {
		a, b := rng.IntN(n), rng.IntN(n)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		g.AddEdge(string(rune('A'+a)), string(rune('A'+b)))
	}
	return g
}
