package marbles

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"chronal/internal/core"
)

// ErrInvalidGame is returned for a game without players or with a negative
// last marble.
var ErrInvalidGame = errors.New("marbles: invalid game parameters")

const (
	scoringMultiple = 23
	scoringBack     = 7
	placeForward    = 2
)

// Game is the marble circle. Marble 0 starts the ring and player 1 places
// marble 1.
type Game struct {
	players int
	last    int

	circle *Ring
	scores []int // indexed by player, 1-based

	player int
	next   int
}

// NewGame prepares a game for players players ending with marble last.
func NewGame(players, last int) (*Game, error) {
	if players < 1 || last < 0 {
		return nil, fmt.Errorf("%w: players=%d last=%d", ErrInvalidGame, players, last)
	}
	return &Game{
		players: players,
		last:    last,
		circle:  NewRing(0),
		scores:  make([]int, players+1),
		player:  1,
		next:    1,
	}, nil
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "marbles" }

// Done reports whether the last marble has been placed.
func (g *Game) Done() bool { return g.next > g.last }

// Step places the next marble for the current player and passes the turn.
func (g *Game) Step() error {
	k := g.next
	if k%scoringMultiple == 0 {
		g.circle.Rotate(-scoringBack)
		removed, _ := g.circle.PopFront()
		g.scores[g.player] += k + removed
	} else {
		g.circle.Rotate(placeForward)
		g.circle.PushFront(k)
	}

	g.next++
	g.player = g.player%g.players + 1
	return nil
}

// Current returns the current marble.
func (g *Game) Current() int { return g.circle.Front() }

// Circle returns the marbles clockwise from the current one.
func (g *Game) Circle() []int { return g.circle.Values() }

// Scores returns a copy of the per-player scores, indexed from 1.
func (g *Game) Scores() []int { return slices.Clone(g.scores) }

// HighScore returns the best score so far.
func (g *Game) HighScore() int { return slices.Max(g.scores) }

// Play runs a full game and returns the winning score.
func Play(players, last int, opts ...core.DriverOption) (int, error) {
	g, err := NewGame(players, last)
	if err != nil {
		return 0, err
	}
	if _, err := core.NewDriver(g, opts...).Run(); err != nil {
		return 0, err
	}
	return g.HighScore(), nil
}
