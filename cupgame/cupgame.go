// Package cupgame plays the crab cup shuffle on a positional list. The cup
// being moved from is always kept at the front of the list, so a move is a
// handful of positional removes and inserts plus one value lookup.
package cupgame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-poslist/poslist"
)

const (
	MinCups = 5
	// pickup is the number of cups lifted out on each move.
	pickup      = 3
	labelsShown = 8
)

var (
	ErrBadLabel   = errors.New("cupgame: labels must be a permutation of 1..n")
	ErrTooFewCups = errors.New("cupgame: too few cups")
)

type Game struct {
	log   logger.Logger
	cups  *poslist.List[int]
	max   int
	moves int
}

// New lays out the labelled cups in order and pads the circle with the
// labels len(labels)+1 through cups.
func New(labels string, cups int, log logger.Logger) (*Game, error) {
	n := len(labels)
	if cups < n || cups < MinCups {
		return nil, fmt.Errorf("%w: %d cups for %d labels, need at least %d", ErrTooFewCups, cups, n, max(n, MinCups))
	}

	g := &Game{
		log:  log,
		cups: poslist.New[int](poslist.WithCapacity(cups)),
		max:  cups,
	}
	for i, r := range labels {
		label := int(r - '0')
		if label < 1 || label > n {
			return nil, fmt.Errorf("%w: %q at %d", ErrBadLabel, r, i)
		}
		if !g.cups.Append(label) {
			return nil, fmt.Errorf("%w: %d repeated", ErrBadLabel, label)
		}
	}
	for label := n + 1; label <= cups; label++ {
		g.cups.Append(label)
	}
	return g, nil
}

// Play makes the given number of moves.
func (g *Game) Play(moves int) {
	var picked [pickup]int
	for range moves {
		current := g.cups.At(0)
		for i := range picked {
			picked[i], _ = g.cups.Remove(1)
		}

		dest := g.below(current)
		for dest == picked[0] || dest == picked[1] || dest == picked[2] {
			dest = g.below(dest)
		}
		at, _ := g.cups.Find(dest)
		for i, label := range picked {
			g.cups.Insert(at+1+i, label)
		}

		// The next current cup moves to the front.
		g.cups.Remove(0)
		g.cups.Append(current)
	}
	g.moves += moves
	g.log.Debugf("played %d moves, %d in total", moves, g.moves)
}

func (g *Game) below(label int) int {
	if label == 1 {
		return g.max
	}
	return label - 1
}

// after returns the labels of the count cups clockwise from cup 1.
func (g *Game) after(count int) []int {
	n := g.cups.Len()
	one, _ := g.cups.Find(1)
	out := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, g.cups.At((one+i)%n))
	}
	return out
}

// Labels returns, as digits, up to eight cup labels following cup 1.
func (g *Game) Labels() string {
	var b strings.Builder
	for _, label := range g.after(min(labelsShown, g.cups.Len()-1)) {
		fmt.Fprint(&b, label)
	}
	return b.String()
}

// Product multiplies the labels of the two cups following cup 1.
func (g *Game) Product() uint64 {
	next := g.after(2)
	return uint64(next[0]) * uint64(next[1])
}

// Cups returns the labels in list order, current cup first.
func (g *Game) Cups() []int {
	return g.cups.Values()
}
