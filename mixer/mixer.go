// Package mixer implements the heavy churn workload for positional lists:
// every value, in its original order, is removed from its current position
// and reinserted a number of places away equal to its value, wrapping around.
package mixer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-poslist/poslist"
)

var (
	ErrNoZero      = errors.New("mixer: no zero value to take coordinates from")
	ErrBadLine     = errors.New("mixer: line is not an integer")
	ErrLostOrder   = errors.New("mixer: order missing from the list")
	ErrMoveRefused = errors.New("mixer: reinsertion refused")
)

// CoordinateOffsets are the positions after zero summed by Coordinates.
var CoordinateOffsets = []int{1000, 2000, 3000}

type Config struct {
	// DecryptionKey multiplies every value before mixing. Zero means 1.
	DecryptionKey int64
	// Rounds is the number of full mixing passes. Zero means 1.
	Rounds int
	// Verify checks the list invariants after every move.
	Verify bool
}

type Mixer struct {
	cfg    Config
	log    logger.Logger
	values []int64 // by original order, key applied
	orders *poslist.List[int]
}

// Load reads one signed integer per line. Blank lines are skipped.
func Load(r io.Reader) ([]int64, error) {
	var values []int64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadLine, line, text)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func New(cfg Config, log logger.Logger, values []int64) *Mixer {
	if cfg.DecryptionKey == 0 {
		cfg.DecryptionKey = 1
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = 1
	}

	m := &Mixer{
		cfg:    cfg,
		log:    log,
		values: make([]int64, len(values)),
		orders: poslist.New[int](poslist.WithCapacity(len(values))),
	}
	for order, v := range values {
		m.values[order] = v * cfg.DecryptionKey
		m.orders.Insert(order, order)
	}
	return m
}

// Mix runs the configured number of rounds.
func (m *Mixer) Mix() error {
	for round := 0; round < m.cfg.Rounds; round++ {
		if err := m.mixOnce(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		m.log.Debugf("mixed round %d of %d", round+1, m.cfg.Rounds)
	}
	m.log.Infof("mixed %d values, %d rounds", len(m.values), m.cfg.Rounds)
	return nil
}

func (m *Mixer) mixOnce() error {
	n := len(m.values)
	if n < 2 {
		return nil
	}
	// With one value lifted out the circle has n-1 gaps.
	gaps := int64(n - 1)

	for order, value := range m.values {
		old, ok := m.orders.Find(order)
		if !ok {
			return fmt.Errorf("%w: %d", ErrLostOrder, order)
		}
		m.orders.Remove(old)

		pos := (value + int64(old)) % gaps
		if pos < 0 {
			pos += gaps
		}
		if !m.orders.Insert(int(pos), order) {
			return fmt.Errorf("%w: order %d at %d", ErrMoveRefused, order, pos)
		}

		if m.cfg.Verify {
			if err := m.orders.Verify(); err != nil {
				return fmt.Errorf("after moving order %d from %d to %d: %w", order, old, pos, err)
			}
		}
	}
	return nil
}

// Values returns the values in their current arrangement.
func (m *Mixer) Values() []int64 {
	out := make([]int64, 0, len(m.values))
	for order := range m.orders.All() {
		out = append(out, m.values[order])
	}
	return out
}

// Coordinates sums the values found CoordinateOffsets places after the zero
// value, wrapping around.
func (m *Mixer) Coordinates() (int64, error) {
	zero := -1
	for order, v := range m.values {
		if v == 0 {
			zero = order
			break
		}
	}
	if zero < 0 {
		return 0, ErrNoZero
	}

	at, ok := m.orders.Find(zero)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrLostOrder, zero)
	}
	n := m.orders.Len()
	var sum int64
	for _, offset := range CoordinateOffsets {
		sum += m.values[m.orders.At((at+offset)%n)]
	}
	return sum, nil
}
