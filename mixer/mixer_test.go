package mixer

import (
	"strings"
	"testing"

	"github.com/forestrie/go-poslist/poslisttesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `1
2
-3
3
-2
0
4
`

func TestLoad(t *testing.T) {
	values, err := Load(strings.NewReader(example + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, -3, 3, -2, 0, 4}, values)

	_, err = Load(strings.NewReader("1\nx\n"))
	require.ErrorIs(t, err, ErrBadLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestMixExample(t *testing.T) {
	tc := poslisttesting.NewTestContext(t, poslisttesting.TestConfig{TestLabelPrefix: "TestMixExample"})
	values, err := Load(strings.NewReader(example))
	require.NoError(t, err)

	m := New(Config{Verify: true}, tc.Log, values)
	require.NoError(t, m.Mix())

	// The arrangement is a circle: compare from the zero onward.
	got := m.Values()
	assert.Equal(t, rotateToZero([]int64{1, 2, -3, 4, 0, 3, -2}), rotateToZero(got))

	sum, err := m.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum)
}

func TestMixWithKey(t *testing.T) {
	tc := poslisttesting.NewTestContext(t, poslisttesting.TestConfig{TestLabelPrefix: "TestMixWithKey"})
	values, err := Load(strings.NewReader(example))
	require.NoError(t, err)

	m := New(Config{DecryptionKey: 811589153, Rounds: 10, Verify: true}, tc.Log, values)
	require.NoError(t, m.Mix())

	sum, err := m.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, int64(1623178306), sum)
}

// The list based mix agrees with a direct slice simulation.
func TestMixMatchesSliceSimulation(t *testing.T) {
	tc := poslisttesting.NewTestContext(t, poslisttesting.TestConfig{Seed: 42})
	values := make([]int64, 300)
	for i := range values {
		values[i] = int64(tc.Intn(20001) - 10000)
	}
	values[tc.Intn(len(values))] = 0

	m := New(Config{Rounds: 3}, tc.Log, values)
	require.NoError(t, m.Mix())

	want := simulate(values, 3)
	assert.Equal(t, rotateToZero(want), rotateToZero(m.Values()))
}

func TestMixTinyInputs(t *testing.T) {
	tc := poslisttesting.NewTestContext(t, poslisttesting.TestConfig{})

	m := New(Config{}, tc.Log, nil)
	require.NoError(t, m.Mix())
	_, err := m.Coordinates()
	require.ErrorIs(t, err, ErrNoZero)

	m = New(Config{Rounds: 2}, tc.Log, []int64{0})
	require.NoError(t, m.Mix())
	sum, err := m.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
}

func simulate(values []int64, rounds int) []int64 {
	type entry struct {
		order int
		value int64
	}
	n := len(values)
	ring := make([]entry, n)
	for i, v := range values {
		ring[i] = entry{i, v}
	}
	for range rounds {
		for order := 0; order < n; order++ {
			old := 0
			for ring[old].order != order {
				old++
			}
			e := ring[old]
			ring = append(ring[:old], ring[old+1:]...)
			pos := (e.value + int64(old)) % int64(n-1)
			if pos < 0 {
				pos += int64(n - 1)
			}
			ring = append(ring[:pos], append([]entry{e}, ring[pos:]...)...)
		}
	}
	out := make([]int64, n)
	for i, e := range ring {
		out[i] = e.value
	}
	return out
}

func rotateToZero(values []int64) []int64 {
	for i, v := range values {
		if v == 0 {
			return append(append([]int64{}, values[i:]...), values[:i]...)
		}
	}
	return values
}
