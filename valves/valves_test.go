package valves_test

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/apsp"
	"github.com/katalvlaran/gridpath/valves"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func parseSample(t *testing.T, opts ...valves.Option) *valves.Network {
	t.Helper()
	n, err := valves.Parse(strings.NewReader(sample), opts...)
	require.NoError(t, err)
	return n
}

// replay walks order from start and returns the pressure it releases.
func replay(t *testing.T, tbl *apsp.Table[string], n *valves.Network, start string, minutes int, order []string) int {
	t.Helper()
	at, left, total := start, minutes, 0
	for _, name := range order {
		d, err := tbl.Distance(at, name)
		require.NoError(t, err)
		left -= int(d) + 1
		require.Positive(t, left, "opening %s too late", name)
		v, ok := n.Valve(name)
		require.True(t, ok)
		total += v.Rate * left
		at = name
	}
	return total
}

func TestParse(t *testing.T) {
	n := parseSample(t)
	assert.Equal(t, 10, n.Len())
	assert.Equal(t, "AA", n.Order()[0])

	aa, ok := n.Valve("AA")
	require.True(t, ok)
	assert.Equal(t, 0, aa.Rate)
	assert.Equal(t, []string{"DD", "II", "BB"}, aa.Tunnels)

	hh, ok := n.Valve("HH")
	require.True(t, ok)
	assert.Equal(t, 22, hh.Rate)
	assert.Equal(t, []string{"GG"}, hh.Tunnels)

	_, ok = n.Valve("ZZ")
	assert.False(t, ok)
	assert.Equal(t, []string{"DD", "II", "BB"}, n.Graph().Neighbors("AA"))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"garbage", "Valve AA is broken\n", valves.ErrMalformed},
		{"no tunnels", "Valve AA has flow rate=3; tunnels lead to valves \n", valves.ErrMalformed},
		{"negative rate", "Valve AA has flow rate=-3; tunnel leads to valve AA\n", valves.ErrMalformed},
		{"unknown tunnel", "Valve AA has flow rate=3; tunnel leads to valve BB\n", valves.ErrUnknownValve},
		{"duplicate", "Valve AA has flow rate=3; tunnel leads to valve AA\nValve AA has flow rate=1; tunnel leads to valve AA\n", valves.ErrDuplicateValve},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := valves.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInteresting(t *testing.T) {
	n := parseSample(t)
	keys, err := n.Interesting("AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, keys)

	// A non-zero start is listed once.
	keys, err = n.Interesting("DD")
	require.NoError(t, err)
	assert.Equal(t, []string{"DD", "BB", "CC", "EE", "HH", "JJ"}, keys)

	_, err = n.Interesting("ZZ")
	assert.ErrorIs(t, err, valves.ErrUnknownValve)
}

func TestDistances(t *testing.T) {
	n := parseSample(t)
	tbl, err := n.Distances("AA")
	require.NoError(t, err)
	require.NoError(t, tbl.CheckSymmetric())

	want := map[string]int64{"AA": 0, "BB": 1, "CC": 2, "DD": 1, "EE": 2, "HH": 5, "JJ": 2}
	for name, d := range want {
		got, err := tbl.Distance("AA", name)
		require.NoError(t, err)
		assert.Equal(t, d, got, name)
	}
	d, err := tbl.Distance("JJ", "HH")
	require.NoError(t, err)
	assert.EqualValues(t, 7, d)

	// Repeated builds agree entry for entry.
	again, err := n.Distances("AA")
	require.NoError(t, err)
	for i := 0; i < tbl.Len(); i++ {
		for j := 0; j < tbl.Len(); j++ {
			assert.Equal(t, tbl.At(i, j), again.At(i, j))
		}
	}
}

func TestMaxRelease(t *testing.T) {
	n := parseSample(t)
	plan, err := n.MaxRelease("AA", 30)
	require.NoError(t, err)
	assert.Equal(t, 1651, plan.Released)

	tbl, err := n.Distances("AA")
	require.NoError(t, err)
	assert.Equal(t, plan.Released, replay(t, tbl, n, "AA", 30, plan.Order))
}

func TestMaxReleaseEdges(t *testing.T) {
	n := parseSample(t)

	plan, err := n.MaxRelease("AA", 0)
	require.NoError(t, err)
	assert.Zero(t, plan.Released)
	assert.Empty(t, plan.Order)

	// Two minutes reach DD and open it with nothing left to release.
	plan, err = n.MaxRelease("AA", 2)
	require.NoError(t, err)
	assert.Zero(t, plan.Released)

	plan, err = n.MaxRelease("AA", 3)
	require.NoError(t, err)
	assert.Equal(t, 20, plan.Released)
	assert.Equal(t, []string{"DD"}, plan.Order)

	_, err = n.MaxRelease("AA", -1)
	assert.ErrorIs(t, err, valves.ErrBadMinutes)
	_, err = n.MaxRelease("ZZ", 30)
	assert.ErrorIs(t, err, valves.ErrUnknownValve)
}

func TestValuableStart(t *testing.T) {
	n, err := valves.Parse(strings.NewReader(
		"Valve AA has flow rate=5; tunnel leads to valve BB\n" +
			"Valve BB has flow rate=1; tunnel leads to valve AA\n"))
	require.NoError(t, err)

	plan, err := n.MaxRelease("AA", 3)
	require.NoError(t, err)
	assert.Equal(t, 10, plan.Released)
	assert.Equal(t, []string{"AA"}, plan.Order)

	pair, err := n.MaxReleasePair("AA", 3)
	require.NoError(t, err)
	assert.Equal(t, 11, pair)
}

func TestUnreachableValve(t *testing.T) {
	n, err := valves.Parse(strings.NewReader(
		"Valve AA has flow rate=0; tunnel leads to valve BB\n" +
			"Valve BB has flow rate=4; tunnel leads to valve AA\n" +
			"Valve CC has flow rate=50; tunnel leads to valve CC\n"))
	require.NoError(t, err)

	plan, err := n.MaxRelease("AA", 5)
	require.NoError(t, err)
	assert.Equal(t, 12, plan.Released)
	assert.Equal(t, []string{"BB"}, plan.Order)
}

func TestMaxReleasePair(t *testing.T) {
	n := parseSample(t)
	pair, err := n.MaxReleasePair("AA", 26)
	require.NoError(t, err)
	assert.Equal(t, 1707, pair)

	alone, err := n.MaxRelease("AA", 26)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pair, alone.Released)

	_, err = n.MaxReleasePair("AA", -5)
	assert.ErrorIs(t, err, valves.ErrBadMinutes)
}

func TestLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	n := parseSample(t, valves.WithLogger(logger))

	_, err := n.MaxReleasePair("AA", 26)
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "valves: pair plan found", entry.Message)
	assert.Equal(t, 1707, entry.Data["released"])
}
