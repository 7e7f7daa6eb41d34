package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/wavefront"
)

const hillsInput = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

const valleyInput = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

const valvesInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
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

func TestSolve(t *testing.T) {
	cases := []struct {
		puzzle string
		input  string
		want   string
	}{
		{"hills", hillsInput, "31\n29\n"},
		{"valley", valleyInput, "18\n54\n"},
		{"valves", valvesInput, "1651\n1707\n"},
	}
	for _, tc := range cases {
		t.Run(tc.puzzle, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			var out bytes.Buffer
			err := solve(tc.puzzle, strings.NewReader(tc.input), &out, config.Default(), logger)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.InfoLevel, entry.Level)
			assert.Equal(t, tc.puzzle, entry.Data["puzzle"])
		})
	}
}

func TestSolveUnknownPuzzle(t *testing.T) {
	logger, _ := test.NewNullLogger()
	err := solve("lava", strings.NewReader(""), io.Discard, config.Default(), logger)
	assert.ErrorIs(t, err, errUnknownPuzzle)
}

func TestSolveLimits(t *testing.T) {
	logger, _ := test.NewNullLogger()

	cfg := config.Default()
	cfg.Search.MaxDistance = 5
	err := solve("hills", strings.NewReader(hillsInput), io.Discard, cfg, logger)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	cfg = config.Default()
	cfg.Search.MaxTime = 5
	err = solve("valley", strings.NewReader(valleyInput), io.Discard, cfg, logger)
	assert.ErrorIs(t, err, wavefront.ErrTimeLimit)
}

func TestOpenInputPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(hillsInput), 0o600))

	in, err := openInput(path)
	require.NoError(t, err)
	defer in.Close()
	got, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, hillsInput, string(got))
}

func TestOpenInputZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.txt.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	require.NoError(t, err)
	_, err = enc.Write([]byte(valvesInput))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	in, err := openInput(path)
	require.NoError(t, err)
	defer in.Close()

	var out bytes.Buffer
	logger, _ := test.NewNullLogger()
	require.NoError(t, solve("valves", in, &out, config.Default(), logger))
	assert.Equal(t, "1651\n1707\n", out.String())
}

func TestOpenInputMissing(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "absent.zst"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	setupLogging(cfg)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	setupLogging(config.Default())
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestSolveHillsRouteOnlyAtDebug(t *testing.T) {
	for _, level := range []logrus.Level{logrus.InfoLevel, logrus.DebugLevel} {
		t.Run(level.String(), func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			logger.SetLevel(level)
			require.NoError(t, solve("hills", strings.NewReader(hillsInput), io.Discard, config.Default(), logger))

			var routes int
			for _, e := range hook.AllEntries() {
				if strings.HasPrefix(e.Message, "climb route:") {
					routes++
					assert.Contains(t, e.Message, "E")
				}
			}
			if level == logrus.DebugLevel {
				assert.Equal(t, 1, routes)
			} else {
				assert.Zero(t, routes)
			}
		})
	}
}

func TestSolveHillsReportsBasins(t *testing.T) {
	logger, hook := test.NewNullLogger()
	require.NoError(t, solve("hills", strings.NewReader(hillsInput), io.Discard, config.Default(), logger))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 1, entry.Data["basins"])
}
