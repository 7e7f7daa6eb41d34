package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, logrus.InfoLevel, c.Level())
	assert.Equal(t, 3, c.Valley.Legs)
	assert.Equal(t, "AA", c.Valves.Start)
}

func TestLoadMergesOverDefault(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
valves:
  minutes: 20
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, 20, c.Valves.Minutes)
	assert.Equal(t, 26, c.Valves.PairMinutes)
	assert.Equal(t, 3, c.Valley.Legs)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"bad level", "log: {level: loud}\n", config.ErrInvalid},
		{"bad format", "log: {format: xml}\n", config.ErrInvalid},
		{"no legs", "valley: {legs: 0}\n", config.ErrInvalid},
		{"empty start", "valves: {start: \"\"}\n", config.ErrInvalid},
		{"negative minutes", "valves: {pair_minutes: -1}\n", config.ErrInvalid},
		{"negative limit", "search: {max_time: -4}\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := config.Load(writeFile(t, "valley: [legs\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFields(t *testing.T) {
	f := config.Default().Fields()
	assert.Equal(t, "AA", f["valves_start"])
	assert.Equal(t, 100000, f["search_max_time"])
	assert.Len(t, f, 8)
}
