package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a config file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the defaults reproduce the classic console output
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, int64(0), conf.Seed)
		assert.Equal(t, Board{DarkGlyph: "b", LightGlyph: "w", EmptyGlyph: "-"}, conf.Board)
		assert.Equal(t, Sides{DarkName: "Black", LightName: "White"}, conf.Sides)
	})

	t.Run("Values from the config file", func(t *testing.T) {
		// Given: a config file overriding some keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nseed: 42\nboard:\n  dark-glyph: \"●\"\n  light-glyph: \"○\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, int64(42), conf.Seed)
		assert.Equal(t, "●", conf.Board.DarkGlyph)
		assert.Equal(t, "○", conf.Board.LightGlyph)
		assert.Equal(t, "-", conf.Board.EmptyGlyph)
		assert.Equal(t, "White", conf.Sides.LightName)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: the seed set in the environment
		t.Setenv("OTHELLO_SEED", "7")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the seed comes from the environment
		require.NoError(t, err)
		assert.Equal(t, int64(7), conf.Seed)
	})

	t.Run("Invalid file values are rejected", func(t *testing.T) {
		// Given: a config file with an unknown log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: loud\n"), 0o600))

		// When: loading the config
		_, err := Load(path)

		// Then: ErrInvalidConfig is reported
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	// Given: a config with several problems
	conf := &Config{
		LogLevel: "verbose",
		Board:    Board{DarkGlyph: "x", LightGlyph: "x", EmptyGlyph: ""},
		Sides:    Sides{DarkName: "Black", LightName: ""},
	}

	// When: validating it
	err := conf.Validate()

	// Then: every problem is reported
	require.ErrorIs(t, err, ErrInvalidConfig)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
}
