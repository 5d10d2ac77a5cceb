package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

type Config struct {
	LogLevel string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"warn"`
	Seed     int64  `yaml:"seed" env:"OTHELLO_SEED" env-default:"0"`
	Board    Board  `yaml:"board"`
	Sides    Sides  `yaml:"sides"`
}

// Board holds the glyphs printed for each cell state.
type Board struct {
	DarkGlyph  string `yaml:"dark-glyph" env-default:"b"`
	LightGlyph string `yaml:"light-glyph" env-default:"w"`
	EmptyGlyph string `yaml:"empty-glyph" env-default:"-"`
}

// Sides holds the colour names shown to players.
type Sides struct {
	DarkName  string `yaml:"dark-name" env-default:"Black"`
	LightName string `yaml:"light-name" env-default:"White"`
}

// MustLoad - load all configurations from the config.yml file, falling back to defaults when it is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every invalid setting at once.
func (that *Config) Validate() error {
	var errs error

	if !logLevels[that.LogLevel] {
		errs = multierror.Append(errs, fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, that.LogLevel))
	}

	glyphs := []struct {
		key   string
		value string
	}{
		{"board.dark-glyph", that.Board.DarkGlyph},
		{"board.light-glyph", that.Board.LightGlyph},
		{"board.empty-glyph", that.Board.EmptyGlyph},
	}

	seen := make(map[string]string, len(glyphs))
	for _, glyph := range glyphs {
		if glyph.value == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, glyph.key))
			continue
		}

		if other, ok := seen[glyph.value]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s duplicates %s", ErrInvalidConfig, glyph.key, other))
			continue
		}
		seen[glyph.value] = glyph.key
	}

	if that.Sides.DarkName == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: sides.dark-name is empty", ErrInvalidConfig))
	}

	if that.Sides.LightName == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: sides.light-name is empty", ErrInvalidConfig))
	}

	return errs
}
