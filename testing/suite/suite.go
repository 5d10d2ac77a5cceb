package suite

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/othello/internal/config"
)

// Suite is a scripted console session: Input replays the given lines and Output captures everything printed.
type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config

	Input  *strings.Reader
	Output *bytes.Buffer
}

func New(t *testing.T, script ...string) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// no config file in a fresh temp dir, so only defaults apply
	conf, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("could not load default config: %v", err)
	}

	return &Suite{
		T:      t,
		Logger: logger,
		Config: conf,

		Input:  strings.NewReader(strings.Join(script, "\n") + "\n"),
		Output: &bytes.Buffer{},
	}
}
