package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/othello/testing/suite"
)

func TestRunApp(t *testing.T) {
	t.Run("Player quits after a game", func(t *testing.T) {
		// Given: a seeded computer game followed by a refusal to replay
		st := suite.New(t, "1", "n")
		st.Config.Seed = 5

		// When: the app runs
		err := RunApp(st.Logger, st.Config, st.Input, st.Output)

		// Then: the session ends with the farewell
		require.NoError(t, err)
		assert.Contains(t, st.Output.String(), "The game has ended")
		assert.Contains(t, st.Output.String(), "Thanks for playing!")
	})

	t.Run("Closed input is a clean shutdown", func(t *testing.T) {
		// Given: no input at all
		st := suite.New(t)

		// When: the app runs
		err := RunApp(st.Logger, st.Config, st.Input, st.Output)

		// Then: no error is reported
		require.NoError(t, err)
		assert.NotContains(t, st.Output.String(), "Thanks for playing!")
	})
}
