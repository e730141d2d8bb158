package cli

import (
	"testing"

	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_SetToken(t *testing.T) {
	// Setup
	c, deps := newTestContainer()
	deps.settings.Settings.Token = ""

	// Execute
	stdout, _, err := runCommand(t, c, "config", "--token", "ghp_abcdef")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ghp_abcdef", deps.settings.Settings.Token)
	assert.Contains(t, stdout, "Token saved: ghp_****")
	assert.Contains(t, stdout, "Config file: "+deps.settings.FilePath)
	assert.NotContains(t, stdout, "ghp_abcdef", "token must not be echoed")
}

func TestConfigCommand_EmptyToken(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := runCommand(t, c, "config", "--token", "")

	assert.ErrorIs(t, err, domain.ErrEmptyToken)
	assert.Equal(t, "ghp_secret", deps.settings.Settings.Token)
}

func TestConfigCommand_Show(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		c, _ := newTestContainer()

		stdout, _, err := runCommand(t, c, "config")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Token already set: ghp_****")
		assert.NotContains(t, stdout, "ghp_secret")
	})

	t.Run("unset", func(t *testing.T) {
		c, deps := newTestContainer()
		deps.settings.Settings.Token = ""

		stdout, _, err := runCommand(t, c, "config")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Token not set")
		assert.Zero(t, deps.settings.SaveCount)
	})
}
