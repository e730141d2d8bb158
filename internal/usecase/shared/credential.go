package shared

import (
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// RequireToken loads the settings and returns the stored token.
// Returns domain.ErrMissingCredential when no token is configured.
func RequireToken(store domain.SettingsStore) (string, error) {
	settings, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	if !settings.HasToken() {
		return "", domain.ErrMissingCredential
	}
	return settings.Token, nil
}
