package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
)

// SetTokenInput contains the token to store.
type SetTokenInput struct {
	Token string
}

// SetTokenOutput contains the result of storing a token.
type SetTokenOutput struct {
	Path   string // Settings file written
	Masked string // Display-safe token
}

// SetToken is the use case for storing the tracker token.
type SetToken struct {
	settings domain.SettingsStore
}

// NewSetToken creates a new SetToken use case.
func NewSetToken(settings domain.SettingsStore) *SetToken {
	return &SetToken{settings: settings}
}

// Execute trims and saves the token. Other settings are preserved.
func (uc *SetToken) Execute(ctx context.Context, in SetTokenInput) (*SetTokenOutput, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return nil, domain.ErrEmptyToken
	}

	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings.Token = token
	if err := uc.settings.Save(settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	masked := domain.MaskToken(token)
	clog.FromContext(ctx).With(domain.LogCategoryKey, "config").
		Infof("stored token %s in %s", masked, uc.settings.Path())

	return &SetTokenOutput{
		Path:   uc.settings.Path(),
		Masked: masked,
	}, nil
}
