package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// ShowTokenInput contains the parameters for showing the token.
type ShowTokenInput struct{}

// ShowTokenOutput describes the stored token without revealing it.
type ShowTokenOutput struct {
	Path   string // Settings file path
	Masked string // Display-safe token, empty when unset
	Set    bool   // Whether a token is configured
}

// ShowToken is the use case for displaying the configured token.
type ShowToken struct {
	settings domain.SettingsStore
}

// NewShowToken creates a new ShowToken use case.
func NewShowToken(settings domain.SettingsStore) *ShowToken {
	return &ShowToken{settings: settings}
}

// Execute reports whether a token is set and its masked form.
func (uc *ShowToken) Execute(_ context.Context, _ ShowTokenInput) (*ShowTokenOutput, error) {
	settings, err := uc.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	out := &ShowTokenOutput{Path: uc.settings.Path()}
	if settings.HasToken() {
		out.Set = true
		out.Masked = domain.MaskToken(settings.Token)
	}
	return out, nil
}
