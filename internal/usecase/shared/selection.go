// Package shared provides helpers used by several use cases.
package shared

import (
	"context"
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// SelectIssue presents issues as a single-choice menu and returns the chosen one.
// Options are rendered in the given order so the chosen index maps straight back to issues.
func SelectIssue(ctx context.Context, p domain.Prompter, issues []domain.Issue, prompt string) (*domain.Issue, error) {
	if len(issues) == 0 {
		return nil, domain.ErrNoChoicesAvailable
	}

	options := make([]string, len(issues))
	for i, issue := range issues {
		options[i] = domain.FormatIssueLine(issue)
	}

	idx, err := p.Select(ctx, prompt, options)
	if err != nil {
		return nil, fmt.Errorf("select issue: %w", err)
	}
	if idx < 0 || idx >= len(issues) {
		return nil, fmt.Errorf("select issue: index %d of %d: %w", idx, len(issues), domain.ErrInvalidSelection)
	}
	return &issues[idx], nil
}

// PromptText asks for free text. Submitting nothing yields defaultValue when one is given,
// otherwise the entered text is returned as is, including the empty string.
func PromptText(ctx context.Context, p domain.Prompter, prompt, defaultValue string) (string, error) {
	text, err := p.Input(ctx, prompt, defaultValue)
	if err != nil {
		return "", fmt.Errorf("prompt %q: %w", prompt, err)
	}
	if text == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return text, nil
}
