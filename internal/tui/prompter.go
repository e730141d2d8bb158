// Package tui provides the interactive terminal prompts.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/git-issue-flow/internal/domain"
)

// Ensure Prompter implements domain.Prompter.
var _ domain.Prompter = (*Prompter)(nil)

// Prompter asks questions on the terminal with bubbletea programs.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a prompter. A nil in reads from the controlling terminal;
// prompts are drawn on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Select shows options and returns the index the user picked.
func (p *Prompter) Select(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, domain.ErrNoChoicesAvailable
	}

	final, err := p.run(ctx, NewSelectModel(prompt, options))
	if err != nil {
		return 0, err
	}
	m, ok := final.(*SelectModel)
	if !ok || !m.Chosen() {
		return 0, domain.ErrPromptCancelled
	}
	return m.Cursor(), nil
}

// Input asks for a line of text. An empty answer yields defaultValue.
func (p *Prompter) Input(ctx context.Context, prompt, defaultValue string) (string, error) {
	final, err := p.run(ctx, NewInputModel(prompt, defaultValue))
	if err != nil {
		return "", err
	}
	m, ok := final.(*InputModel)
	if !ok || !m.Submitted() {
		return "", domain.ErrPromptCancelled
	}
	return m.Value(), nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPromptCancelled, ctx.Err())
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
