package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel is a single-line text prompt with an optional default.
type InputModel struct {
	input        textinput.Model
	keys         KeyMap
	styles       Styles
	prompt       string
	defaultValue string
	submitted    bool
	cancelled    bool
}

// NewInputModel creates a text prompt. An empty submission yields defaultValue.
func NewInputModel(prompt, defaultValue string) *InputModel {
	styles := DefaultStyles()
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = defaultValue
	ti.PlaceholderStyle = styles.Placeholder
	ti.Focus()

	return &InputModel{
		input:        ti,
		keys:         InputKeyMap(),
		styles:       styles,
		prompt:       prompt,
		defaultValue: defaultValue,
	}
}

// Init implements tea.Model.
func (m *InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Escape), key.Matches(keyMsg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Enter):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *InputModel) View() string {
	label := m.styles.Prompt.Render(m.prompt + ":")
	if m.submitted {
		return fmt.Sprintf("%s %s\n", label, m.styles.Answer.Render(m.Value()))
	}
	if m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s %s\n", label, m.input.View())
}

// Value returns the entered text, or the default when nothing was typed.
func (m *InputModel) Value() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.defaultValue
}

// Submitted reports whether the user pressed enter.
func (m *InputModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user aborted the prompt.
func (m *InputModel) Cancelled() bool {
	return m.cancelled
}
