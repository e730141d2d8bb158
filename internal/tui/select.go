package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectModel is a single-choice list prompt.
type SelectModel struct {
	help      help.Model
	keys      KeyMap
	styles    Styles
	prompt    string
	options   []string
	cursor    int
	chosen    bool
	cancelled bool
}

// NewSelectModel creates a selection prompt over options.
func NewSelectModel(prompt string, options []string) *SelectModel {
	return &SelectModel{
		help:    help.New(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		prompt:  prompt,
		options: options,
	}
}

// Init implements tea.Model.
func (m *SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Escape), key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Enter):
		if len(m.options) == 0 {
			return m, nil
		}
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.Bottom):
		if len(m.options) > 0 {
			m.cursor = len(m.options) - 1
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *SelectModel) View() string {
	if m.chosen {
		return fmt.Sprintf("%s %s\n", m.styles.Prompt.Render(m.prompt+":"), m.styles.Answer.Render(m.options[m.cursor]))
	}
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.prompt + ":"))
	b.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.ItemSelected.Render(opt))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.ItemNormal.Render(opt))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	b.WriteString("\n")
	return b.String()
}

// Cursor returns the highlighted option index.
func (m *SelectModel) Cursor() int {
	return m.cursor
}

// Chosen reports whether the user confirmed a choice.
func (m *SelectModel) Chosen() bool {
	return m.chosen
}

// Cancelled reports whether the user aborted the prompt.
func (m *SelectModel) Cancelled() bool {
	return m.cancelled
}
