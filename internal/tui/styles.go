package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for prompts and listings.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Issue listing colors
	IssueNumber lipgloss.Color
	IssueTitle  lipgloss.Color
	IssueLabel  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	IssueNumber: lipgloss.Color("#D63031"), // Red
	IssueTitle:  lipgloss.Color("#74B9FF"), // Light blue
	IssueLabel:  lipgloss.Color("#DDDFFA"), // Pale lavender
}

// Styles contains the lipgloss styles used by the prompts.
type Styles struct {
	Prompt       lipgloss.Style
	Answer       lipgloss.Style
	Cursor       lipgloss.Style
	ItemNormal   lipgloss.Style
	ItemSelected lipgloss.Style
	Help         lipgloss.Style
	Placeholder  lipgloss.Style
}

// DefaultStyles returns the default prompt styles.
func DefaultStyles() Styles {
	return Styles{
		Prompt:       lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Answer:       lipgloss.NewStyle().Foreground(Colors.Success),
		Cursor:       lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		ItemNormal:   lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		ItemSelected: lipgloss.NewStyle().Foreground(Colors.TitleSelected),
		Help:         lipgloss.NewStyle().Foreground(Colors.Muted),
		Placeholder:  lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// IssueStyles colors the parts of a listed issue line.
type IssueStyles struct {
	renderer *lipgloss.Renderer
	Number   lipgloss.Style
	Title    lipgloss.Style
	Header   lipgloss.Style
}

// NewIssueStyles creates issue styles bound to r, so color output follows
// the capabilities of r's writer.
func NewIssueStyles(r *lipgloss.Renderer) IssueStyles {
	return IssueStyles{
		renderer: r,
		Number:   r.NewStyle().Foreground(Colors.IssueNumber),
		Title:    r.NewStyle().Foreground(Colors.IssueTitle),
		Header:   r.NewStyle().Bold(true),
	}
}

// Label returns the style for a tracker label color (hex, with or without '#').
// An empty color falls back to the listing's label color.
func (s IssueStyles) Label(hex string) lipgloss.Style {
	color := Colors.IssueLabel
	if hex = strings.TrimPrefix(hex, "#"); hex != "" {
		color = lipgloss.Color("#" + hex)
	}
	return s.renderer.NewStyle().Foreground(color)
}

// NewWarningStyle creates the style for warnings written through r.
func NewWarningStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Colors.Warning)
}
