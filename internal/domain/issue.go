package domain

import (
	"fmt"
	"strings"
)

// Issue represents an open issue fetched from the tracker.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Title  string  `json:"title" yaml:"title"`
	URL    string  `json:"url" yaml:"url"`
	Labels []Label `json:"labels" yaml:"labels"`
	Number int     `json:"number" yaml:"number"`
}

// Label is a named tag on an issue. Labels are compared by name only.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"` // Hex color without '#', may be empty
}

// HasLabel reports whether the issue carries a label with the given name.
func (i *Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// LabelNames returns the names of the issue's labels in order.
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}

// FormatIssueLine renders an issue as a single line.
// Format: #<number> <title> [<label1>] [<label2>] ...
func FormatIssueLine(issue Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", issue.Number, issue.Title)
	for _, l := range issue.Labels {
		fmt.Fprintf(&b, " [%s]", l.Name)
	}
	return b.String()
}
