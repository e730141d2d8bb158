package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/tui"
	"gopkg.in/yaml.v3"
)

// listFormat selects how issues are rendered.
type listFormat string

const (
	formatText  listFormat = "text"
	formatTable listFormat = "table"
	formatJSON  listFormat = "json"
	formatYAML  listFormat = "yaml"
)

// parseListFormat validates a --format value.
func parseListFormat(s string) (listFormat, error) {
	switch f := listFormat(strings.ToLower(s)); f {
	case formatText, formatTable, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, table, json or yaml)", s)
	}
}

// renderIssues writes issues in the given format.
// Structured formats always emit a (possibly empty) list.
func renderIssues(w io.Writer, format listFormat, id domain.RepositoryIdentity, issues []domain.Issue) error {
	switch format {
	case formatJSON:
		if issues == nil {
			issues = []domain.Issue{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(issues)
	case formatYAML:
		if issues == nil {
			issues = []domain.Issue{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(issues); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, "No open issues found")
		return nil
	}

	styles := tui.NewIssueStyles(lipgloss.NewRenderer(w))
	_, _ = fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("Open issues in %s - #%d", id.FullName(), len(issues))))

	if format == formatTable {
		return renderIssueTable(w, issues)
	}
	for _, issue := range issues {
		_, _ = fmt.Fprintln(w, renderIssueLine(styles, issue))
	}
	return nil
}

// renderIssueLine renders #<number> <title> [label] ... with colors.
func renderIssueLine(styles tui.IssueStyles, issue domain.Issue) string {
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(styles.Number.Render(fmt.Sprintf("%d", issue.Number)))
	b.WriteString(" ")
	b.WriteString(styles.Title.Render(issue.Title))
	for _, label := range issue.Labels {
		b.WriteString(" ")
		b.WriteString(styles.Label(label.Color).Render("[" + label.Name + "]"))
	}
	return b.String()
}

// renderIssueTable renders issues as a markdown-style table.
func renderIssueTable(w io.Writer, issues []domain.Issue) error {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Issue", "Title", "Labels", "URL"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)

	for _, issue := range issues {
		if err := table.Append([]string{
			fmt.Sprintf("#%d", issue.Number),
			issue.Title,
			strings.Join(issue.LabelNames(), ", "),
			issue.URL,
		}); err != nil {
			return fmt.Errorf("append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
