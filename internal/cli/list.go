package cli

import (
	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open issues",
		Long: `List the open issues of the repository's tracker.

Formats:
  text   #<number> <title> [label] ... (colored on a terminal)
  table  markdown-style table
  json   array of issues
  yaml   list of issues

Examples:
  git-issue-flow list
  git-issue-flow list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listFormat, err := parseListFormat(format)
			if err != nil {
				return err
			}

			out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{})
			if err != nil {
				return err
			}
			return renderIssues(cmd.OutOrStdout(), listFormat, out.Identity, out.Issues)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(formatText), "Output format: text, table, json or yaml")

	return cmd
}
