package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/tui"
	"github.com/runoshun/git-issue-flow/internal/usecase"
	"github.com/spf13/cobra"
)

// newFinishCommand creates the finish command.
func newFinishCommand(c *app.Container) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "finish [title]",
		Short: "Open a pull request for the current issue branch",
		Long: `Open a pull request for the current feature/<number> branch.

The request targets main and its body ends with "closes #<number>".
Title and description are prompted for unless given. Afterwards the
working-on label is removed; failing to remove it is only a warning.

Examples:
  # Prompt for title and description
  git-issue-flow finish

  # Non-interactive
  git-issue-flow finish "Fix crash" -d "Guard against nil config"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.FinishWorkInput
			if len(args) == 1 {
				in.Title = &args[0]
			}
			if cmd.Flags().Changed("description") {
				in.Description = &description
			}

			out, err := c.FinishWorkUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s created: %s\n", capitalize(out.Platform.ReviewRequestNoun()), out.URL)
			if out.Warning != "" {
				stderr := cmd.ErrOrStderr()
				warn := tui.NewWarningStyle(lipgloss.NewRenderer(stderr))
				_, _ = fmt.Fprintln(stderr, warn.Render("Warning: "+out.Warning))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Pull request description")

	return cmd
}

// capitalize upper-cases the first ASCII letter of s.
func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
