package cli

import (
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/usecase"
	"github.com/spf13/cobra"
)

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Pick an issue and start working on it",
		Long: `Pick an open issue and start working on it.

Lists the open issues of the repository's tracker, lets you choose one,
labels it working-on and creates and checks out feature/<number>.
The branch is only created once the label was added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StartWorkUseCase().Execute(cmd.Context(), usecase.StartWorkInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Starting issue %s\n", domain.FormatIssueLine(out.Issue))
			if out.AlreadyLabeled {
				_, _ = fmt.Fprintf(w, "Issue #%d already labeled %s\n", out.Issue.Number, domain.WorkingLabel)
			}
			_, _ = fmt.Fprintf(w, "Created and switched to branch %s\n", out.Branch)
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "You're all set! Make your changes and when you're ready to open a pull request, run:")
			_, _ = fmt.Fprintf(w, "  %s finish\n", domain.AppName)
			return nil
		},
	}
}
