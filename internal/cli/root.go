// Package cli provides the command-line interface for git-issue-flow.
package cli

import (
	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupWorkflow = "workflow"
)

// NewRootCommand creates the root command for git-issue-flow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "git-issue-flow",
		Short: "Issue-to-branch-to-pull-request workflow",
		Long: `git-issue-flow links your repository to its issue tracker.

Pick an open issue with 'start' to label it working-on and switch to
feature/<number>. When you are done, 'finish' opens a pull request
into main that closes the issue and removes the label.

GitHub remotes open pull requests; GitLab remotes open merge requests.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. help in tests)
			if c == nil {
				return nil
			}
			cmd.SetContext(clog.WithLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupWorkflow, Title: "Workflow Commands:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	startCmd := newStartCommand(c)
	startCmd.GroupID = groupWorkflow

	finishCmd := newFinishCommand(c)
	finishCmd.GroupID = groupWorkflow

	listCmd := newListCommand(c)
	listCmd.GroupID = groupWorkflow

	root.AddCommand(
		configCmd,
		startCmd,
		finishCmd,
		listCmd,
	)

	return root
}
