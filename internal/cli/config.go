package cli

import (
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Set or show the tracker token",
		Long: `Set or show the access token used to talk to the issue tracker.

With --token, the token is stored in the settings file
($XDG_CONFIG_HOME/git-issue-flow/config.toml). Without it, the
stored token is shown masked.

Examples:
  # Store a GitHub token
  git-issue-flow config --token ghp_xxxxxxxx

  # Show the stored token
  git-issue-flow config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			if cmd.Flags().Changed("token") {
				out, err := c.SetTokenUseCase().Execute(cmd.Context(), usecase.SetTokenInput{Token: token})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Token saved: %s\n", out.Masked)
				_, _ = fmt.Fprintf(w, "Config file: %s\n", out.Path)
				return nil
			}

			out, err := c.ShowTokenUseCase().Execute(cmd.Context(), usecase.ShowTokenInput{})
			if err != nil {
				return err
			}
			if out.Set {
				_, _ = fmt.Fprintf(w, "Token already set: %s\n", out.Masked)
			} else {
				_, _ = fmt.Fprintln(w, "Token not set (run 'git-issue-flow config --token <TOKEN>')")
			}
			_, _ = fmt.Fprintf(w, "Config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Access token for the issue tracker")

	return cmd
}
