package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/testutil"
	"github.com/spf13/cobra"
)

// testDeps holds the fakes behind a test container.
type testDeps struct {
	settings *testutil.MockSettingsStore
	repo     *testutil.MockRepository
	tracker  *testutil.MockTracker
	prompter *testutil.MockPrompter
}

// newTestContainer creates an app.Container backed by fakes serving issues.
func newTestContainer(issues ...domain.Issue) (*app.Container, *testDeps) {
	deps := &testDeps{
		settings: testutil.NewMockSettingsStore("ghp_secret"),
		repo:     testutil.NewMockRepository(),
		tracker:  testutil.NewMockTracker(issues...),
		prompter: &testutil.MockPrompter{},
	}
	container := app.NewWithDeps(
		app.Config{},
		deps.settings,
		&testutil.MockRepositoryOpener{Repo: deps.repo},
		&testutil.MockTrackerFactory{Tracker: deps.tracker},
		deps.prompter,
		nil,
	)
	return container, deps
}

// runCommand executes the root command with args and captures both streams.
func runCommand(t *testing.T, c *app.Container, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// findCommand returns the named subcommand of root.
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}
