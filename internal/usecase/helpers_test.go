package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/testutil"
)

// testContext returns a context whose logger discards output.
func testContext(t *testing.T) context.Context {
	t.Helper()
	return clog.WithLogger(context.Background(), clog.New(slog.DiscardHandler))
}

// fixture bundles the fakes used by the workflow use cases.
type fixture struct {
	settings *testutil.MockSettingsStore
	repo     *testutil.MockRepository
	opener   *testutil.MockRepositoryOpener
	tracker  *testutil.MockTracker
	factory  *testutil.MockTrackerFactory
	prompter *testutil.MockPrompter
}

func newFixture(issues ...domain.Issue) *fixture {
	repo := testutil.NewMockRepository()
	tracker := testutil.NewMockTracker(issues...)
	return &fixture{
		settings: testutil.NewMockSettingsStore("ghp_secret"),
		repo:     repo,
		opener:   &testutil.MockRepositoryOpener{Repo: repo},
		tracker:  tracker,
		factory:  &testutil.MockTrackerFactory{Tracker: tracker},
		prompter: &testutil.MockPrompter{},
	}
}

func (f *fixture) startWork() *StartWork {
	return NewStartWork(f.settings, f.opener, f.factory, f.prompter)
}

func (f *fixture) finishWork() *FinishWork {
	return NewFinishWork(f.settings, f.opener, f.factory, f.prompter)
}

func strPtr(s string) *string {
	return &s
}
