package usecase

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/usecase/shared"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct{}

// ListIssuesOutput contains the open issues of the repository.
// An empty Issues slice is a normal result.
type ListIssuesOutput struct {
	Identity domain.RepositoryIdentity
	Issues   []domain.Issue
}

// ListIssues is the read-only use case for listing open issues.
type ListIssues struct {
	settings domain.SettingsStore
	repos    domain.RepositoryOpener
	trackers domain.TrackerFactory
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(settings domain.SettingsStore, repos domain.RepositoryOpener, trackers domain.TrackerFactory) *ListIssues {
	return &ListIssues{
		settings: settings,
		repos:    repos,
		trackers: trackers,
	}
}

// Execute fetches the open issues of the current repository.
func (uc *ListIssues) Execute(ctx context.Context, _ ListIssuesInput) (*ListIssuesOutput, error) {
	token, err := shared.RequireToken(uc.settings)
	if err != nil {
		return nil, err
	}
	_, id, err := shared.ResolveRepository(uc.repos)
	if err != nil {
		return nil, err
	}
	tracker, err := shared.OpenTracker(ctx, uc.trackers, id, token)
	if err != nil {
		return nil, err
	}

	issues, err := tracker.ListOpenIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open issues: %w", err)
	}
	clog.FromContext(ctx).With(domain.LogCategoryKey, string(domain.TransitionList)).
		Debugf("listed %d open issues in %s", len(issues), id.FullName())

	return &ListIssuesOutput{
		Identity: id,
		Issues:   issues,
	}, nil
}
