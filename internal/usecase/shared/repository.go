package shared

import (
	"context"
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// ResolveRepository opens the local repository and parses its identity from the origin remote.
func ResolveRepository(opener domain.RepositoryOpener) (domain.Repository, domain.RepositoryIdentity, error) {
	repo, err := opener.Open()
	if err != nil {
		return nil, domain.RepositoryIdentity{}, fmt.Errorf("open repository: %w", err)
	}
	id, err := repo.Identity()
	if err != nil {
		return nil, domain.RepositoryIdentity{}, fmt.Errorf("resolve repository identity: %w", err)
	}
	return repo, id, nil
}

// OpenTracker creates the tracker client for the repository identity.
func OpenTracker(ctx context.Context, factory domain.TrackerFactory, id domain.RepositoryIdentity, token string) (domain.Tracker, error) {
	tracker, err := factory.NewTracker(ctx, id, token)
	if err != nil {
		return nil, fmt.Errorf("connect to tracker for %s: %w", id.FullName(), err)
	}
	return tracker, nil
}
