// Package tracker selects the issue tracker client for a repository.
package tracker

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/infra/github"
	"github.com/runoshun/git-issue-flow/internal/infra/gitlab"
)

// Ensure Factory implements domain.TrackerFactory.
var _ domain.TrackerFactory = (*Factory)(nil)

// Factory builds tracker clients based on the repository's platform.
type Factory struct {
	// GitHubBaseURL overrides the GitHub API endpoint. Empty uses api.github.com.
	GitHubBaseURL string
}

// NewFactory creates a Factory using public endpoints.
func NewFactory() *Factory {
	return &Factory{}
}

// NewTracker returns a tracker for id authenticated with token.
func (f *Factory) NewTracker(ctx context.Context, id domain.RepositoryIdentity, token string) (domain.Tracker, error) {
	switch f.platform(id) {
	case domain.PlatformGitHub:
		var opts []github.Option
		if f.GitHubBaseURL != "" {
			opts = append(opts, github.WithBaseURL(f.GitHubBaseURL))
		}
		client, err := github.NewClient(ctx, token, id.Owner, id.Name, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	case domain.PlatformGitLab:
		client, err := gitlab.NewClient(token, id.BaseURL(), id.Owner, id.Name)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedTracker, id.Host)
	}
}

// platform resolves the tracker platform for id. A remote on the host of a
// custom GitHub endpoint (GitHub Enterprise) is served by the GitHub client.
func (f *Factory) platform(id domain.RepositoryIdentity) domain.Platform {
	if id.Platform != domain.PlatformUnknown || f.GitHubBaseURL == "" {
		return id.Platform
	}
	u, err := url.Parse(f.GitHubBaseURL)
	if err != nil {
		return id.Platform
	}
	host := strings.ToLower(u.Hostname())
	if host == id.Host || host == "api."+id.Host {
		return domain.PlatformGitHub
	}
	return id.Platform
}
