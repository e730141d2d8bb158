// Package github provides the GitHub tracker client.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v84/github"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"golang.org/x/oauth2"
)

// Ensure Client implements domain.Tracker.
var _ domain.Tracker = (*Client)(nil)

// perPage is the page size used when listing issues.
const perPage = 100

// Client talks to the GitHub REST API for one repository.
type Client struct {
	gh    *gh.Client
	owner string
	repo  string
}

// Option configures a Client.
type Option func(*gh.Client) error

// WithBaseURL points the client at a different API root (GitHub Enterprise, tests).
func WithBaseURL(baseURL string) Option {
	return func(c *gh.Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parse base URL: %w", err)
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a client authenticated by a bearer token.
func NewClient(ctx context.Context, token, owner, repo string, opts ...Option) (*Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gh.NewClient(oauth2.NewClient(ctx, ts))
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return &Client{
		gh:    client,
		owner: owner,
		repo:  repo,
	}, nil
}

// ListOpenIssues returns all open issues, following every page.
// Pull requests, which the issues endpoint also returns, are skipped.
func (c *Client) ListOpenIssues(ctx context.Context) ([]domain.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State: "open",
	}
	opts.ListOptions.PerPage = perPage

	var issues []domain.Issue
	for {
		page, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("github list issues: %w", classify(err, nil))
		}
		for _, issue := range page {
			if issue.IsPullRequest() {
				continue
			}
			issues = append(issues, toDomainIssue(issue))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}
	return issues, nil
}

// AddLabel adds a label to an issue.
func (c *Client) AddLabel(ctx context.Context, issue int, label string) error {
	_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, issue, []string{label})
	if err != nil {
		return fmt.Errorf("github add label %q to issue #%d: %w", label, issue, classify(err, notFoundIssue))
	}
	return nil
}

// RemoveLabel removes a label from an issue.
func (c *Client) RemoveLabel(ctx context.Context, issue int, label string) error {
	_, err := c.gh.Issues.RemoveLabelForIssue(ctx, c.owner, c.repo, issue, label)
	if err != nil {
		return fmt.Errorf("github remove label %q from issue #%d: %w", label, issue, classify(err, notFoundLabel))
	}
	return nil
}

// OpenReviewRequest opens a pull request and returns its URL.
func (c *Client) OpenReviewRequest(ctx context.Context, req domain.ReviewRequest) (string, error) {
	pr, _, err := c.gh.PullRequests.Create(ctx, c.owner, c.repo, &gh.NewPullRequest{
		Title: gh.Ptr(req.Title),
		Body:  gh.Ptr(req.Body),
		Head:  gh.Ptr(req.SourceBranch),
		Base:  gh.Ptr(req.TargetBranch),
	})
	if err != nil {
		return "", fmt.Errorf("github create pull request %s -> %s: %w",
			req.SourceBranch, req.TargetBranch, classify(err, pullRequestFailure))
	}
	return pr.GetHTMLURL(), nil
}

func toDomainIssue(issue *gh.Issue) domain.Issue {
	labels := make([]domain.Label, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, domain.Label{Name: l.GetName(), Color: l.GetColor()})
	}
	return domain.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
		Labels: labels,
	}
}

// notFoundIssue maps 404 on an issue endpoint.
func notFoundIssue(resp *gh.ErrorResponse) error {
	if resp.Response.StatusCode == http.StatusNotFound {
		return domain.ErrIssueNotFound
	}
	return nil
}

// notFoundLabel distinguishes a missing label from a missing issue.
func notFoundLabel(resp *gh.ErrorResponse) error {
	if resp.Response.StatusCode != http.StatusNotFound {
		return nil
	}
	if strings.Contains(strings.ToLower(resp.Message), "label does not exist") {
		return domain.ErrLabelNotPresent
	}
	return domain.ErrIssueNotFound
}

// pullRequestFailure maps validation failures when creating a pull request.
func pullRequestFailure(resp *gh.ErrorResponse) error {
	switch resp.Response.StatusCode {
	case http.StatusUnprocessableEntity:
		for _, e := range resp.Errors {
			if strings.Contains(strings.ToLower(e.Message), "already exists") {
				return domain.ErrDuplicateRequest
			}
			if e.Field == "base" {
				return domain.ErrTargetBranchMissing
			}
		}
		if strings.Contains(strings.ToLower(resp.Message), "already exists") {
			return domain.ErrDuplicateRequest
		}
	case http.StatusNotFound:
		return domain.ErrTargetBranchMissing
	}
	return nil
}

// classify attaches a domain sentinel to a go-github error.
// specific handles endpoint-specific statuses and returns nil when it has no opinion.
func classify(err error, specific func(*gh.ErrorResponse) error) error {
	var ghErr *gh.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil {
		return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuthenticationFailed, err)
	}
	if specific != nil {
		if sentinel := specific(ghErr); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
}
