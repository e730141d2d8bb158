// Package gitlab provides the GitLab tracker client.
package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/runoshun/git-issue-flow/internal/domain"
	gl "gitlab.com/gitlab-org/api/client-go"
)

// Ensure Client implements domain.Tracker.
var _ domain.Tracker = (*Client)(nil)

// perPage is the page size used when listing issues.
const perPage = 100

// Client talks to the GitLab REST API for one project.
type Client struct {
	gl  *gl.Client
	pid string // Project path, e.g. group/sub/project
}

// NewClient creates a client for the instance at baseURL (scheme and host).
func NewClient(token, baseURL, owner, repo string) (*Client, error) {
	client, err := gl.NewClient(token, gl.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/api/v4"))
	if err != nil {
		return nil, fmt.Errorf("gitlab client: %w", err)
	}
	return &Client{gl: client, pid: owner + "/" + repo}, nil
}

// ListOpenIssues returns all opened issues, following every page.
func (c *Client) ListOpenIssues(ctx context.Context) ([]domain.Issue, error) {
	opts := &gl.ListProjectIssuesOptions{
		State:            gl.Ptr("opened"),
		WithLabelDetails: gl.Ptr(true),
	}
	opts.PerPage = perPage

	var issues []domain.Issue
	for {
		page, resp, err := c.gl.Issues.ListProjectIssues(c.pid, opts, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("gitlab list issues: %w", classify(err, nil))
		}
		for _, issue := range page {
			issues = append(issues, domain.Issue{
				Number: int(issue.IID),
				Title:  issue.Title,
				URL:    issue.WebURL,
				Labels: toDomainLabels(issue),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return issues, nil
}

// toDomainLabels prefers label details, which carry colors, over bare names.
func toDomainLabels(issue *gl.Issue) []domain.Label {
	if len(issue.LabelDetails) > 0 {
		labels := make([]domain.Label, 0, len(issue.LabelDetails))
		for _, d := range issue.LabelDetails {
			labels = append(labels, domain.Label{Name: d.Name, Color: strings.TrimPrefix(d.Color, "#")})
		}
		return labels
	}
	labels := make([]domain.Label, 0, len(issue.Labels))
	for _, name := range issue.Labels {
		labels = append(labels, domain.Label{Name: name})
	}
	return labels
}

// AddLabel adds a label to an issue.
func (c *Client) AddLabel(ctx context.Context, issue int, label string) error {
	opts := &gl.UpdateIssueOptions{
		AddLabels: (*gl.LabelOptions)(&[]string{label}),
	}
	if _, _, err := c.gl.Issues.UpdateIssue(c.pid, int64(issue), opts, gl.WithContext(ctx)); err != nil {
		return fmt.Errorf("gitlab add label %q to issue #%d: %w", label, issue, classify(err, notFoundIssue))
	}
	return nil
}

// RemoveLabel removes a label from an issue.
// GitLab accepts removing an absent label, so ErrLabelNotPresent is never returned.
func (c *Client) RemoveLabel(ctx context.Context, issue int, label string) error {
	opts := &gl.UpdateIssueOptions{
		RemoveLabels: (*gl.LabelOptions)(&[]string{label}),
	}
	if _, _, err := c.gl.Issues.UpdateIssue(c.pid, int64(issue), opts, gl.WithContext(ctx)); err != nil {
		return fmt.Errorf("gitlab remove label %q from issue #%d: %w", label, issue, classify(err, notFoundIssue))
	}
	return nil
}

// OpenReviewRequest opens a merge request and returns its URL.
func (c *Client) OpenReviewRequest(ctx context.Context, req domain.ReviewRequest) (string, error) {
	opts := &gl.CreateMergeRequestOptions{
		Title:        gl.Ptr(req.Title),
		Description:  gl.Ptr(req.Body),
		SourceBranch: gl.Ptr(req.SourceBranch),
		TargetBranch: gl.Ptr(req.TargetBranch),
	}
	mr, _, err := c.gl.MergeRequests.CreateMergeRequest(c.pid, opts, gl.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("gitlab create merge request %s -> %s: %w",
			req.SourceBranch, req.TargetBranch, classify(err, mergeRequestFailure))
	}
	return mr.WebURL, nil
}

// notFoundIssue maps 404 on an issue endpoint.
func notFoundIssue(resp *gl.ErrorResponse) error {
	if resp.Response.StatusCode == http.StatusNotFound {
		return domain.ErrIssueNotFound
	}
	return nil
}

// mergeRequestFailure maps failures when creating a merge request.
func mergeRequestFailure(resp *gl.ErrorResponse) error {
	switch resp.Response.StatusCode {
	case http.StatusConflict:
		return domain.ErrDuplicateRequest
	case http.StatusNotFound:
		return domain.ErrTargetBranchMissing
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		msg := strings.ToLower(resp.Message)
		if strings.Contains(msg, "already exists") {
			return domain.ErrDuplicateRequest
		}
		if strings.Contains(msg, "target branch") || strings.Contains(msg, "target_branch") {
			return domain.ErrTargetBranchMissing
		}
	}
	return nil
}

// classify attaches a domain sentinel to a client-go error.
// specific handles endpoint-specific statuses and returns nil when it has no opinion.
func classify(err error, specific func(*gl.ErrorResponse) error) error {
	var glErr *gl.ErrorResponse
	if !errors.As(err, &glErr) || glErr.Response == nil {
		return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}
	switch glErr.Response.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuthenticationFailed, err)
	}
	if specific != nil {
		if sentinel := specific(glErr); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrNetwork, err)
}
