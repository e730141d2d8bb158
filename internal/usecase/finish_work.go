package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/usecase/shared"
)

// Prompts used when title or description are not supplied.
const (
	TitlePrompt       = "Pull request title"
	DescriptionPrompt = "Pull request description"
)

// FinishWorkInput contains the parameters for finishing work.
// Nil fields are collected interactively.
type FinishWorkInput struct {
	Title       *string
	Description *string
}

// FinishWorkOutput contains the result of finishing work.
type FinishWorkOutput struct {
	URL         string          // Review request URL
	Branch      string          // Source branch (short name)
	Warning     string          // Non-fatal label removal failure, empty on full success
	Platform    domain.Platform // Tracker platform, for wording
	IssueNumber int             // Issue parsed from the branch
}

// FinishWork is the use case for opening a review request that closes the branch's issue.
type FinishWork struct {
	settings domain.SettingsStore
	repos    domain.RepositoryOpener
	trackers domain.TrackerFactory
	prompter domain.Prompter
}

// NewFinishWork creates a new FinishWork use case.
func NewFinishWork(
	settings domain.SettingsStore,
	repos domain.RepositoryOpener,
	trackers domain.TrackerFactory,
	prompter domain.Prompter,
) *FinishWork {
	return &FinishWork{
		settings: settings,
		repos:    repos,
		trackers: trackers,
		prompter: prompter,
	}
}

// Execute runs the finish transition: Idle → IdentityResolved → BranchValidated → TextCollected → RequestOpened → Done.
// Failing to remove the working label after the request opened is reported in Warning, not as an error.
func (uc *FinishWork) Execute(ctx context.Context, in FinishWorkInput) (*FinishWorkOutput, error) {
	stage := domain.StageIdle
	fail := func(err error) error {
		return &domain.StepError{Transition: domain.TransitionFinish, Stage: stage, Err: err}
	}
	log := clog.FromContext(ctx).With(domain.LogCategoryKey, string(domain.TransitionFinish))

	token, err := shared.RequireToken(uc.settings)
	if err != nil {
		return nil, fail(err)
	}
	repo, id, err := shared.ResolveRepository(uc.repos)
	if err != nil {
		return nil, fail(err)
	}
	tracker, err := shared.OpenTracker(ctx, uc.trackers, id, token)
	if err != nil {
		return nil, fail(err)
	}
	stage = domain.StageIdentityResolved
	log.Infof("resolved repository %s", id.FullName())

	ref, err := repo.CurrentBranchName()
	if err != nil {
		return nil, fail(fmt.Errorf("read current branch: %w", err))
	}
	branch := domain.ShortBranchName(ref)
	issueNumber, ok := domain.ParseIssueBranch(branch)
	if !ok {
		return nil, fail(fmt.Errorf("%w: %s", domain.ErrNotAnIssueBranch, branch))
	}
	stage = domain.StageBranchValidated
	log = log.With(domain.LogIssueKey, issueNumber)
	log.Infof("on branch %s for issue #%d", branch, issueNumber)

	title, err := uc.textOrPrompt(ctx, in.Title, TitlePrompt)
	if err != nil {
		return nil, fail(err)
	}
	description, err := uc.textOrPrompt(ctx, in.Description, DescriptionPrompt)
	if err != nil {
		return nil, fail(err)
	}
	stage = domain.StageTextCollected

	url, err := tracker.OpenReviewRequest(ctx, domain.ReviewRequest{
		Title:        title,
		Body:         domain.ReviewRequestText(issueNumber, description),
		SourceBranch: branch,
		TargetBranch: domain.TargetBranch,
	})
	if err != nil {
		return nil, fail(fmt.Errorf("open %s: %w", id.Platform.ReviewRequestNoun(), err))
	}
	stage = domain.StageRequestOpened
	log.Infof("opened %s %s", id.Platform.ReviewRequestNoun(), url)

	out := &FinishWorkOutput{
		URL:         url,
		Branch:      branch,
		Platform:    id.Platform,
		IssueNumber: issueNumber,
	}

	if err := tracker.RemoveLabel(ctx, issueNumber, domain.WorkingLabel); err != nil {
		if errors.Is(err, domain.ErrLabelNotPresent) {
			log.Warnf("label %q was not present: %v", domain.WorkingLabel, err)
		} else {
			out.Warning = fmt.Sprintf("failed to remove label %q from issue #%d: %v", domain.WorkingLabel, issueNumber, err)
			log.Warn(out.Warning)
		}
	} else {
		log.Infof("removed label %q", domain.WorkingLabel)
	}

	log.Infof("finished work on issue #%d", issueNumber)
	return out, nil
}

// textOrPrompt returns the supplied value, or asks for it with no default.
func (uc *FinishWork) textOrPrompt(ctx context.Context, supplied *string, prompt string) (string, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return shared.PromptText(ctx, uc.prompter, prompt, "")
}
