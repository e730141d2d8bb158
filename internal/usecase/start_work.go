package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/usecase/shared"
)

// StartPrompt is shown above the issue menu.
const StartPrompt = "Select an issue to work on"

// StartWorkInput contains the parameters for starting work on an issue.
// The issue is always chosen interactively.
type StartWorkInput struct{}

// StartWorkOutput contains the result of starting work.
type StartWorkOutput struct {
	Issue          domain.Issue // The selected issue
	Branch         string       // Branch created and checked out
	AlreadyLabeled bool         // The issue carried the working label before start
}

// StartWork is the use case for picking an issue, labeling it and branching for it.
type StartWork struct {
	settings domain.SettingsStore
	repos    domain.RepositoryOpener
	trackers domain.TrackerFactory
	prompter domain.Prompter
}

// NewStartWork creates a new StartWork use case.
func NewStartWork(
	settings domain.SettingsStore,
	repos domain.RepositoryOpener,
	trackers domain.TrackerFactory,
	prompter domain.Prompter,
) *StartWork {
	return &StartWork{
		settings: settings,
		repos:    repos,
		trackers: trackers,
		prompter: prompter,
	}
}

// Execute runs the start transition: Idle → IssuesFetched → IssueSelected → Labeled → Branched → Done.
// The branch is created only after labeling succeeded. A failed branch creation leaves the label in place.
func (uc *StartWork) Execute(ctx context.Context, _ StartWorkInput) (*StartWorkOutput, error) {
	stage := domain.StageIdle
	fail := func(err error) error {
		return &domain.StepError{Transition: domain.TransitionStart, Stage: stage, Err: err}
	}
	log := clog.FromContext(ctx).With(domain.LogCategoryKey, string(domain.TransitionStart))

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

	issues, err := tracker.ListOpenIssues(ctx)
	if err != nil {
		return nil, fail(fmt.Errorf("list open issues: %w", err))
	}
	if len(issues) == 0 {
		return nil, fail(fmt.Errorf("%w in %s", domain.ErrNoOpenIssues, id.FullName()))
	}
	stage = domain.StageIssuesFetched
	log.Infof("fetched %d open issues from %s", len(issues), id.FullName())

	selected, err := shared.SelectIssue(ctx, uc.prompter, issues, StartPrompt)
	if err != nil {
		return nil, fail(err)
	}
	issue := *selected
	stage = domain.StageIssueSelected
	log = log.With(domain.LogIssueKey, issue.Number)
	log.Infof("selected issue #%d %q", issue.Number, issue.Title)

	alreadyLabeled := issue.HasLabel(domain.WorkingLabel)
	if alreadyLabeled {
		log.Infof("issue already carries %q, skipping label", domain.WorkingLabel)
	} else if err := tracker.AddLabel(ctx, issue.Number, domain.WorkingLabel); errors.Is(err, domain.ErrLabelAlreadyPresent) {
		alreadyLabeled = true
		log.Warnf("label %q already present: %v", domain.WorkingLabel, err)
	} else if err != nil {
		return nil, fail(fmt.Errorf("add label %q to issue #%d: %w", domain.WorkingLabel, issue.Number, err))
	} else {
		log.Infof("labeled issue #%d with %q", issue.Number, domain.WorkingLabel)
	}
	stage = domain.StageLabeled

	branch := domain.BranchName(issue.Number)
	if err := repo.CreateAndSwitchBranch(branch); err != nil {
		log.Errorf("create branch %s failed, label left in place: %v", branch, err)
		return nil, fail(fmt.Errorf("create branch %s: %w", branch, err))
	}
	stage = domain.StageBranched
	log.Infof("created and switched to branch %s", branch)

	stage = domain.StageDone
	log.Infof("started work on issue #%d", issue.Number)

	return &StartWorkOutput{
		Issue:          issue,
		Branch:         branch,
		AlreadyLabeled: alreadyLabeled,
	}, nil
}
