package domain

import "context"

// SettingsStore persists the per-user settings.
type SettingsStore interface {
	// Load returns the stored settings. A missing file yields empty settings.
	Load() (*Settings, error)

	// Save writes the settings, creating the config directory if needed.
	Save(settings *Settings) error

	// Path returns the settings file path.
	Path() string
}

// RepositoryOpener locates the local repository.
type RepositoryOpener interface {
	// Open finds the repository containing the working directory.
	// Returns ErrNotARepository if there is none.
	Open() (Repository, error)
}

// Repository provides operations on the local git repository.
type Repository interface {
	// Identity returns owner and repository name parsed from the origin remote URL.
	Identity() (RepositoryIdentity, error)

	// CurrentBranchName returns the fully-qualified name of the checked-out branch.
	CurrentBranchName() (string, error)

	// CreateAndSwitchBranch creates a branch at HEAD and checks it out.
	CreateAndSwitchBranch(name string) error
}

// Tracker provides issue tracker operations for one repository.
type Tracker interface {
	// ListOpenIssues returns every open issue, following pagination.
	ListOpenIssues(ctx context.Context) ([]Issue, error)

	// AddLabel adds a label to an issue.
	// Returns ErrLabelAlreadyPresent when the tracker reports the label as existing.
	AddLabel(ctx context.Context, issue int, label string) error

	// RemoveLabel removes a label from an issue.
	// Returns ErrLabelNotPresent when the issue does not carry the label.
	RemoveLabel(ctx context.Context, issue int, label string) error

	// OpenReviewRequest opens a pull/merge request and returns its URL.
	OpenReviewRequest(ctx context.Context, req ReviewRequest) (string, error)
}

// ReviewRequest describes a pull/merge request to open.
type ReviewRequest struct {
	Title        string
	Body         string
	SourceBranch string
	TargetBranch string
}

// TrackerFactory creates a tracker client for a repository.
type TrackerFactory interface {
	// NewTracker returns a client for the identity's platform authenticated by token.
	// Returns ErrUnsupportedTracker for unknown platforms.
	NewTracker(ctx context.Context, id RepositoryIdentity, token string) (Tracker, error)
}

// Prompter renders interactive prompts.
type Prompter interface {
	// Select presents a single-choice menu and returns the chosen index.
	Select(ctx context.Context, prompt string, options []string) (int, error)

	// Input asks for free text. When the user submits nothing and defaultValue
	// is non-empty, defaultValue is returned.
	Input(ctx context.Context, prompt, defaultValue string) (string, error)
}
