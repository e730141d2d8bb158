package domain

import "errors"

// Domain errors.
var (
	ErrMissingCredential    = errors.New("token not configured (run 'git-issue-flow config --token <TOKEN>')")
	ErrEmptyToken           = errors.New("token cannot be empty")
	ErrNotARepository       = errors.New("not a git repository (or any of the parent directories)")
	ErrNoRemoteConfigured   = errors.New("no usable 'origin' remote configured")
	ErrUnparsableRemoteURL  = errors.New("could not parse owner and repository from remote URL")
	ErrUnsupportedTracker   = errors.New("no issue tracker supported for remote host")
	ErrDetachedHead         = errors.New("HEAD is detached or does not point to a branch")
	ErrBranchAlreadyExists  = errors.New("branch already exists")
	ErrCheckoutFailed       = errors.New("checkout failed")
	ErrAuthenticationFailed = errors.New("tracker rejected the token")
	ErrNetwork              = errors.New("tracker request failed")
	ErrIssueNotFound        = errors.New("issue not found")
	ErrLabelAlreadyPresent  = errors.New("label already present on issue")
	ErrLabelNotPresent      = errors.New("label not present on issue")
	ErrNoOpenIssues         = errors.New("no open issues found")
	ErrNoChoicesAvailable   = errors.New("no choices available to select from")
	ErrInvalidSelection     = errors.New("selection out of range")
	ErrPromptCancelled      = errors.New("prompt cancelled")
	ErrNotAnIssueBranch     = errors.New("not an issue branch (expected feature/<issue-number>)")
	ErrTargetBranchMissing  = errors.New("target branch does not exist on the tracker")
	ErrDuplicateRequest     = errors.New("a review request already exists for this branch")
)
