package domain

import "fmt"

// Transition names a top-level workflow.
type Transition string

// Transitions.
const (
	TransitionStart  Transition = "start"
	TransitionFinish Transition = "finish"
	TransitionList   Transition = "list"
)

// Stage is a state reached by a transition.
type Stage string

// Start transition stages.
const (
	StageIdle          Stage = "idle"
	StageIssuesFetched Stage = "issues-fetched"
	StageIssueSelected Stage = "issue-selected"
	StageLabeled       Stage = "labeled"
	StageBranched      Stage = "branched"
	StageDone          Stage = "done"
)

// Finish transition stages.
const (
	StageIdentityResolved Stage = "identity-resolved"
	StageBranchValidated  Stage = "branch-validated"
	StageTextCollected    Stage = "text-collected"
	StageRequestOpened    Stage = "request-opened"
)

// StepError records which transition failed and the last stage it reached.
type StepError struct {
	Err        error
	Transition Transition
	Stage      Stage
}

// Error returns the error message.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s (after %s): %v", e.Transition, e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}
