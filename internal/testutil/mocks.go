// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"

	"github.com/runoshun/git-issue-flow/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.SettingsStore    = (*MockSettingsStore)(nil)
	_ domain.RepositoryOpener = (*MockRepositoryOpener)(nil)
	_ domain.Repository       = (*MockRepository)(nil)
	_ domain.Tracker          = (*MockTracker)(nil)
	_ domain.TrackerFactory   = (*MockTrackerFactory)(nil)
	_ domain.Prompter         = (*MockPrompter)(nil)
)

// MockSettingsStore is a test double for domain.SettingsStore.
type MockSettingsStore struct {
	Settings  *domain.Settings
	LoadErr   error
	SaveErr   error
	FilePath  string
	SaveCount int
}

// NewMockSettingsStore creates a store holding token. An empty token means not configured.
func NewMockSettingsStore(token string) *MockSettingsStore {
	return &MockSettingsStore{
		Settings: &domain.Settings{Token: token},
		FilePath: "/home/test/.config/git-issue-flow/config.toml",
	}
}

// Load returns a copy of the stored settings.
func (m *MockSettingsStore) Load() (*domain.Settings, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Settings == nil {
		return &domain.Settings{}, nil
	}
	s := *m.Settings
	return &s, nil
}

// Save records the settings.
func (m *MockSettingsStore) Save(settings *domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	s := *settings
	m.Settings = &s
	m.SaveCount++
	return nil
}

// Path returns the configured file path.
func (m *MockSettingsStore) Path() string {
	return m.FilePath
}

// MockRepositoryOpener is a test double for domain.RepositoryOpener.
type MockRepositoryOpener struct {
	Repo    *MockRepository
	OpenErr error
}

// Open returns the configured repository.
func (m *MockRepositoryOpener) Open() (domain.Repository, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Repo, nil
}

// MockRepository is a test double for domain.Repository.
// Fields are ordered to minimize memory padding.
type MockRepository struct {
	RemoteErr        error
	IdentityErr      error
	BranchErr        error
	CreateBranchErr  error
	Remote           string
	CurrentBranch    string
	CreatedBranches  []string
	ExistingBranches map[string]bool
}

// NewMockRepository creates a repository whose origin is https://github.com/acme/widgets
// and whose HEAD is refs/heads/main.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		Remote:           "https://github.com/acme/widgets",
		CurrentBranch:    "refs/heads/main",
		ExistingBranches: map[string]bool{"main": true},
	}
}

// Identity parses the configured remote.
func (m *MockRepository) Identity() (domain.RepositoryIdentity, error) {
	if m.IdentityErr != nil {
		return domain.RepositoryIdentity{}, m.IdentityErr
	}
	if m.RemoteErr != nil {
		return domain.RepositoryIdentity{}, m.RemoteErr
	}
	return domain.ParseRepositoryIdentity(m.Remote)
}

// CurrentBranchName returns the configured branch.
func (m *MockRepository) CurrentBranchName() (string, error) {
	if m.BranchErr != nil {
		return "", m.BranchErr
	}
	return m.CurrentBranch, nil
}

// CreateAndSwitchBranch records the branch and makes it current.
func (m *MockRepository) CreateAndSwitchBranch(name string) error {
	if m.CreateBranchErr != nil {
		return m.CreateBranchErr
	}
	if m.ExistingBranches[name] {
		return fmt.Errorf("%w: %s", domain.ErrBranchAlreadyExists, name)
	}
	if m.ExistingBranches == nil {
		m.ExistingBranches = make(map[string]bool)
	}
	m.ExistingBranches[name] = true
	m.CreatedBranches = append(m.CreatedBranches, name)
	m.CurrentBranch = "refs/heads/" + name
	return nil
}

// LabelCall records one AddLabel or RemoveLabel call.
type LabelCall struct {
	Label string
	Issue int
}

// MockTracker is a test double for domain.Tracker.
// Calls lists operation names in call order: list, add-label, remove-label, open-request.
type MockTracker struct {
	ListErr        error
	AddLabelErr    error
	RemoveLabelErr error
	OpenErr        error
	RequestURL     string
	Issues         []domain.Issue
	Calls          []string
	Added          []LabelCall
	Removed        []LabelCall
	Requests       []domain.ReviewRequest
}

// NewMockTracker creates a tracker serving issues.
func NewMockTracker(issues ...domain.Issue) *MockTracker {
	return &MockTracker{
		Issues:     issues,
		RequestURL: "https://github.com/acme/widgets/pull/1",
	}
}

// ListOpenIssues returns the configured issues.
func (m *MockTracker) ListOpenIssues(_ context.Context) ([]domain.Issue, error) {
	m.Calls = append(m.Calls, "list")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Issues, nil
}

// AddLabel records the call.
func (m *MockTracker) AddLabel(_ context.Context, issue int, label string) error {
	m.Calls = append(m.Calls, "add-label")
	if m.AddLabelErr != nil {
		return m.AddLabelErr
	}
	m.Added = append(m.Added, LabelCall{Issue: issue, Label: label})
	return nil
}

// RemoveLabel records the call.
func (m *MockTracker) RemoveLabel(_ context.Context, issue int, label string) error {
	m.Calls = append(m.Calls, "remove-label")
	if m.RemoveLabelErr != nil {
		return m.RemoveLabelErr
	}
	m.Removed = append(m.Removed, LabelCall{Issue: issue, Label: label})
	return nil
}

// OpenReviewRequest records the request and returns RequestURL.
func (m *MockTracker) OpenReviewRequest(_ context.Context, req domain.ReviewRequest) (string, error) {
	m.Calls = append(m.Calls, "open-request")
	if m.OpenErr != nil {
		return "", m.OpenErr
	}
	m.Requests = append(m.Requests, req)
	return m.RequestURL, nil
}

// MockTrackerFactory is a test double for domain.TrackerFactory.
type MockTrackerFactory struct {
	Tracker  *MockTracker
	Err      error
	Tokens   []string
	Identity domain.RepositoryIdentity
}

// NewTracker returns the configured tracker and records the arguments.
func (m *MockTrackerFactory) NewTracker(_ context.Context, id domain.RepositoryIdentity, token string) (domain.Tracker, error) {
	m.Identity = id
	m.Tokens = append(m.Tokens, token)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Tracker, nil
}

// MockPrompter is a scripted test double for domain.Prompter.
// Select returns SelectIndex; Input returns successive Answers, then the default.
type MockPrompter struct {
	SelectErr     error
	InputErr      error
	SelectPrompt  string
	SelectOptions []string
	InputPrompts  []string
	InputDefaults []string
	Answers       []string
	SelectIndex   int
	SelectCalls   int
}

// Select records the menu and returns SelectIndex.
func (m *MockPrompter) Select(_ context.Context, prompt string, options []string) (int, error) {
	m.SelectCalls++
	m.SelectPrompt = prompt
	m.SelectOptions = options
	if m.SelectErr != nil {
		return 0, m.SelectErr
	}
	return m.SelectIndex, nil
}

// Input records the prompt and returns the next scripted answer.
func (m *MockPrompter) Input(_ context.Context, prompt, defaultValue string) (string, error) {
	m.InputPrompts = append(m.InputPrompts, prompt)
	m.InputDefaults = append(m.InputDefaults, defaultValue)
	if m.InputErr != nil {
		return "", m.InputErr
	}
	if len(m.Answers) == 0 {
		return defaultValue, nil
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}
