// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/runoshun/git-issue-flow/internal/infra/git"
	"github.com/runoshun/git-issue-flow/internal/infra/logging"
	"github.com/runoshun/git-issue-flow/internal/infra/settings"
	"github.com/runoshun/git-issue-flow/internal/infra/tracker"
	"github.com/runoshun/git-issue-flow/internal/tui"
	"github.com/runoshun/git-issue-flow/internal/usecase"
)

// Config holds the application configuration.
type Config struct {
	WorkDir       string // Directory the repository is discovered from
	ConfigDir     string // Directory holding config.toml and logs/
	LogLevel      string // debug, info, warn or error
	GitHubBaseURL string // GitHub API override, empty for api.github.com
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Settings domain.SettingsStore
	Repos    domain.RepositoryOpener
	Trackers domain.TrackerFactory
	Prompter domain.Prompter

	// Pointer fields
	Logger *clog.Logger
	closer io.Closer

	// Configuration
	Config Config
}

// New creates a Container bound to the real adapters.
// The repository is opened lazily by the use cases so that commands
// that do not need one work outside a repository.
func New(cfg Config) *Container {
	store := settings.New(cfg.ConfigDir)
	cfg.ConfigDir = store.Dir()

	handler := logging.New(cfg.ConfigDir, logging.ParseLevel(cfg.LogLevel))

	return &Container{
		Settings: store,
		Repos:    git.NewOpener(cfg.WorkDir),
		Trackers: &tracker.Factory{GitHubBaseURL: cfg.GitHubBaseURL},
		Prompter: tui.NewPrompter(nil, os.Stderr),
		Logger:   clog.New(handler),
		closer:   handler,
		Config:   cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil logger discards all records.
func NewWithDeps(
	cfg Config,
	store domain.SettingsStore,
	repos domain.RepositoryOpener,
	trackers domain.TrackerFactory,
	prompter domain.Prompter,
	logger *clog.Logger,
) *Container {
	if logger == nil {
		logger = clog.New(slog.DiscardHandler)
	}
	return &Container{
		Settings: store,
		Repos:    repos,
		Trackers: trackers,
		Prompter: prompter,
		Logger:   logger,
		Config:   cfg,
	}
}

// Close releases the log files.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// UseCase factory methods

// StartWorkUseCase returns a new StartWork use case.
func (c *Container) StartWorkUseCase() *usecase.StartWork {
	return usecase.NewStartWork(c.Settings, c.Repos, c.Trackers, c.Prompter)
}

// FinishWorkUseCase returns a new FinishWork use case.
func (c *Container) FinishWorkUseCase() *usecase.FinishWork {
	return usecase.NewFinishWork(c.Settings, c.Repos, c.Trackers, c.Prompter)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Settings, c.Repos, c.Trackers)
}

// SetTokenUseCase returns a new SetToken use case.
func (c *Container) SetTokenUseCase() *usecase.SetToken {
	return usecase.NewSetToken(c.Settings)
}

// ShowTokenUseCase returns a new ShowToken use case.
func (c *Container) ShowTokenUseCase() *usecase.ShowToken {
	return usecase.NewShowToken(c.Settings)
}
