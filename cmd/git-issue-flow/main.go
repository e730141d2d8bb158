// Package main is the entry point for the git-issue-flow CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/git-issue-flow/internal/app"
	"github.com/runoshun/git-issue-flow/internal/cli"
	"github.com/sethvargo/go-envconfig"
)

// version is set at build time using -ldflags.
var version = "dev"

// environment is the process configuration read from the environment.
// The tracker token is never taken from here.
type environment struct {
	ConfigDir     string `env:"GIT_ISSUE_FLOW_CONFIG_DIR"`
	LogLevel      string `env:"GIT_ISSUE_FLOW_LOG_LEVEL,default=info"`
	GitHubBaseURL string `env:"GIT_ISSUE_FLOW_GITHUB_API_URL"`
}

func main() {
	if err := run(context.Background(), envconfig.OsLookuper(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lookuper envconfig.Lookuper, args []string) error {
	env, err := loadEnvironment(ctx, lookuper)
	if err != nil {
		return err
	}

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container := app.New(app.Config{
		WorkDir:       cwd,
		ConfigDir:     env.ConfigDir,
		LogLevel:      env.LogLevel,
		GitHubBaseURL: env.GitHubBaseURL,
	})
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// loadEnvironment reads the process configuration.
func loadEnvironment(ctx context.Context, lookuper envconfig.Lookuper) (environment, error) {
	var env environment
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return environment{}, fmt.Errorf("read environment: %w", err)
	}
	return env, nil
}
