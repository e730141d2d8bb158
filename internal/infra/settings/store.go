// Package settings persists the per-user settings file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-issue-flow/internal/domain"
)

// Ensure Store implements domain.SettingsStore.
var _ domain.SettingsStore = (*Store)(nil)

// Store reads and writes settings as TOML.
type Store struct {
	configDir string // Path to the config directory (e.g., ~/.config/git-issue-flow)
}

// New creates a new Store in the given config directory.
// An empty configDir selects the default per-user directory.
func New(configDir string) *Store {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.UserConfigDir(configHome)
}

// Dir returns the config directory.
func (s *Store) Dir() string {
	return s.configDir
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return domain.SettingsPath(s.configDir)
}

// Load returns the stored settings.
// A missing file is not an error and yields empty settings.
func (s *Store) Load() (*domain.Settings, error) {
	path := s.Path()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.Settings{}, nil
		}
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	var settings domain.Settings
	if err := toml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return &settings, nil
}

// Save writes the settings file, creating the config directory if needed.
func (s *Store) Save(settings *domain.Settings) error {
	if s.configDir == "" {
		return errors.New("config directory not available")
	}
	if err := os.MkdirAll(s.configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory %s: %w", s.configDir, err)
	}

	content, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	path := s.Path()
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write settings file %s: %w", path, err)
	}
	return nil
}
