package domain

import "path/filepath"

// Application directory and file names.
const (
	AppName          = "git-issue-flow" // Application name, also the config subdirectory
	SettingsFileName = "config.toml"    // Settings file name
)

// Settings is the persisted per-user configuration.
type Settings struct {
	Token string `toml:"token,omitempty"` // Tracker API token
}

// HasToken reports whether a token is stored.
func (s *Settings) HasToken() bool {
	return s != nil && s.Token != ""
}

// UserConfigDir returns the application config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func UserConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}
