package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// WorkingLabel marks an issue as being worked on.
const WorkingLabel = "working-on"

// TargetBranch is the branch every review request is opened against.
const TargetBranch = "main"

// issueBranchPrefix is the prefix of branches created for issues.
const issueBranchPrefix = "feature/"

// branchRefPrefix is the prefix of fully-qualified local branch names.
const branchRefPrefix = "refs/heads/"

// BranchName returns the branch name for an issue.
// Format: feature/<issue>
func BranchName(issue int) string {
	return fmt.Sprintf("%s%d", issueBranchPrefix, issue)
}

// issueBranchPattern matches issue branch names: feature/<issue>
var issueBranchPattern = regexp.MustCompile(`^feature/(\d+)$`)

// ParseIssueBranch extracts the issue number from a branch name.
// Returns the issue number and true if the branch follows the feature/<issue> convention,
// or 0 and false if not.
func ParseIssueBranch(branch string) (int, bool) {
	matches := issueBranchPattern.FindStringSubmatch(branch)
	if matches == nil {
		return 0, false
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ShortBranchName strips the refs/heads/ prefix from a fully-qualified branch name.
// Names without the prefix are returned unchanged.
func ShortBranchName(ref string) string {
	return strings.TrimPrefix(ref, branchRefPrefix)
}

// ReviewRequestText returns the body of a review request that closes the issue.
// Format: <description>\n\ncloses #<issue>, or just closes #<issue> when description is empty.
func ReviewRequestText(issue int, description string) string {
	closing := fmt.Sprintf("closes #%d", issue)
	if description == "" {
		return closing
	}
	return description + "\n\n" + closing
}

// MaskToken returns a display-safe form of a token: its first four characters followed by a mask.
func MaskToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return "****"
	}
	return token[:visible] + "****"
}

// SettingsPath returns the path to the settings file inside a config directory.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, SettingsFileName)
}

// GlobalLogPath returns the path to the global log file.
func GlobalLogPath(configDir string) string {
	return filepath.Join(configDir, "logs", AppName+".log")
}

// IssueLogPath returns the path to the log file of a single issue.
func IssueLogPath(configDir string, issue int) string {
	return filepath.Join(configDir, "logs", fmt.Sprintf("issue-%d.log", issue))
}

// Log attribute keys understood by the log file handler.
const (
	LogIssueKey    = "issue"    // Routes the record to the issue's log file
	LogCategoryKey = "category" // Short component tag, e.g. start or finish
)
