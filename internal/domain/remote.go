package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Platform identifies the kind of tracker behind a remote.
type Platform int

// Supported platforms.
const (
	PlatformUnknown Platform = iota
	PlatformGitHub
	PlatformGitLab
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformGitHub:
		return "github"
	case PlatformGitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// ReviewRequestNoun returns what the platform calls a review request.
func (p Platform) ReviewRequestNoun() string {
	if p == PlatformGitLab {
		return "merge request"
	}
	return "pull request"
}

// RepositoryIdentity identifies a repository on its tracker.
// Derived once per command from the remote URL and never mutated.
type RepositoryIdentity struct {
	URL      string   // Normalized HTTPS remote URL
	Host     string   // e.g. "github.com"
	Owner    string   // Owner, or namespace path on GitLab
	Name     string   // Repository name
	Platform Platform // Tracker platform detected from Host
}

// FullName returns owner/name.
func (id RepositoryIdentity) FullName() string {
	return id.Owner + "/" + id.Name
}

// BaseURL returns the scheme and host of the remote, e.g. https://gitlab.example.com.
func (id RepositoryIdentity) BaseURL() string {
	u, err := url.Parse(id.URL)
	if err != nil || u.Host == "" {
		return "https://" + id.Host
	}
	return u.Scheme + "://" + u.Host
}

// scpLikePattern matches scp-style SSH remotes: user@host:path
var scpLikePattern = regexp.MustCompile(`^[\w.-]+@([^:/]+):(.+)$`)

// NormalizeRemoteURL rewrites SSH remotes to their HTTPS form and strips a trailing .git.
//
//	git@github.com:acme/widgets.git     -> https://github.com/acme/widgets
//	ssh://git@github.com/acme/widgets   -> https://github.com/acme/widgets
//	https://github.com/acme/widgets.git -> https://github.com/acme/widgets
func NormalizeRemoteURL(raw string) string {
	s := strings.TrimSpace(raw)
	if m := scpLikePattern.FindStringSubmatch(s); m != nil {
		s = "https://" + m[1] + "/" + strings.TrimPrefix(m[2], "/")
	} else if strings.HasPrefix(s, "ssh://") {
		if u, err := url.Parse(s); err == nil && u.Hostname() != "" {
			s = "https://" + u.Hostname() + u.Path
		}
	}
	return strings.TrimSuffix(s, ".git")
}

// ParseRepositoryIdentity extracts owner and repository name from a remote URL.
// Both HTTPS and SSH shapes are accepted; SSH remotes are normalized first.
// A path with fewer than two segments yields ErrUnparsableRemoteURL.
func ParseRepositoryIdentity(remote string) (RepositoryIdentity, error) {
	normalized := NormalizeRemoteURL(remote)
	u, err := url.Parse(normalized)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Hostname() == "" {
		return RepositoryIdentity{}, fmt.Errorf("%w: %q", ErrUnparsableRemoteURL, remote)
	}

	var parts []string
	for _, p := range strings.Split(u.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return RepositoryIdentity{}, fmt.Errorf("%w: %q", ErrUnparsableRemoteURL, remote)
	}

	host := strings.ToLower(u.Hostname())
	id := RepositoryIdentity{
		URL:      normalized,
		Host:     host,
		Platform: DetectPlatform(host),
	}
	if id.Platform == PlatformGitLab {
		// GitLab namespaces nest: group/subgroup/project
		id.Owner = strings.Join(parts[:len(parts)-1], "/")
		id.Name = parts[len(parts)-1]
	} else {
		id.Owner = parts[0]
		id.Name = parts[1]
	}
	return id, nil
}

// DetectPlatform guesses the tracker platform from a remote host.
func DetectPlatform(host string) Platform {
	host = strings.ToLower(host)
	switch {
	case host == "github.com" || strings.HasSuffix(host, ".github.com"):
		return PlatformGitHub
	case strings.Contains(host, "gitlab"):
		return PlatformGitLab
	default:
		return PlatformUnknown
	}
}
