// Package git provides the local repository adapter.
package git

import (
	"errors"
	"fmt"
	"unicode/utf8"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/runoshun/git-issue-flow/internal/domain"
)

// RemoteName is the remote whose URL identifies the tracker repository.
const RemoteName = "origin"

// Ensure implementations satisfy the domain ports.
var (
	_ domain.RepositoryOpener = (*Opener)(nil)
	_ domain.Repository       = (*Repository)(nil)
)

// Opener opens the repository containing a directory.
type Opener struct {
	dir string // Directory to start searching from
}

// NewOpener creates a new Opener searching from dir.
func NewOpener(dir string) *Opener {
	return &Opener{dir: dir}
}

// Open locates the repository containing the opener's directory.
func (o *Opener) Open() (domain.Repository, error) {
	repo, err := Open(o.dir)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Repository provides git operations backed by go-git.
type Repository struct {
	repo *gogit.Repository
}

// Open opens the repository containing dir, searching parent directories.
// It handles both regular repositories and worktrees.
func Open(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotARepository
		}
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return &Repository{repo: repo}, nil
}

// RemoteURL returns the normalized URL of the origin remote.
func (r *Repository) RemoteURL() (string, error) {
	remote, err := r.repo.Remote(RemoteName)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("remote %q: %w", RemoteName, domain.ErrNoRemoteConfigured)
		}
		return "", fmt.Errorf("read remote %q: %w", RemoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" || !utf8.ValidString(urls[0]) {
		return "", fmt.Errorf("remote %q has no valid URL: %w", RemoteName, domain.ErrNoRemoteConfigured)
	}
	return domain.NormalizeRemoteURL(urls[0]), nil
}

// Identity returns owner and repository name parsed from the origin URL.
func (r *Repository) Identity() (domain.RepositoryIdentity, error) {
	url, err := r.RemoteURL()
	if err != nil {
		return domain.RepositoryIdentity{}, err
	}
	return domain.ParseRepositoryIdentity(url)
}

// CurrentBranchName returns the fully-qualified name of the checked-out branch,
// e.g. refs/heads/feature/7.
func (r *Repository) CurrentBranchName() (string, error) {
	head, err := r.head()
	if err != nil {
		return "", err
	}
	return head.Name().String(), nil
}

// CreateAndSwitchBranch creates a branch at the current commit and checks it out.
// A failed checkout leaves the created branch in place.
func (r *Repository) CreateAndSwitchBranch(name string) error {
	head, err := r.head()
	if err != nil {
		return err
	}

	refName := plumbing.NewBranchReferenceName(name)
	_, err = r.repo.Reference(refName, false)
	switch {
	case err == nil:
		return fmt.Errorf("branch %s: %w", name, domain.ErrBranchAlreadyExists)
	case !errors.Is(err, plumbing.ErrReferenceNotFound):
		return fmt.Errorf("check branch %s: %w", name, err)
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash())); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}

	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("checkout %s: %w: %w", name, domain.ErrCheckoutFailed, err)
	}
	if err := worktree.Checkout(&gogit.CheckoutOptions{Branch: refName, Keep: true}); err != nil {
		return fmt.Errorf("checkout %s: %w: %w", name, domain.ErrCheckoutFailed, err)
	}
	return nil
}

// head returns HEAD if it points to a branch with at least one commit.
func (r *Repository) head() (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, domain.ErrDetachedHead
		}
		return nil, fmt.Errorf("read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return nil, domain.ErrDetachedHead
	}
	return head, nil
}
