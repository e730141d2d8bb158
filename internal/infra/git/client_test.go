package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupGitRepo creates a temporary git repository with one commit on main.
func setupGitRepo(t *testing.T) (string, *gogit.Repository, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	require.NoError(t, err)

	// Create initial commit
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	hash, err := wt.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, repo, hash
}

// addRemote configures the origin remote.
func addRemote(t *testing.T, repo *gogit.Repository, url string) {
	t.Helper()
	_, err := repo.CreateRemote(&config.RemoteConfig{Name: RemoteName, URLs: []string{url}})
	require.NoError(t, err)
}

// =============================================================================
// Open Tests
// =============================================================================

func TestOpen_Success(t *testing.T) {
	dir, _, _ := setupGitRepo(t)

	repo, err := Open(dir)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpen_FromSubdirectory(t *testing.T) {
	dir, _, _ := setupGitRepo(t)
	sub := filepath.Join(dir, "pkg", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := Open(sub)
	require.NoError(t, err)

	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", branch)
}

func TestOpen_NotGitRepo(t *testing.T) {
	dir := t.TempDir() // Not a git repository

	repo, err := Open(dir)
	assert.ErrorIs(t, err, domain.ErrNotARepository)
	assert.Nil(t, repo)
}

func TestOpener_Open(t *testing.T) {
	dir, _, _ := setupGitRepo(t)

	repo, err := NewOpener(dir).Open()
	require.NoError(t, err)
	assert.NotNil(t, repo)

	repo, err = NewOpener(t.TempDir()).Open()
	assert.ErrorIs(t, err, domain.ErrNotARepository)
	assert.Nil(t, repo)
}

// =============================================================================
// Remote Tests
// =============================================================================

func TestRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"ssh remote", "git@github.com:acme/widgets.git", "https://github.com/acme/widgets"},
		{"https remote", "https://github.com/acme/widgets.git", "https://github.com/acme/widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, gitRepo, _ := setupGitRepo(t)
			addRemote(t, gitRepo, tt.url)

			repo, err := Open(dir)
			require.NoError(t, err)

			got, err := repo.RemoteURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteURL_NoRemote(t *testing.T) {
	dir, _, _ := setupGitRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.RemoteURL()
	assert.ErrorIs(t, err, domain.ErrNoRemoteConfigured)

	_, err = repo.Identity()
	assert.ErrorIs(t, err, domain.ErrNoRemoteConfigured)
}

func TestIdentity(t *testing.T) {
	dir, gitRepo, _ := setupGitRepo(t)
	addRemote(t, gitRepo, "git@github.com:acme/widgets.git")
	repo, err := Open(dir)
	require.NoError(t, err)

	id, err := repo.Identity()
	require.NoError(t, err)
	assert.Equal(t, "acme", id.Owner)
	assert.Equal(t, "widgets", id.Name)
	assert.Equal(t, domain.PlatformGitHub, id.Platform)
}

func TestIdentity_Unparsable(t *testing.T) {
	dir, gitRepo, _ := setupGitRepo(t)
	addRemote(t, gitRepo, "https://github.com/acme")
	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.Identity()
	assert.ErrorIs(t, err, domain.ErrUnparsableRemoteURL)
}

// =============================================================================
// Branch Tests
// =============================================================================

func TestCurrentBranchName_Detached(t *testing.T) {
	dir, gitRepo, hash := setupGitRepo(t)
	wt, err := gitRepo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: hash}))

	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.CurrentBranchName()
	assert.ErrorIs(t, err, domain.ErrDetachedHead)
}

func TestCurrentBranchName_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	repo, err := Open(dir)
	require.NoError(t, err)

	_, err = repo.CurrentBranchName()
	assert.ErrorIs(t, err, domain.ErrDetachedHead)
}

func TestCreateAndSwitchBranch(t *testing.T) {
	dir, gitRepo, hash := setupGitRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)

	err = repo.CreateAndSwitchBranch("feature/7")
	require.NoError(t, err)

	// HEAD now points to the new branch
	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/feature/7", branch)

	// The branch starts at the previous commit
	ref, err := gitRepo.Reference(plumbing.NewBranchReferenceName("feature/7"), true)
	require.NoError(t, err)
	assert.Equal(t, hash, ref.Hash())

	// main is untouched
	_, err = gitRepo.Reference(plumbing.NewBranchReferenceName("main"), true)
	require.NoError(t, err)
}

func TestCreateAndSwitchBranch_AlreadyExists(t *testing.T) {
	dir, _, _ := setupGitRepo(t)
	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAndSwitchBranch("feature/7"))

	err = repo.CreateAndSwitchBranch("feature/7")
	assert.ErrorIs(t, err, domain.ErrBranchAlreadyExists)
}

func TestCreateAndSwitchBranch_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	repo, err := Open(dir)
	require.NoError(t, err)

	err = repo.CreateAndSwitchBranch("feature/7")
	assert.ErrorIs(t, err, domain.ErrDetachedHead)
}

func TestCreateAndSwitchBranch_KeepsLocalChanges(t *testing.T) {
	dir, _, _ := setupGitRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test\nwork in progress\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch\n"), 0o644))
	repo, err := Open(dir)
	require.NoError(t, err)

	err = repo.CreateAndSwitchBranch("feature/7")
	require.NoError(t, err)

	// Modified and untracked files survive the switch
	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Test\nwork in progress\n", string(readme))
	notes, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "scratch\n", string(notes))

	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/feature/7", branch)
}

func TestCreateAndSwitchBranch_CheckoutFailed(t *testing.T) {
	dir, _, hash := setupGitRepo(t)
	// Drop the commit object so the checkout cannot resolve the branch tip
	h := hash.String()
	require.NoError(t, os.Remove(filepath.Join(dir, ".git", "objects", h[:2], h[2:])))
	repo, err := Open(dir)
	require.NoError(t, err)

	err = repo.CreateAndSwitchBranch("feature/7")
	assert.ErrorIs(t, err, domain.ErrCheckoutFailed)

	// The branch is created even though HEAD did not move
	reopened, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	ref, err := reopened.Reference(plumbing.NewBranchReferenceName("feature/7"), false)
	require.NoError(t, err)
	assert.Equal(t, hash, ref.Hash())
	head, err := reopened.Head()
	require.NoError(t, err)
	assert.Equal(t, plumbing.NewBranchReferenceName("main"), head.Name())
}
