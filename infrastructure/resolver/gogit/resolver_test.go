//go:build unit

package gogit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsleuth/gitsleuth/domain"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver/gogit"
)

// initRepo creates a repository with an "origin" remote in a temp dir.
func initRepo(t *testing.T, remoteURL string) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	})
	require.NoError(t, err)

	return dir, repo
}

// commitFile creates one commit so that HEAD resolves to a branch.
func commitFile(t *testing.T, dir string, repo *git.Repository) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi\n"), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("should read the origin remote URL", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t, "https://github.com/foo/bar.git")
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/foo/bar.git", identity.URL)
	})

	t.Run("should leave branch absent in an unborn repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t, "https://github.com/foo/bar.git")
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Empty(t, identity.Branch)
	})

	t.Run("should use the branch HEAD points to", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepo(t, "https://github.com/foo/bar.git")
		commitFile(t, dir, repo)
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "master", identity.Branch)
	})

	t.Run("should prefer the tracking configuration of the current branch", func(t *testing.T) {
		t.Parallel()

		// given
		dir, repo := initRepo(t, "https://github.com/foo/bar.git")
		commitFile(t, dir, repo)

		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "upstream",
			URLs: []string{"https://github.com/other/fork.git"},
		})
		require.NoError(t, err)
		require.NoError(t, repo.CreateBranch(&gitconfig.Branch{
			Name:   "master",
			Remote: "upstream",
			Merge:  plumbing.ReferenceName("refs/heads/main"),
		}))
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/other/fork.git", identity.URL)
		assert.Equal(t, "main", identity.Branch)
	})

	t.Run("should expand SCP-style remote URL", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t, "git@github.com:foo/bar.git")
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "ssh://git@github.com:22/foo/bar.git", identity.URL)
	})

	t.Run("should detect the repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepo(t, "https://github.com/foo/bar.git")
		sub := filepath.Join(dir, "nested", "deep")
		require.NoError(t, os.MkdirAll(sub, 0o750))
		resolver := gogit.New()

		// when
		identity, err := resolver.Resolve(context.Background(), sub)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/foo/bar.git", identity.URL)
	})

	t.Run("should fail when no origin remote is configured", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		resolver := gogit.New()

		// when
		_, err = resolver.Resolve(context.Background(), dir)

		// then
		var detectErr *domain.DetectionError
		require.ErrorAs(t, err, &detectErr)
		assert.Contains(t, err.Error(), `No remote "origin" configured`)
	})

	t.Run("should fail when the directory is not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := gogit.New()

		// when
		_, err := resolver.Resolve(context.Background(), t.TempDir())

		// then
		var runErr *domain.CommandRunError
		require.ErrorAs(t, err, &runErr)
	})
}
