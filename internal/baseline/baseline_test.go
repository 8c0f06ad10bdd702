package baseline_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/internal/baseline"
)

func initRepoWithTwoCommits(t *testing.T) (root, baseRef string) {
	t.Helper()
	root = t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	writeAndCommit := func(rel, content, message string) string {
		abs := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
		_, err := wt.Add(rel)
		require.NoError(t, err)
		hash, err := wt.Commit(message, &git.CommitOptions{Author: &object.Signature{
			Name: "test", Email: "test@example.com", When: time.Unix(0, 0),
		}})
		require.NoError(t, err)
		return hash.String()
	}

	baseRef = writeAndCommit("unchanged.go", "package x\n", "initial")
	writeAndCommit("changed.go", "package x\nfunc A() {}\n", "second")

	return root, baseRef
}

func TestChangedFiles_ReturnsFilesTouchedSinceRef(t *testing.T) {
	root, baseRef := initRepoWithTwoCommits(t)

	changed, err := baseline.ChangedFiles(root, baseRef)
	require.NoError(t, err)

	assert.True(t, changed["changed.go"])
	assert.False(t, changed["unchanged.go"])
}

func TestChangedFiles_NotAGitRepositoryReturnsInputError(t *testing.T) {
	_, err := baseline.ChangedFiles(t.TempDir(), "HEAD")
	require.Error(t, err)
}

func TestChangedFiles_UnresolvableRefReturnsError(t *testing.T) {
	root, _ := initRepoWithTwoCommits(t)
	_, err := baseline.ChangedFiles(root, "refs/heads/does-not-exist")
	require.Error(t, err)
}
