// Package gittest builds throwaway repositories for scanner tests.
package gittest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is a scratch repository rooted in a test temp directory.
type Repo struct {
	Dir string

	repo *git.Repository
	wt   *git.Worktree
}

// Init creates an empty repository under t.TempDir().
func Init(t *testing.T) *Repo {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return &Repo{Dir: dir, repo: repo, wt: wt}
}

// Commit writes the given files (path -> content), stages them, and commits
// as the given author at the given time. Author and committer timestamps
// are both pinned so walk order is deterministic.
func (r *Repo) Commit(t *testing.T, name, email string, when time.Time, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(r.Dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		_, err := r.wt.Add(path)
		require.NoError(t, err)
	}
	sig := &object.Signature{Name: name, Email: email, When: when}
	_, err := r.wt.Commit("update "+when.Format(time.RFC3339), &git.CommitOptions{
		Author:    sig,
		Committer: sig,
	})
	require.NoError(t, err)
}

// Lines joins lines with newlines, ending with a trailing newline.
func Lines(lines ...string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
