// Package gitrepo is the read-only history provider for all scans. It wraps
// go-git with the small surface the scorers need: tracked-file enumeration,
// per-line attribution, and a reverse-chronological commit walk with
// first-parent diffs.
//
// A Repo value must not be shared across goroutines; concurrent workers each
// open their own handle (Open is cheap relative to blame or diff cost).
package gitrepo

import (
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	gerrors "github.com/gitgauge/gitgauge-go/internal/errors"
)

// UnknownAuthor is the identity assigned to commits and blame lines whose
// author email is empty.
const UnknownAuthor = "unknown"

// Repo is a read handle on one local repository.
type Repo struct {
	repo *git.Repository
	path string
}

// Open opens the repository at or above path, the same discovery behavior
// as running git inside a subdirectory. Failure is a fatal setup error.
func Open(path string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, gerrors.WrapSetup(err, "cannot open repository", path)
	}
	return &Repo{repo: r, path: path}, nil
}

// Path returns the path the handle was opened with.
func (r *Repo) Path() string {
	return r.path
}

func (r *Repo) headCommit() (*object.Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, gerrors.WrapSetup(err, "cannot resolve HEAD", r.path)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, gerrors.WrapSetup(err, "cannot resolve HEAD commit", ref.Hash().String())
	}
	return commit, nil
}

// Files enumerates all tracked paths at the current revision.
func (r *Repo) Files() ([]string, error) {
	commit, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, gerrors.WrapSetup(err, "cannot resolve HEAD tree", commit.Hash.String())
	}
	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, gerrors.WrapSetup(err, "cannot list tracked files", r.path)
	}
	return files, nil
}

// authorIdentity normalizes a commit or blame author email. Imported or
// scripted commits sometimes carry empty emails.
func authorIdentity(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return UnknownAuthor
	}
	return email
}
