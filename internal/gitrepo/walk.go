package gitrepo

import (
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	gerrors "github.com/gitgauge/gitgauge-go/internal/errors"
)

// ErrStop terminates a walk early without reporting an error.
var ErrStop = storer.ErrStop

// Commit is one visited commit in a history walk. Diffs are computed lazily
// against the first parent, so walkers that reject a commit by age or cap
// never pay for its diff.
type Commit struct {
	Hash   string
	Author string
	Name   string
	When   time.Time

	commit *object.Commit
}

// IsRoot reports whether the commit has no parent. Root commits contribute
// no first-parent diff.
func (c *Commit) IsRoot() bool {
	return c.commit.NumParents() == 0
}

// Change is one changed path in a commit's first-parent diff.
type Change struct {
	Path    string
	Adds    int
	Dels    int
	Context int
	Binary  bool
}

// WalkCommits traverses the commit graph from HEAD in reverse-chronological
// order, invoking fn for each commit. A positive limit stops the walk after
// that many commits have been visited, qualifying or not.
func (r *Repo) WalkCommits(limit int, fn func(*Commit) error) error {
	iter, err := r.repo.Log(&git.LogOptions{Order: git.LogOrderCommitterTime})
	if err != nil {
		return gerrors.WrapSetup(err, "cannot walk commit history", r.path)
	}
	defer iter.Close()

	seen := 0
	return iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && seen >= limit {
			return storer.ErrStop
		}
		seen++
		return fn(&Commit{
			Hash:   c.Hash.String(),
			Author: authorIdentity(c.Author.Email),
			Name:   c.Author.Name,
			When:   c.Author.When,
			commit: c,
		})
	})
}

func (c *Commit) firstParentChanges() (object.Changes, error) {
	parent, err := c.commit.Parent(0)
	if err != nil {
		return nil, gerrors.Commit(err, c.Hash)
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, gerrors.Commit(err, c.Hash)
	}
	tree, err := c.commit.Tree()
	if err != nil {
		return nil, gerrors.Commit(err, c.Hash)
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, gerrors.Commit(err, c.Hash)
	}
	return changes, nil
}

func changeName(ch *object.Change) string {
	if ch.To.Name != "" {
		return ch.To.Name
	}
	return ch.From.Name
}

// ChangedPaths returns the paths touched by the commit relative to its
// first parent, without line stats. Root commits yield nothing.
func (c *Commit) ChangedPaths() ([]string, error) {
	if c.IsRoot() {
		return nil, nil
	}
	changes, err := c.firstParentChanges()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(changes))
	for _, ch := range changes {
		if name := changeName(ch); name != "" {
			paths = append(paths, name)
		}
	}
	return paths, nil
}

// ChangeStats returns the commit's first-parent diff with per-path added,
// deleted, and context line counts. Changes whose patch cannot be computed
// are dropped rather than failing the commit.
func (c *Commit) ChangeStats() ([]Change, error) {
	if c.IsRoot() {
		return nil, nil
	}
	changes, err := c.firstParentChanges()
	if err != nil {
		return nil, err
	}
	stats := make([]Change, 0, len(changes))
	for _, ch := range changes {
		name := changeName(ch)
		if name == "" {
			continue
		}
		patch, err := ch.Patch()
		if err != nil {
			continue
		}
		stat := Change{Path: name}
		for _, fp := range patch.FilePatches() {
			if fp.IsBinary() {
				stat.Binary = true
				continue
			}
			for _, chunk := range fp.Chunks() {
				n := countLines(chunk.Content())
				switch chunk.Type() {
				case fdiff.Add:
					stat.Adds += n
				case fdiff.Delete:
					stat.Dels += n
				case fdiff.Equal:
					stat.Context += n
				}
			}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
