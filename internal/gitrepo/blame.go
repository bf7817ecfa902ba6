package gitrepo

import (
	git "github.com/go-git/go-git/v5"

	gerrors "github.com/gitgauge/gitgauge-go/internal/errors"
)

// BlameCounts attributes every line of the file's current revision to the
// author that last touched it and returns per-author line counts. Errors
// (binary file, path deleted in working tree, unreadable object) are
// per-path: callers skip the file and keep scanning.
func BlameCounts(r *Repo, path string) (map[string]int, error) {
	commit, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	blame, err := git.Blame(commit, path)
	if err != nil {
		return nil, gerrors.Path(err, path)
	}
	counts := make(map[string]int)
	for _, line := range blame.Lines {
		counts[authorIdentity(line.Author)]++
	}
	return counts, nil
}
