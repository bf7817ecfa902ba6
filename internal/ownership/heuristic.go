package ownership

import (
	"github.com/sirupsen/logrus"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

// HeuristicScanner approximates ownership by touch counts: the number of
// commits in which an author modified a path. One sequential walk of the
// commit graph replaces per-file blame, trading precision for
// O(commits x changed-files) cost.
type HeuristicScanner struct {
	// MaxCommits bounds the walk to the most recent N commits visited,
	// qualifying or not. Zero walks the full history.
	MaxCommits int
	Log        *logrus.Logger
}

// touchContribs walks history once, counting per-(path, author) touches for
// every changed path that passes the filter. Root commits contribute no
// diff; unresolvable commits are skipped, never fatal.
func (s *HeuristicScanner) touchContribs(repo *gitrepo.Repo, opts scan.Options) (map[string]map[string]int, error) {
	touches := make(map[string]map[string]int)
	err := repo.WalkCommits(s.MaxCommits, func(c *gitrepo.Commit) error {
		paths, err := c.ChangedPaths()
		if err != nil {
			if s.Log != nil {
				s.Log.WithField("commit", c.Hash).WithError(err).Debug("skipping unresolvable commit")
			}
			return nil
		}
		for _, path := range paths {
			if !opts.Included(path) {
				continue
			}
			byAuthor := touches[path]
			if byAuthor == nil {
				byAuthor = make(map[string]int)
				touches[path] = byAuthor
			}
			byAuthor[c.Author]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return touches, nil
}

func (s *HeuristicScanner) contribs(repo *gitrepo.Repo, opts scan.Options) ([]contrib, error) {
	touches, err := s.touchContribs(repo, opts)
	if err != nil {
		return nil, err
	}
	contribs := make([]contrib, 0, len(touches))
	for path, counts := range touches {
		c := newContrib(path, counts)
		if c.total < opts.MinTotal {
			continue
		}
		contribs = append(contribs, c)
	}
	return contribs, nil
}

// FileScores computes per-file ownership scores over touch counts.
func (s *HeuristicScanner) FileScores(repo *gitrepo.Repo, opts scan.Options) ([]Score, error) {
	contribs, err := s.contribs(repo, opts)
	if err != nil {
		return nil, err
	}
	scores := make([]Score, 0, len(contribs))
	for _, c := range contribs {
		if sc, ok := c.score(); ok {
			scores = append(scores, sc)
		}
	}
	return scores, nil
}

// DirectoryScores folds the same walk's per-author touch maps into
// directory rollups.
func (s *HeuristicScanner) DirectoryScores(repo *gitrepo.Repo, opts scan.Options, depth int) ([]Score, error) {
	contribs, err := s.contribs(repo, opts)
	if err != nil {
		return nil, err
	}
	return aggregateDirs(contribs, depth, opts), nil
}
