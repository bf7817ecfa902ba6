// Package stats holds the single-pass counter reports: per-author commit
// totals and date ranges, time-of-day buckets, per-file contribution
// heatmaps, first commits, and co-author pairing. Nothing here needs more
// than one walk and a map.
package stats

import (
	"sort"
	"time"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
)

// AuthorMeta summarizes one author's activity.
type AuthorMeta struct {
	Author string    `json:"author"`
	Count  int       `json:"commits"`
	First  time.Time `json:"first"`
	Last   time.Time `json:"last"`
}

// CommitStats is the per-author commit summary of a walk.
type CommitStats struct {
	TotalSeen int
	Authors   map[string]*AuthorMeta
}

// Collect walks history gathering per-author commit counts and first/last
// dates. A non-zero since drops older commits; limit caps the number of
// qualifying commits (0 means unlimited).
func Collect(repo *gitrepo.Repo, limit int, since time.Time) (*CommitStats, error) {
	cs := &CommitStats{Authors: make(map[string]*AuthorMeta)}
	err := repo.WalkCommits(0, func(c *gitrepo.Commit) error {
		if limit > 0 && cs.TotalSeen >= limit {
			return gitrepo.ErrStop
		}
		if !since.IsZero() && c.When.Before(since) {
			return nil
		}
		cs.TotalSeen++
		meta := cs.Authors[c.Author]
		if meta == nil {
			meta = &AuthorMeta{Author: c.Author, First: c.When, Last: c.When}
			cs.Authors[c.Author] = meta
		}
		meta.Count++
		if c.When.Before(meta.First) {
			meta.First = c.When
		}
		if c.When.After(meta.Last) {
			meta.Last = c.When
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// Sorted returns author summaries ordered by commit count, descending when
// desc is set, with author identity as the tie-break either way.
func (cs *CommitStats) Sorted(desc bool) []AuthorMeta {
	out := make([]AuthorMeta, 0, len(cs.Authors))
	for _, m := range cs.Authors {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			if desc {
				return out[i].Count > out[j].Count
			}
			return out[i].Count < out[j].Count
		}
		return out[i].Author < out[j].Author
	})
	return out
}

// CountCommits returns the total number of commits reachable from HEAD.
func CountCommits(repo *gitrepo.Repo) (int, error) {
	n := 0
	err := repo.WalkCommits(0, func(*gitrepo.Commit) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
