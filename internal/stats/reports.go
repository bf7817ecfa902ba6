package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
)

// FileContributions counts, per file, how many commits each author touched
// it in. Root commits contribute no diff and unresolvable commits are
// skipped.
func FileContributions(repo *gitrepo.Repo) (map[string]map[string]int, error) {
	out := make(map[string]map[string]int)
	err := repo.WalkCommits(0, func(c *gitrepo.Commit) error {
		paths, err := c.ChangedPaths()
		if err != nil {
			return nil
		}
		for _, path := range paths {
			byAuthor := out[path]
			if byAuthor == nil {
				byAuthor = make(map[string]int)
				out[path] = byAuthor
			}
			byAuthor[c.Author]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TimeBucket labels a commit's local time of day.
func TimeBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h <= 5:
		return "night"
	case h <= 11:
		return "morning"
	case h <= 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// CommitTimes buckets each author's commits into night, morning, afternoon,
// and evening.
func CommitTimes(repo *gitrepo.Repo) (map[string]map[string]int, error) {
	out := make(map[string]map[string]int)
	err := repo.WalkCommits(0, func(c *gitrepo.Commit) error {
		buckets := out[c.Author]
		if buckets == nil {
			buckets = make(map[string]int)
			out[c.Author] = buckets
		}
		buckets[TimeBucket(c.When)]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FirstCommits returns each author's earliest commit date.
func FirstCommits(repo *gitrepo.Repo) (map[string]time.Time, error) {
	firsts := make(map[string]time.Time)
	err := repo.WalkCommits(0, func(c *gitrepo.Commit) error {
		if first, ok := firsts[c.Author]; !ok || c.When.Before(first) {
			firsts[c.Author] = c.When
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return firsts, nil
}

// CoauthorPair is a pair of authors and the number of files both touched.
type CoauthorPair struct {
	Pair        string `json:"pair"`
	SharedFiles int    `json:"shared_files"`
}

// TopCoauthors ranks author pairs by how many files both have touched.
func TopCoauthors(repo *gitrepo.Repo) ([]CoauthorPair, error) {
	contribs, err := FileContributions(repo)
	if err != nil {
		return nil, err
	}
	pairs := make(map[string]int)
	for _, byAuthor := range contribs {
		authors := make([]string, 0, len(byAuthor))
		for a := range byAuthor {
			authors = append(authors, a)
		}
		sort.Strings(authors)
		for i := 0; i < len(authors); i++ {
			for j := i + 1; j < len(authors); j++ {
				pairs[fmt.Sprintf("%s + %s", authors[i], authors[j])]++
			}
		}
	}
	out := make([]CoauthorPair, 0, len(pairs))
	for pair, n := range pairs {
		out = append(out, CoauthorPair{Pair: pair, SharedFiles: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SharedFiles != out[j].SharedFiles {
			return out[i].SharedFiles > out[j].SharedFiles
		}
		return out[i].Pair < out[j].Pair
	})
	return out, nil
}
