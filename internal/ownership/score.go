// Package ownership scores authorship concentration per path. Exact mode
// attributes every current line to its last-touching author via blame;
// heuristic mode counts per-commit touches from a single history walk as a
// cheap proxy. Both reconcile file-level attribution into directory rollups
// without re-deriving it.
package ownership

import "github.com/gitgauge/gitgauge-go/internal/scan"

// Mode labels which algorithm produced a result set.
type Mode string

const (
	ModeExact     Mode = "exact"
	ModeHeuristic Mode = "heuristic"
)

// Granularity labels whether scores describe files or directory rollups.
type Granularity string

const (
	ByFile Granularity = "file"
	ByDir  Granularity = "dir"
)

// Score is the ownership concentration of one path. Ratio is the dominant
// author's share of Total, which counts lines in exact mode and touches in
// heuristic mode.
type Score struct {
	Path      string  `json:"path"`
	TopAuthor string  `json:"top_author"`
	Ratio     float64 `json:"ratio"`
	Total     int     `json:"total"`
}

// contrib is one path's per-author contribution map, the intermediate every
// scorer builds before extracting a winner or folding into a directory.
type contrib struct {
	path   string
	counts map[string]int
	total  int
}

func newContrib(path string, counts map[string]int) contrib {
	total := 0
	for _, n := range counts {
		total += n
	}
	return contrib{path: path, counts: counts, total: total}
}

// score extracts the dominant author and ratio. Exact count ties break on
// ascending author identity so results are stable across map iteration
// orders. Returns false for an empty map.
func (c contrib) score() (Score, bool) {
	if c.total <= 0 {
		return Score{}, false
	}
	top := ""
	topCount := -1
	for author, n := range c.counts {
		if n > topCount || (n == topCount && author < top) {
			top = author
			topCount = n
		}
	}
	return Score{
		Path:      c.path,
		TopAuthor: top,
		Ratio:     float64(topCount) / float64(c.total),
		Total:     c.total,
	}, true
}

// aggregateDirs folds full per-author maps into directory accumulators at
// the given depth, then rescores over the summed maps. Attribution is never
// collapsed to file-level winners first: the dominant share of a directory
// is computed over every author's summed contribution, which is not the
// same number as an average of per-file winners.
func aggregateDirs(contribs []contrib, depth int, opts scan.Options) []Score {
	dirCounts := make(map[string]map[string]int)
	for _, c := range contribs {
		key := scan.DirKey(c.path, depth)
		acc := dirCounts[key]
		if acc == nil {
			acc = make(map[string]int)
			dirCounts[key] = acc
		}
		for author, n := range c.counts {
			acc[author] += n
		}
	}
	scores := make([]Score, 0, len(dirCounts))
	for dir, counts := range dirCounts {
		c := newContrib(dir, counts)
		if c.total < opts.MinTotal {
			continue
		}
		if s, ok := c.score(); ok {
			scores = append(scores, s)
		}
	}
	return scores
}
