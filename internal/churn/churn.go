// Package churn ranks paths by recent change volume, linearly discounting
// older commits inside a trailing window.
package churn

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

// Entry is the accumulated churn of one path. Churn is decay-weighted;
// Adds, Dels, and Touches stay raw so the weighting remains inspectable.
type Entry struct {
	Path    string  `json:"path"`
	Churn   float64 `json:"churn"`
	Adds    int     `json:"adds"`
	Dels    int     `json:"dels"`
	Touches int     `json:"touches"`
}

// Estimator computes windowed, decay-weighted churn from one sequential
// history walk.
type Estimator struct {
	// WindowDays is the trailing window length. Values <= 0 disable both
	// the age cutoff and decay (every commit weighs 1).
	WindowDays int
	// Now anchors commit ages. The CLI passes wall-clock time; tests pin
	// it for reproducibility.
	Now time.Time
	Log *logrus.Logger
}

// weight returns the linear decay for a commit of the given age: 1 at age
// zero, 0 at the window boundary.
func (e *Estimator) weight(ageDays float64) float64 {
	if e.WindowDays <= 0 {
		return 1
	}
	w := (float64(e.WindowDays) - ageDays) / float64(e.WindowDays)
	if w < 0 {
		return 0
	}
	return w
}

// FileEntries walks the history once and returns per-file churn, sorted by
// churn descending. Commits older than the window are skipped before their
// diff is computed; unresolvable commits are skipped silently.
func (e *Estimator) FileEntries(repo *gitrepo.Repo, opts scan.Options) ([]Entry, error) {
	now := e.Now
	if now.IsZero() {
		now = time.Now()
	}
	var cutoff time.Time
	if e.WindowDays > 0 {
		cutoff = now.AddDate(0, 0, -e.WindowDays)
	}

	byFile := make(map[string]*Entry)
	err := repo.WalkCommits(0, func(c *gitrepo.Commit) error {
		if c.IsRoot() {
			return nil
		}
		if !cutoff.IsZero() && c.When.Before(cutoff) {
			return nil
		}
		stats, err := c.ChangeStats()
		if err != nil {
			if e.Log != nil {
				e.Log.WithField("commit", c.Hash).WithError(err).Debug("skipping unresolvable commit")
			}
			return nil
		}
		ageDays := now.Sub(c.When).Hours() / 24
		if ageDays < 0 {
			ageDays = 0
		}
		w := e.weight(ageDays)
		for _, st := range stats {
			if !opts.Included(st.Path) {
				continue
			}
			// rename or mode-only delta with nothing to weigh
			if st.Adds == 0 && st.Dels == 0 && st.Context == 0 {
				continue
			}
			entry := byFile[st.Path]
			if entry == nil {
				entry = &Entry{Path: st.Path}
				byFile[st.Path] = entry
			}
			entry.Churn += float64(st.Adds+st.Dels) * w
			entry.Adds += st.Adds
			entry.Dels += st.Dels
			entry.Touches++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(byFile))
	for _, entry := range byFile {
		if entry.Touches < opts.MinTotal {
			continue
		}
		entries = append(entries, *entry)
	}
	SortEntries(entries)
	return entries, nil
}

// DirectoryEntries rolls file churn up to directory keys at the given
// depth. Churn is author-agnostic, so the rollup just sums every counter.
func (e *Estimator) DirectoryEntries(repo *gitrepo.Repo, opts scan.Options, depth int) ([]Entry, error) {
	files, err := e.FileEntries(repo, opts)
	if err != nil {
		return nil, err
	}
	byDir := make(map[string]*Entry)
	for _, f := range files {
		key := scan.DirKey(f.Path, depth)
		entry := byDir[key]
		if entry == nil {
			entry = &Entry{Path: key}
			byDir[key] = entry
		}
		entry.Churn += f.Churn
		entry.Adds += f.Adds
		entry.Dels += f.Dels
		entry.Touches += f.Touches
	}
	entries := make([]Entry, 0, len(byDir))
	for _, entry := range byDir {
		entries = append(entries, *entry)
	}
	SortEntries(entries)
	return entries, nil
}

// SortEntries orders by churn descending, ties by touches descending, then
// by path ascending for deterministic output.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Churn != b.Churn {
			return a.Churn > b.Churn
		}
		if a.Touches != b.Touches {
			return a.Touches > b.Touches
		}
		return a.Path < b.Path
	})
}
