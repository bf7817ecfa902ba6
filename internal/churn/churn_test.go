package churn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/gittest"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

func TestWeightBoundaries(t *testing.T) {
	e := &Estimator{WindowDays: 90}

	assert.Equal(t, 1.0, e.weight(0), "a commit made at scan time weighs 1")
	assert.Equal(t, 0.0, e.weight(90), "a commit exactly window-days old weighs 0")
	assert.Equal(t, 0.0, e.weight(120), "weight never goes negative")
	assert.InDelta(t, 2.0/3.0, e.weight(30), 1e-12)
}

func TestWeightDisabledWindow(t *testing.T) {
	e := &Estimator{WindowDays: 0}
	assert.Equal(t, 1.0, e.weight(500), "window <= 0 disables decay")
}

func TestFileEntriesDecay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := gittest.Init(t)

	// root commit is outside the window and contributes no diff anyway
	r.Commit(t, "Amy", "amy@io", now.AddDate(0, 0, -200), map[string]string{
		"src/app.go": gittest.Lines("package main", "", "func main() {}"),
	})
	// one in-window rewrite, 30 days old
	r.Commit(t, "Bob", "bob@io", now.AddDate(0, 0, -30), map[string]string{
		"src/app.go": gittest.Lines("package main", "", "func main() { run() }"),
	})

	repo, err := gitrepo.Open(r.Dir)
	require.NoError(t, err)

	est := &Estimator{WindowDays: 90, Now: now}
	entries, err := est.FileEntries(repo, scan.NewOptions(false, nil, 1, nil))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "src/app.go", e.Path)
	assert.Equal(t, 1, e.Touches)
	assert.Greater(t, e.Adds+e.Dels, 0)
	assert.InDelta(t, float64(e.Adds+e.Dels)*(60.0/90.0), e.Churn, 1e-9,
		"churn is the raw change volume scaled by the linear decay weight")
}

func TestFileEntriesWindowCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := gittest.Init(t)

	r.Commit(t, "Amy", "amy@io", now.AddDate(0, 0, -400), map[string]string{
		"old.go": gittest.Lines("package old"),
	})
	r.Commit(t, "Amy", "amy@io", now.AddDate(0, 0, -200), map[string]string{
		"old.go": gittest.Lines("package old", "// stale"),
	})

	repo, err := gitrepo.Open(r.Dir)
	require.NoError(t, err)

	est := &Estimator{WindowDays: 90, Now: now}
	entries, err := est.FileEntries(repo, scan.NewOptions(false, nil, 1, nil))
	require.NoError(t, err)
	assert.Empty(t, entries, "commits older than the window are skipped before diffing")
}

func TestDirectoryEntriesRollup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := gittest.Init(t)

	r.Commit(t, "Amy", "amy@io", now.AddDate(0, 0, -60), map[string]string{
		"svc/api/a.go": gittest.Lines("package api"),
		"svc/api/b.go": gittest.Lines("package api"),
	})
	r.Commit(t, "Bob", "bob@io", now.AddDate(0, 0, -10), map[string]string{
		"svc/api/a.go": gittest.Lines("package api", "func A() {}"),
		"svc/api/b.go": gittest.Lines("package api", "func B() {}"),
	})

	repo, err := gitrepo.Open(r.Dir)
	require.NoError(t, err)

	est := &Estimator{WindowDays: 90, Now: now}
	files, err := est.FileEntries(repo, scan.NewOptions(false, nil, 1, nil))
	require.NoError(t, err)
	require.Len(t, files, 2)

	dirs, err := est.DirectoryEntries(repo, scan.NewOptions(false, nil, 1, nil), 2)
	require.NoError(t, err)
	require.Len(t, dirs, 1)

	d := dirs[0]
	assert.Equal(t, "svc/api", d.Path)
	assert.Equal(t, files[0].Touches+files[1].Touches, d.Touches)
	assert.Equal(t, files[0].Adds+files[1].Adds, d.Adds)
	assert.InDelta(t, files[0].Churn+files[1].Churn, d.Churn, 1e-9)
}

func TestSortEntriesDeterministic(t *testing.T) {
	entries := []Entry{
		{Path: "b.go", Churn: 5, Touches: 1},
		{Path: "a.go", Churn: 5, Touches: 1},
		{Path: "c.go", Churn: 9, Touches: 1},
	}
	SortEntries(entries)
	assert.Equal(t, "c.go", entries[0].Path)
	assert.Equal(t, "a.go", entries[1].Path)
	assert.Equal(t, "b.go", entries[2].Path)
}
