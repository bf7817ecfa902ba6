package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/gittest"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixture(t *testing.T) *gitrepo.Repo {
	t.Helper()
	r := gittest.Init(t)
	r.Commit(t, "Amy", "amy@io", t0, map[string]string{"a.go": gittest.Lines("package a")})
	r.Commit(t, "Bob", "bob@io", t0.AddDate(0, 0, 1), map[string]string{"b.go": gittest.Lines("package b")})
	r.Commit(t, "Amy", "amy@io", t0.AddDate(0, 0, 2), map[string]string{
		"a.go": gittest.Lines("package a", "// v2"),
		"b.go": gittest.Lines("package b", "// v2"),
	})
	repo, err := gitrepo.Open(r.Dir)
	require.NoError(t, err)
	return repo
}

func TestCollect(t *testing.T) {
	repo := fixture(t)

	cs, err := Collect(repo, 0, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, cs.TotalSeen)
	require.Contains(t, cs.Authors, "amy@io")
	amy := cs.Authors["amy@io"]
	assert.Equal(t, 2, amy.Count)
	assert.True(t, amy.First.Equal(t0))
	assert.True(t, amy.Last.Equal(t0.AddDate(0, 0, 2)))
}

func TestCollectSinceAndLimit(t *testing.T) {
	repo := fixture(t)

	cs, err := Collect(repo, 0, t0.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, cs.TotalSeen)
	require.Contains(t, cs.Authors, "amy@io")
	assert.Equal(t, 1, cs.Authors["amy@io"].Count, "only Amy's later commit qualifies")

	capped, err := Collect(repo, 1, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, capped.TotalSeen, "limit caps qualifying commits")
}

func TestSortedOrder(t *testing.T) {
	repo := fixture(t)
	cs, err := Collect(repo, 0, time.Time{})
	require.NoError(t, err)

	rows := cs.Sorted(true)
	require.Len(t, rows, 2)
	assert.Equal(t, "amy@io", rows[0].Author)
	assert.Equal(t, "bob@io", rows[1].Author)
}

func TestCountCommits(t *testing.T) {
	repo := fixture(t)
	n, err := CountCommits(repo)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFileContributions(t *testing.T) {
	repo := fixture(t)

	contribs, err := FileContributions(repo)
	require.NoError(t, err)

	// the root commit contributes no diff, so only later touches count
	assert.Equal(t, map[string]int{"amy@io": 1}, contribs["a.go"])
	assert.Equal(t, map[string]int{"bob@io": 1, "amy@io": 1}, contribs["b.go"])
}

func TestFirstCommits(t *testing.T) {
	repo := fixture(t)

	firsts, err := FirstCommits(repo)
	require.NoError(t, err)
	assert.True(t, firsts["amy@io"].Equal(t0))
	assert.True(t, firsts["bob@io"].Equal(t0.AddDate(0, 0, 1)))
}

func TestTimeBucket(t *testing.T) {
	assert.Equal(t, "night", TimeBucket(time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, "morning", TimeBucket(time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, "afternoon", TimeBucket(time.Date(2025, 1, 1, 17, 59, 0, 0, time.UTC)))
	assert.Equal(t, "evening", TimeBucket(time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)))
}

func TestTopCoauthors(t *testing.T) {
	repo := fixture(t)

	pairs, err := TopCoauthors(repo)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "amy@io + bob@io", pairs[0].Pair)
	assert.Equal(t, 1, pairs[0].SharedFiles)
}
