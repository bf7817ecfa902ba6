package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitgauge/gitgauge-go/internal/scan"
)

func TestScoreRatioAndTotal(t *testing.T) {
	c := newContrib("src/a.go", map[string]int{"x@io": 10, "y@io": 2, "z@io": 3})

	s, ok := c.score()
	require.True(t, ok)
	assert.Equal(t, "x@io", s.TopAuthor)
	assert.Equal(t, 15, s.Total, "total equals the sum of the per-author map")
	assert.InDelta(t, 10.0/15.0, s.Ratio, 1e-12)
	assert.GreaterOrEqual(t, s.Ratio, 0.0)
	assert.LessOrEqual(t, s.Ratio, 1.0)
}

func TestScoreEmpty(t *testing.T) {
	_, ok := newContrib("a.go", map[string]int{}).score()
	assert.False(t, ok)
}

func TestScoreTieBreaksOnAuthor(t *testing.T) {
	// equal counts resolve to the lexicographically smaller identity,
	// independent of map iteration order
	for i := 0; i < 50; i++ {
		c := newContrib("a.go", map[string]int{"zed@io": 7, "amy@io": 7, "mid@io": 7})
		s, ok := c.score()
		require.True(t, ok)
		assert.Equal(t, "amy@io", s.TopAuthor)
	}
}

func TestAggregateDirsUsesPerAuthorSums(t *testing.T) {
	// Per-file winners would average A (10/12) and B (13/18); the correct
	// directory share sums per-author maps first: x has 15 of 30.
	contribs := []contrib{
		newContrib("d/a.go", map[string]int{"x": 10, "y": 2}),
		newContrib("d/b.go", map[string]int{"x": 5, "y": 13}),
	}

	scores := aggregateDirs(contribs, 1, scan.NewOptions(false, nil, 0, nil))
	require.Len(t, scores, 1)
	assert.Equal(t, "d", scores[0].Path)
	assert.Equal(t, "x", scores[0].TopAuthor)
	assert.Equal(t, 30, scores[0].Total)
	assert.InDelta(t, 0.5, scores[0].Ratio, 1e-12)
}

func TestAggregateDirsRootSentinel(t *testing.T) {
	contribs := []contrib{newContrib("main.go", map[string]int{"x": 4})}

	scores := aggregateDirs(contribs, 2, scan.NewOptions(false, nil, 0, nil))
	require.Len(t, scores, 1)
	assert.Equal(t, ".", scores[0].Path)
}

func TestAggregateDirsMinTotal(t *testing.T) {
	contribs := []contrib{
		newContrib("d/a.go", map[string]int{"x": 3}),
		newContrib("d/b.go", map[string]int{"y": 4}),
	}

	scores := aggregateDirs(contribs, 1, scan.NewOptions(false, nil, 10, nil))
	assert.Empty(t, scores, "directories under the minimum total are dropped")
}
