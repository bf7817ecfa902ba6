// Package ranking orders ownership scores and splits them against a risk
// threshold. Minimum-size filtering happens earlier, inside the scorers.
package ranking

import (
	"fmt"
	"sort"

	gerrors "github.com/gitgauge/gitgauge-go/internal/errors"
	"github.com/gitgauge/gitgauge-go/internal/ownership"
)

// Result is a ranked, partitioned score set. Candidates holds every score
// in rank order; Matches is the subset whose ratio strictly exceeds the
// threshold, in the same order.
type Result struct {
	Matches    []ownership.Score
	Candidates []ownership.Score
}

// Sort orders scores by ratio descending, ties by total descending, then by
// path ascending so output is deterministic across runs.
func Sort(scores []ownership.Score) {
	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Ratio != b.Ratio {
			return a.Ratio > b.Ratio
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Path < b.Path
	})
}

// ValidateThreshold rejects thresholds outside [0,1] as fatal setup errors,
// so callers can refuse an invocation before any scoring begins.
func ValidateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return gerrors.Setup("threshold must be in [0.0, 1.0]", fmt.Sprintf("%g", threshold))
	}
	return nil
}

// Rank validates the threshold, sorts the scores in place, and partitions
// them.
func Rank(scores []ownership.Score, threshold float64) (Result, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return Result{}, err
	}
	Sort(scores)
	res := Result{Candidates: scores}
	for _, s := range scores {
		if s.Ratio > threshold {
			res.Matches = append(res.Matches, s)
		}
	}
	return res, nil
}
