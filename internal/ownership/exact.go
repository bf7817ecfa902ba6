package ownership

import (
	"context"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

// ExactScanner scores ownership from per-line attribution. Blaming each
// file is independent of every other file, so the scanner fans out across
// workers; repository handles are not shared between goroutines, so every
// task opens its own.
type ExactScanner struct {
	// RepoPath is the repository location each worker opens independently.
	RepoPath string
	// Workers caps concurrent blame tasks. Zero means runtime.NumCPU().
	Workers int
	Log     *logrus.Logger
}

func (s *ExactScanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.NumCPU()
}

// fileContribs blames every qualifying tracked file and returns full
// per-author contribution maps. Files under MinTotal or failing attribution
// are dropped. Results are collected only after all workers finish.
func (s *ExactScanner) fileContribs(ctx context.Context, opts scan.Options) ([]contrib, error) {
	repo, err := gitrepo.Open(s.RepoPath)
	if err != nil {
		return nil, err
	}
	files, err := repo.Files()
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		contribs []contrib
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for _, file := range files {
		if !opts.Included(file) {
			continue
		}
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// one handle per task; handles are not goroutine-safe
			repo, err := gitrepo.Open(s.RepoPath)
			if err != nil {
				return err
			}
			counts, err := gitrepo.BlameCounts(repo, file)
			if err != nil {
				if s.Log != nil {
					s.Log.WithField("path", file).WithError(err).Debug("skipping unattributable file")
				}
				return nil
			}
			c := newContrib(file, counts)
			if c.total < opts.MinTotal {
				return nil
			}
			mu.Lock()
			contribs = append(contribs, c)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contribs, nil
}

// FileScores computes per-file ownership scores in exact mode.
func (s *ExactScanner) FileScores(ctx context.Context, opts scan.Options) ([]Score, error) {
	contribs, err := s.fileContribs(ctx, opts)
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

// DirectoryScores computes directory rollups in exact mode. The fold runs
// sequentially over the fully collected file contributions, after the
// parallel fan-out has completed.
func (s *ExactScanner) DirectoryScores(ctx context.Context, opts scan.Options, depth int) ([]Score, error) {
	contribs, err := s.fileContribs(ctx, opts)
	if err != nil {
		return nil, err
	}
	return aggregateDirs(contribs, depth, opts), nil
}
