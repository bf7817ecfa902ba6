package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/output"
	"github.com/gitgauge/gitgauge-go/internal/ownership"
	"github.com/gitgauge/gitgauge-go/internal/ranking"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

var (
	bfPath       string
	bfThreshold  float64
	bfFast       bool
	bfBy         string
	bfDepth      int
	bfAll        bool
	bfIncludeExt []string
	bfMinTotal   int
	bfMaxCommits int
	bfWorkers    int
	bfLimit      int
)

var busFactorCmd = &cobra.Command{
	Use:   "bus-factor",
	Short: "Score ownership concentration per file or directory",
	Long: `Scores how concentrated authorship is for each path. Exact mode blames
every file in parallel; --fast trades precision for a single history walk
that counts per-commit touches instead of lines.`,
	RunE: runBusFactor,
}

func init() {
	f := busFactorCmd.Flags()
	f.StringVarP(&bfPath, "path", "p", ".", "path to the git repo")
	f.Float64Var(&bfThreshold, "threshold", 0, "ownership ratio above which a path is flagged (0..1)")
	f.BoolVar(&bfFast, "fast", false, "heuristic touch-count mode (one history walk, no blame)")
	f.StringVar(&bfBy, "by", "file", "granularity: file or dir")
	f.IntVar(&bfDepth, "depth", 0, "directory key depth for --by dir")
	f.BoolVar(&bfAll, "all", false, "include all tracked files, ignoring the extension allow-list")
	f.StringSliceVar(&bfIncludeExt, "include-ext", nil, "extra extensions to include")
	f.IntVar(&bfMinTotal, "min-total", 0, "minimum lines/touches for a path to be reported")
	f.IntVar(&bfMaxCommits, "max-commits", 0, "cap the heuristic walk to the most recent N commits")
	f.IntVar(&bfWorkers, "workers", 0, "parallel blame workers (0 = number of CPUs)")
	f.IntVar(&bfLimit, "limit", 0, "max candidate rows to emit")
}

func runBusFactor(cmd *cobra.Command, args []string) error {
	if err := validateBy(bfBy); err != nil {
		return err
	}
	threshold := bfThreshold
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.Ownership.Threshold
	}
	if err := ranking.ValidateThreshold(threshold); err != nil {
		return err
	}

	minTotal := bfMinTotal
	if !cmd.Flags().Changed("min-total") {
		minTotal = cfg.Ownership.MinTotal
	}
	depth := bfDepth
	if depth == 0 {
		depth = cfg.Scan.Depth
	}
	workers := bfWorkers
	if workers == 0 {
		workers = cfg.Ownership.Workers
	}
	maxCommits := bfMaxCommits
	if maxCommits == 0 {
		maxCommits = cfg.Ownership.MaxCommits
	}
	limit := bfLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	opts := scan.NewOptions(
		bfAll || cfg.Scan.IncludeAll,
		append(append([]string{}, cfg.Scan.ExtraExtensions...), bfIncludeExt...),
		minTotal,
		nil,
	)

	mode := ownership.ModeExact
	by := ownership.ByFile
	if bfBy == "dir" {
		by = ownership.ByDir
	}

	var (
		scores []ownership.Score
		err    error
	)
	if bfFast {
		mode = ownership.ModeHeuristic
		repo, oerr := gitrepo.Open(bfPath)
		if oerr != nil {
			return oerr
		}
		hs := &ownership.HeuristicScanner{MaxCommits: maxCommits, Log: logger}
		if by == ownership.ByDir {
			scores, err = hs.DirectoryScores(repo, opts, depth)
		} else {
			scores, err = hs.FileScores(repo, opts)
		}
	} else {
		es := &ownership.ExactScanner{RepoPath: bfPath, Workers: workers, Log: logger}
		if by == ownership.ByDir {
			scores, err = es.DirectoryScores(cmd.Context(), opts, depth)
		} else {
			scores, err = es.FileScores(cmd.Context(), opts)
		}
	}
	if err != nil {
		return err
	}

	res, err := ranking.Rank(scores, threshold)
	if err != nil {
		return err
	}
	if limit > 0 && len(res.Candidates) > limit {
		res.Candidates = res.Candidates[:limit]
	}

	doc := &output.OwnershipDoc{
		Mode:       mode,
		By:         by,
		Threshold:  threshold,
		Matches:    res.Matches,
		Candidates: res.Candidates,
	}
	if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
		return output.WriteJSON(os.Stdout, doc)
	}
	return output.OwnershipTable(os.Stdout, doc)
}
