package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge-go/internal/churn"
	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/output"
	"github.com/gitgauge/gitgauge-go/internal/ownership"
	"github.com/gitgauge/gitgauge-go/internal/scan"
)

var (
	chPath       string
	chWindowDays int
	chBy         string
	chDepth      int
	chAll        bool
	chIncludeExt []string
	chMinTotal   int
	chLimit      int
)

var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Rank paths by recent, decay-weighted change volume",
	Long: `Walks recent history once and ranks paths by change volume, with older
commits fading linearly inside the trailing window. Raw add/delete/touch
counters are reported alongside the weighted churn.`,
	RunE: runChurn,
}

func init() {
	f := churnCmd.Flags()
	f.StringVarP(&chPath, "path", "p", ".", "path to the git repo")
	f.IntVar(&chWindowDays, "window-days", 0, "trailing window in days (0 = config default)")
	f.StringVar(&chBy, "by", "file", "granularity: file or dir")
	f.IntVar(&chDepth, "depth", 0, "directory key depth for --by dir")
	f.BoolVar(&chAll, "all", false, "include all tracked files, ignoring the extension allow-list")
	f.StringSliceVar(&chIncludeExt, "include-ext", nil, "extra extensions to include")
	f.IntVar(&chMinTotal, "min-total", 0, "minimum touches for a path to be reported")
	f.IntVar(&chLimit, "limit", 0, "max rows to emit")
}

func runChurn(cmd *cobra.Command, args []string) error {
	if err := validateBy(chBy); err != nil {
		return err
	}
	windowDays := chWindowDays
	if !cmd.Flags().Changed("window-days") {
		windowDays = cfg.Churn.WindowDays
	}
	minTotal := chMinTotal
	if !cmd.Flags().Changed("min-total") {
		minTotal = cfg.Churn.MinTotal
	}
	depth := chDepth
	if depth == 0 {
		depth = cfg.Scan.Depth
	}
	limit := chLimit
	if limit == 0 {
		limit = cfg.Output.Limit
	}

	repo, err := gitrepo.Open(chPath)
	if err != nil {
		return err
	}

	opts := scan.NewOptions(
		chAll || cfg.Scan.IncludeAll,
		append(append([]string{}, cfg.Scan.ExtraExtensions...), chIncludeExt...),
		minTotal,
		nil,
	)
	est := &churn.Estimator{WindowDays: windowDays, Now: time.Now(), Log: logger}

	by := ownership.ByFile
	var entries []churn.Entry
	if chBy == "dir" {
		by = ownership.ByDir
		entries, err = est.DirectoryEntries(repo, opts, depth)
	} else {
		entries, err = est.FileEntries(repo, opts)
	}
	if err != nil {
		return err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	doc := &output.ChurnDoc{By: by, WindowDays: windowDays, Rows: entries}
	if by == ownership.ByDir {
		doc.Depth = depth
	}
	if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
		return output.WriteJSON(os.Stdout, doc)
	}
	return output.ChurnTable(os.Stdout, doc)
}
