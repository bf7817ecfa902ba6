package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/output"
	"github.com/gitgauge/gitgauge-go/internal/stats"
)

var (
	bsPath string
	bsFile string

	contribPath string
	timesPath   string
	coPath      string
)

var blameSummaryCmd = &cobra.Command{
	Use:   "blame-summary",
	Short: "Who wrote which lines of a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(bsPath)
		if err != nil {
			return err
		}
		counts, err := gitrepo.BlameCounts(repo, bsFile)
		if err != nil {
			return err
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, map[string]map[string]int{bsFile: counts})
		}
		rows := make([][]string, 0, len(counts))
		for _, author := range sortedKeys(counts) {
			rows = append(rows, []string{author, fmt.Sprintf("%d", counts[author])})
		}
		return output.Table(os.Stdout, []string{"Author", "Lines"}, rows)
	},
}

var fileContributionsCmd = &cobra.Command{
	Use:   "file-contributions",
	Short: "Per-author commit heatmap by file",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(contribPath)
		if err != nil {
			return err
		}
		contribs, err := stats.FileContributions(repo)
		if err != nil {
			return err
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, contribs)
		}
		files := make([]string, 0, len(contribs))
		for f := range contribs {
			files = append(files, f)
		}
		sort.Strings(files)
		for _, f := range files {
			fmt.Println(f)
			for _, author := range sortedKeys(contribs[f]) {
				fmt.Printf("  %-30s %d commits\n", author, contribs[f][author])
			}
		}
		return nil
	},
}

var commitTimesCmd = &cobra.Command{
	Use:   "commit-times",
	Short: "Commit time-of-day distribution per author",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(timesPath)
		if err != nil {
			return err
		}
		times, err := stats.CommitTimes(repo)
		if err != nil {
			return err
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, times)
		}
		for _, author := range sortedKeys(times) {
			fmt.Println(author)
			for _, bucket := range []string{"night", "morning", "afternoon", "evening"} {
				if n := times[author][bucket]; n > 0 {
					fmt.Printf("  %-10s %d\n", bucket, n)
				}
			}
		}
		return nil
	},
}

var topCoauthorsCmd = &cobra.Command{
	Use:   "top-coauthors",
	Short: "Author pairs ranked by shared touched files",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(coPath)
		if err != nil {
			return err
		}
		pairs, err := stats.TopCoauthors(repo)
		if err != nil {
			return err
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, pairs)
		}
		rows := make([][]string, 0, len(pairs))
		for _, p := range pairs {
			rows = append(rows, []string{p.Pair, fmt.Sprintf("%d", p.SharedFiles)})
		}
		return output.Table(os.Stdout, []string{"Pair", "Shared files"}, rows)
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	blameSummaryCmd.Flags().StringVarP(&bsPath, "path", "p", ".", "path to the git repo")
	blameSummaryCmd.Flags().StringVarP(&bsFile, "file", "f", "", "file to summarize")
	_ = blameSummaryCmd.MarkFlagRequired("file")

	fileContributionsCmd.Flags().StringVarP(&contribPath, "path", "p", ".", "path to the git repo")
	commitTimesCmd.Flags().StringVarP(&timesPath, "path", "p", ".", "path to the git repo")
	topCoauthorsCmd.Flags().StringVarP(&coPath, "path", "p", ".", "path to the git repo")
}
