package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge-go/internal/gitrepo"
	"github.com/gitgauge/gitgauge-go/internal/output"
	"github.com/gitgauge/gitgauge-go/internal/stats"
)

const dateFormat = "2006-01-02"

var (
	statsPath     string
	statsLimit    int
	statsSortDesc bool

	taPath  string
	taSince string

	aaPath   string
	aaAuthor string

	fcPath string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Overall commit stats per author",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(statsPath)
		if err != nil {
			return err
		}
		total, err := stats.CountCommits(repo)
		if err != nil {
			return err
		}
		cs, err := stats.Collect(repo, statsLimit, time.Time{})
		if err != nil {
			return err
		}
		rows := cs.Sorted(statsSortDesc)
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, map[string]any{
				"total_commits":   total,
				"commits_scanned": cs.TotalSeen,
				"authors":         rows,
			})
		}
		fmt.Printf("Total commits in repo:  %d\n", total)
		fmt.Printf("Total commits scanned:  %d\n", cs.TotalSeen)
		return authorTable(rows)
	},
}

var topAuthorsCmd = &cobra.Command{
	Use:   "top-authors",
	Short: "Most prolific authors since a given date",
	RunE: func(cmd *cobra.Command, args []string) error {
		var since time.Time
		if taSince != "" {
			var err error
			since, err = time.ParseInLocation(dateFormat, taSince, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --since date %q: %w", taSince, err)
			}
		}
		repo, err := gitrepo.Open(taPath)
		if err != nil {
			return err
		}
		cs, err := stats.Collect(repo, 0, since)
		if err != nil {
			return err
		}
		rows := cs.Sorted(true)
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, map[string]any{"since": taSince, "authors": rows})
		}
		return authorTable(rows)
	},
}

var authorActivityCmd = &cobra.Command{
	Use:   "author-activity",
	Short: "First and last commit dates for one author",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(aaPath)
		if err != nil {
			return err
		}
		cs, err := stats.Collect(repo, 0, time.Time{})
		if err != nil {
			return err
		}
		meta, ok := cs.Authors[aaAuthor]
		if !ok {
			return fmt.Errorf("no commits by %s", aaAuthor)
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			return output.WriteJSON(os.Stdout, meta)
		}
		fmt.Printf("%-30s %4d commits   %s -> %s\n",
			meta.Author, meta.Count, meta.First.Format(dateFormat), meta.Last.Format(dateFormat))
		return nil
	},
}

var firstCommitsCmd = &cobra.Command{
	Use:   "first-commits",
	Short: "First commit date of each author",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := gitrepo.Open(fcPath)
		if err != nil {
			return err
		}
		firsts, err := stats.FirstCommits(repo)
		if err != nil {
			return err
		}
		if output.Detect(jsonFlag || cfg.Output.JSON) == output.FormatJSON {
			formatted := make(map[string]string, len(firsts))
			for author, t := range firsts {
				formatted[author] = t.Format(dateFormat)
			}
			return output.WriteJSON(os.Stdout, formatted)
		}
		authors := make([]string, 0, len(firsts))
		for a := range firsts {
			authors = append(authors, a)
		}
		sort.Strings(authors)
		rows := make([][]string, 0, len(authors))
		for _, a := range authors {
			rows = append(rows, []string{a, firsts[a].Format(dateFormat)})
		}
		return output.Table(os.Stdout, []string{"Author", "First commit"}, rows)
	},
}

func authorTable(rows []stats.AuthorMeta) error {
	table := make([][]string, 0, len(rows))
	for _, m := range rows {
		table = append(table, []string{
			m.Author,
			fmt.Sprintf("%d", m.Count),
			m.First.Format(dateFormat),
			m.Last.Format(dateFormat),
		})
	}
	return output.Table(os.Stdout, []string{"Author", "Commits", "First", "Last"}, table)
}

func init() {
	statsCmd.Flags().StringVarP(&statsPath, "path", "p", ".", "path to the git repo")
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "l", 0, "max commits to inspect (0 = unlimited)")
	statsCmd.Flags().BoolVar(&statsSortDesc, "sort-desc", false, "sort descending by commit count")

	topAuthorsCmd.Flags().StringVarP(&taPath, "path", "p", ".", "path to the git repo")
	topAuthorsCmd.Flags().StringVarP(&taSince, "since", "s", "", "only commits on or after this date (YYYY-MM-DD)")

	authorActivityCmd.Flags().StringVarP(&aaPath, "path", "p", ".", "path to the git repo")
	authorActivityCmd.Flags().StringVarP(&aaAuthor, "author", "a", "", "author email (exact match)")
	_ = authorActivityCmd.MarkFlagRequired("author")

	firstCommitsCmd.Flags().StringVarP(&fcPath, "path", "p", ".", "path to the git repo")
}
