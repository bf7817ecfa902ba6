package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitgauge/gitgauge-go/internal/config"
	gerrors "github.com/gitgauge/gitgauge-go/internal/errors"
	"github.com/gitgauge/gitgauge-go/internal/logging"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"

	cfgFile  string
	verbose  bool
	jsonFlag bool
	logger   *logrus.Logger
	cfg      *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitgauge",
	Short: "Explore authorship concentration and churn in any git repo",
	Long: `gitgauge mines a repository's history to show who dominates ownership
of each path and which paths are changing hardest right now, alongside
simple per-author activity reports.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			cfg = config.Default()
		}

		logger = logging.New(cfg.Output.LogLevel, verbose)
		if err != nil {
			logger.WithError(err).Warn("failed to load config, using defaults")
		}
		logger.WithField("scan_id", uuid.NewString()).Debug("scan starting")
	},
}

func validateBy(by string) error {
	if by != "file" && by != "dir" {
		return gerrors.Setup("granularity must be \"file\" or \"dir\"", by)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gitgauge.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit JSON instead of tables")

	rootCmd.SetVersionTemplate(`gitgauge {{.Version}}
Build time: ` + BuildTime + `
`)

	rootCmd.AddCommand(busFactorCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topAuthorsCmd)
	rootCmd.AddCommand(authorActivityCmd)
	rootCmd.AddCommand(blameSummaryCmd)
	rootCmd.AddCommand(fileContributionsCmd)
	rootCmd.AddCommand(commitTimesCmd)
	rootCmd.AddCommand(firstCommitsCmd)
	rootCmd.AddCommand(topCoauthorsCmd)
	rootCmd.AddCommand(configCmd)
}
