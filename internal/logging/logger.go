// Package logging configures the process-wide logrus logger. Scan progress
// and skipped inputs are logged to stderr so stdout stays parseable.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger at the named level ("debug", "info", ...). Verbose
// forces debug regardless of level. Unknown level names fall back to info.
func New(level string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)

	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}
