// Package cli implements the skyline command-line interface.
//
// Commands:
//   - histogram: largest rectangle under a histogram given as integers
//   - maximal:   largest all-filled rectangle in a binary grid
//   - zerofill:  number of zero-filled subarrays
//   - run:       evaluate a TOML case suite and print a result table
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log. Results go to the command's stdout, logs to the
// CLI's writer (stderr by default).
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "skyline",
		Short: "Skyline solves histogram and binary-matrix rectangle exercises",
		Long: `Skyline computes the largest rectangle under a histogram, the largest
all-filled rectangle in a binary matrix, and the number of zero-filled
subarrays. Case suites written in TOML can be checked in one go with 'run'.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("skyline %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.AddCommand(c.histogramCommand())
	root.AddCommand(c.maximalCommand())
	root.AddCommand(c.zerofillCommand())
	root.AddCommand(c.runCommand())

	return root
}

// newLogger creates a logger with timestamp formatting "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time rounded to microseconds.
func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Microsecond))
	p.logger.Debug(msg, keyvals...)
}
