// Package main is the entry point for the webstatus CLI.
//
// webstatus checks the reachability of a set of URLs with a fixed pool
// of concurrent workers, printing live per-URL results and writing a
// JSON report when the run completes.
//
// Usage:
//
//	webstatus check --file sites.txt https://example.com
//	webstatus validate -c config.yaml
//	webstatus version
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError marks errors caused by an invalid invocation (no URLs, bad
// parameter values). Execute maps them to exit code 2, distinguishing
// operator mistakes from runtime failures.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "webstatus",
	Short: "A concurrent website status checker",
	Long: `webstatus checks the reachability of a set of URLs concurrently.

Each URL is dispatched to one of a fixed number of workers, checked with
a configurable HTTP timeout, and retried on failure a configurable number
of times with a fixed delay. Any received HTTP status code counts as a
completed check; only requests that never get a response are failures.

Quick start:
  1. Put URLs in a file, one per line ('#' comments allowed)
  2. Run: webstatus check --file sites.txt --workers 8 --retries 2
  3. Watch the live output; the full report lands in status.json

Exit codes:
  0 - run completed
  1 - runtime failure (unreadable file, report write error, ...)
  2 - usage error (no URLs, invalid parameter values)`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error; pick the exit code
		var uerr *usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this webstatus binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webstatus %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
