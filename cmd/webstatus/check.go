package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jpalmerr/webstatus"
	"github.com/jpalmerr/webstatus/config"
	"github.com/jpalmerr/webstatus/internal/report"
	"github.com/spf13/cobra"
)

// newLogger creates a JSON logger for CLI use. Logs go to stderr so the
// live result lines on stdout stay machine-readable.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// checkCmd runs a full check over the given URLs.
var checkCmd = &cobra.Command{
	Use:   "check [URL ...]",
	Short: "Check the status of a set of URLs",
	Long: `Check the status of a set of URLs with a fixed pool of workers.

URLs are gathered from positional arguments, --file entries, and the
config file, in that order, duplicates preserved. Each URL produces
exactly one result: the HTTP status code if the server responded (any
code counts, including 4xx/5xx), or the failure cause if it did not.

Results are printed live as they complete and written as a JSON report
when the run finishes, followed by min/max/avg response time statistics
over the successful checks.

Examples:
  webstatus check https://example.com https://api.example.com/health
  webstatus check --file sites.txt --workers 8 --timeout 5s --retries 2
  webstatus check -c config.yaml -o /tmp/status.json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("config", "c", "", "path to YAML config file")
	checkCmd.Flags().StringSliceP("file", "f", nil, "file with URLs, one per line ('#' comments and blank lines ignored)")
	checkCmd.Flags().IntP("workers", "w", 0, "worker pool size (default: number of logical CPUs)")
	checkCmd.Flags().DurationP("timeout", "t", 0, "per-attempt HTTP timeout (default 5s)")
	checkCmd.Flags().IntP("retries", "r", 0, "retries per URL after the first attempt")
	checkCmd.Flags().Duration("retry-delay", 0, "wait between attempts (default 100ms)")
	checkCmd.Flags().StringP("output", "o", "", "path for the JSON report (default status.json)")
	checkCmd.Flags().Bool("no-color", false, "disable colored live output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadCheckConfig(cmd)
	if err != nil {
		return err
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	urls, err := cfg.ResolveURLs()
	if err != nil {
		return err
	}
	// positional URLs come first, matching the argument order on the command line
	urls = append(append([]string{}, args...), urls...)

	if len(urls) == 0 {
		return &usageError{msg: "no URLs provided (pass URLs as arguments, via --file, or in a config file)"}
	}

	runner, err := webstatus.New(
		webstatus.WithWorkers(cfg.Workers),
		webstatus.WithTimeout(cfg.Timeout.Duration()),
		webstatus.WithMaxRetries(cfg.Retries),
		webstatus.WithRetryDelay(cfg.RetryDelay.Duration()),
		webstatus.WithLogger(logger),
		webstatus.WithResultCallback(printLive),
	)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	// cancel the run on SIGINT/SIGTERM; collected results are still reported
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, runErr := runner.Run(ctx, urls)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "run interrupted: %v (%d of %d results collected)\n",
			runErr, len(results), len(urls))
	}

	printSummary(report.Summarize(results))

	if err := report.WriteFile(cfg.Output, results); err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", cfg.Output)

	return nil
}

// loadCheckConfig builds the effective run configuration: the config
// file (or defaults) with any explicitly set flags layered on top.
func loadCheckConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		cfg.Timeout = config.Duration(d)
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries, _ = cmd.Flags().GetInt("retries")
	}
	if cmd.Flags().Changed("retry-delay") {
		d, _ := cmd.Flags().GetDuration("retry-delay")
		cfg.RetryDelay = config.Duration(d)
	}
	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}
	if files, _ := cmd.Flags().GetStringSlice("file"); len(files) > 0 {
		cfg.URLFiles = append(cfg.URLFiles, files...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	return cfg, nil
}

var (
	successTag = color.New(color.FgGreen, color.Bold).Sprint("[SUCCESS]")
	failureTag = color.New(color.FgRed, color.Bold).Sprint("[FAILURE]")
)

// printLive writes one human-readable line per completed result.
func printLive(res webstatus.CheckResult) {
	ts := res.CheckedAt.Format(time.RFC3339)

	switch o := res.Outcome.(type) {
	case webstatus.Success:
		fmt.Printf("%s %s - HTTP %d in %d ms at %s\n",
			successTag, res.URL, o.StatusCode, res.Latency.Milliseconds(), ts)
	case webstatus.Failure:
		fmt.Printf("%s %s - %s in %d ms at %s\n",
			failureTag, res.URL, o.Message, res.Latency.Milliseconds(), ts)
	}
}

// printSummary renders min/max/avg response times over successful checks.
func printSummary(s report.Summary) {
	if s.Successes == 0 {
		fmt.Printf("\nNo successful responses to summarize.\n\n")
		return
	}

	fmt.Printf("\nSummary statistics for %d successful responses:\n", s.Successes)
	fmt.Printf("  Min: %d ms\n", s.Min.Milliseconds())
	fmt.Printf("  Max: %d ms\n", s.Max.Milliseconds())
	fmt.Printf("  Avg: %.2f ms\n\n", float64(s.Avg.Microseconds())/1000.0)
}
