package main

import (
	"fmt"

	"github.com/jpalmerr/webstatus/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a config file without running any checks.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a webstatus configuration file without running any checks.

This command parses the YAML, expands environment variables, validates
the run parameters, and resolves the URL list (including url_files).
It's useful for CI/CD pipelines or pre-run checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  webstatus validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	urls, err := cfg.ResolveURLs()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Workers:     %d\n", cfg.Workers)
	fmt.Printf("  Timeout:     %s\n", cfg.Timeout.Duration())
	fmt.Printf("  Retries:     %d\n", cfg.Retries)
	fmt.Printf("  Retry delay: %s\n", cfg.RetryDelay.Duration())
	fmt.Printf("  URLs:        %d inline + %d files = %d total\n",
		len(cfg.URLs), len(cfg.URLFiles), len(urls))

	return nil
}
