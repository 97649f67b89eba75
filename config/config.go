// Package config provides YAML configuration parsing for webstatus.
//
// This package enables running webstatus as a standalone binary with a
// configuration file, as an alternative to passing everything as flags.
//
// Example configuration:
//
//	workers: 8
//	timeout: 5s
//	retries: 2
//	retry_delay: 100ms
//	output: status.json
//
//	urls:
//	  - https://example.com
//	  - https://api.example.com/health
//
//	url_files:
//	  - sites.txt
//
// URL entries support environment variable substitution with ${VAR} or
// ${VAR:-default}. URLs are deliberately not validated here: a malformed
// URL is legitimate input that the checker reports as a failure, subject
// to the same retry policy as any transport error.
package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for a webstatus run.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML, or [Default] for
// a Config with only defaults applied.
type Config struct {
	// Workers is the fixed worker pool size.
	// Defaults to the number of logical CPUs.
	Workers int `yaml:"workers"`

	// Timeout is the per-attempt HTTP timeout.
	// Accepts duration strings like "5s", "500ms". Defaults to 5s.
	Timeout Duration `yaml:"timeout"`

	// Retries is the number of retries per URL after the first attempt.
	// Defaults to 0 (one attempt per URL).
	Retries int `yaml:"retries"`

	// RetryDelay is the fixed wait between consecutive attempts.
	// Defaults to 100ms.
	RetryDelay Duration `yaml:"retry_delay"`

	// Output is the path the JSON report is written to.
	// Defaults to "status.json".
	Output string `yaml:"output"`

	// URLs lists target URLs inline.
	// Values support environment variable substitution.
	URLs []string `yaml:"urls"`

	// URLFiles lists files containing URLs, one per line.
	// Blank lines and lines starting with '#' are ignored.
	URLFiles []string `yaml:"url_files"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns a Config with all defaults applied and no URLs.
func Default() *Config {
	return &Config{
		Workers:    runtime.NumCPU(),
		Timeout:    Duration(5 * time.Second),
		Retries:    0,
		RetryDelay: Duration(100 * time.Millisecond),
		Output:     "status.json",
	}
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in URL entries are expanded after parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Defaults are applied for unset fields, environment variables are
// expanded in URL entries and file paths, and the run parameters are
// validated. URL syntax is not validated; see the package documentation.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Duration(5 * time.Second)
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = Duration(100 * time.Millisecond)
	}
	if cfg.Output == "" {
		cfg.Output = "status.json"
	}

	if err := cfg.expand(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the run parameters.
//
// The checking core assumes a well-formed configuration, so validation
// happens exactly once here (or in the CLI after flag overrides).
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout.Duration() <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout.Duration())
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries cannot be negative, got %d", c.Retries)
	}
	if c.RetryDelay.Duration() < 0 {
		return fmt.Errorf("retry_delay cannot be negative, got %s", c.RetryDelay.Duration())
	}
	return nil
}

// expand applies environment variable substitution to URL entries and
// URL file paths.
func (c *Config) expand() error {
	for i, u := range c.URLs {
		expanded, err := expandEnvVars(u)
		if err != nil {
			return fmt.Errorf("urls[%d]: %w", i, err)
		}
		c.URLs[i] = expanded
	}

	for i, p := range c.URLFiles {
		expanded, err := expandEnvVars(p)
		if err != nil {
			return fmt.Errorf("url_files[%d]: %w", i, err)
		}
		c.URLFiles[i] = expanded
	}
	return nil
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// already have an error, skip processing
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}
