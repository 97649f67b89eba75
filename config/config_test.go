package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`urls: [https://example.com]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d (logical CPUs)", cfg.Workers, runtime.NumCPU())
	}
	if cfg.Timeout.Duration() != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout.Duration())
	}
	if cfg.Retries != 0 {
		t.Errorf("Retries = %d, want 0", cfg.Retries)
	}
	if cfg.RetryDelay.Duration() != 100*time.Millisecond {
		t.Errorf("RetryDelay = %s, want 100ms", cfg.RetryDelay.Duration())
	}
	if cfg.Output != "status.json" {
		t.Errorf("Output = %q, want status.json", cfg.Output)
	}
}

func TestParse_FullConfig(t *testing.T) {
	data := `
workers: 8
timeout: 2s
retries: 3
retry_delay: 50ms
output: /tmp/report.json
urls:
  - https://example.com
  - https://api.example.com/health
url_files:
  - sites.txt
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Timeout.Duration() != 2*time.Second {
		t.Errorf("Timeout = %s, want 2s", cfg.Timeout.Duration())
	}
	if cfg.Retries != 3 {
		t.Errorf("Retries = %d, want 3", cfg.Retries)
	}
	if cfg.RetryDelay.Duration() != 50*time.Millisecond {
		t.Errorf("RetryDelay = %s, want 50ms", cfg.RetryDelay.Duration())
	}
	if cfg.Output != "/tmp/report.json" {
		t.Errorf("Output = %q, want /tmp/report.json", cfg.Output)
	}
	if len(cfg.URLs) != 2 {
		t.Errorf("URLs = %d entries, want 2", len(cfg.URLs))
	}
	if len(cfg.URLFiles) != 1 {
		t.Errorf("URLFiles = %d entries, want 1", len(cfg.URLFiles))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "broken yaml",
			data:    "workers: [not a number",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "bad duration",
			data:    "timeout: banana",
			wantErr: "invalid duration",
		},
		{
			name:    "negative workers",
			data:    "workers: -2",
			wantErr: "workers must be at least 1",
		},
		{
			name:    "negative timeout",
			data:    "timeout: -5s",
			wantErr: "timeout must be positive",
		},
		{
			name:    "negative retries",
			data:    "retries: -1",
			wantErr: "retries cannot be negative",
		},
		{
			name:    "negative retry delay",
			data:    "retry_delay: -10ms",
			wantErr: "retry_delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

// TestParse_MalformedURLsAccepted documents that URL syntax is not
// validated here: a malformed URL flows to the checker and fails there,
// subject to the normal retry policy.
func TestParse_MalformedURLsAccepted(t *testing.T) {
	cfg, err := Parse([]byte(`urls: ["not a url at all", ""]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.URLs) != 2 {
		t.Errorf("URLs = %d entries, want 2", len(cfg.URLs))
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("WEBSTATUS_HOST", "example.com")

	cfg, err := Parse([]byte(`urls: ["https://${WEBSTATUS_HOST}/health", "https://${MISSING_VAR:-fallback.test}"]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.URLs[0] != "https://example.com/health" {
		t.Errorf("urls[0] = %q, want expanded host", cfg.URLs[0])
	}
	if cfg.URLs[1] != "https://fallback.test" {
		t.Errorf("urls[1] = %q, want fallback default", cfg.URLs[1])
	}
}

func TestParse_EnvExpansionMissingVar(t *testing.T) {
	_, err := Parse([]byte(`urls: ["https://${WEBSTATUS_DEFINITELY_UNSET}/x"]`))
	if err == nil {
		t.Fatal("Parse() expected error for unset variable without default")
	}
	if !strings.Contains(err.Error(), "WEBSTATUS_DEFINITELY_UNSET") {
		t.Errorf("error = %v, want the variable name", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "workers: 4\nurls: [https://example.com]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want mention of 'failed to read'", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.Output != "status.json" {
		t.Errorf("Output = %q, want status.json", cfg.Output)
	}
}
