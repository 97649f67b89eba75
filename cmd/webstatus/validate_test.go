package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeValidateCmd runs the validate command with the given config path
// and returns captured stdout and any error.
func executeValidateCmd(t *testing.T, configPath string) (string, error) {
	t.Helper()

	// capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// execute via root command with validate subcommand
	rootCmd.SetArgs([]string{"validate", "-c", configPath})
	err := rootCmd.Execute()

	// restore stdout
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String(), err
}

func TestRunValidate_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()

	urlFile := filepath.Join(tmpDir, "sites.txt")
	if err := os.WriteFile(urlFile, []byte("# comment\nhttps://example.com\n\nhttps://api.example.com\n"), 0644); err != nil {
		t.Fatalf("failed to write URL file: %v", err)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
workers: 4
timeout: 2s
retries: 1
urls:
  - https://example.com
url_files:
  - ` + urlFile + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	output, err := executeValidateCmd(t, configPath)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Config is valid!",
		"Workers:     4",
		"Timeout:     2s",
		"Retries:     1",
		"1 inline + 1 files = 3 total",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	if err := os.WriteFile(configPath, []byte("workers: -3\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := executeValidateCmd(t, configPath)
	if err == nil {
		t.Fatal("validate command expected error for invalid config, got nil")
	}

	if !strings.Contains(err.Error(), "workers must be at least 1") {
		t.Errorf("error should mention workers validation, got: %v", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := executeValidateCmd(t, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("validate command expected error for missing file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error should mention 'failed to read', got: %v", err)
	}
}
