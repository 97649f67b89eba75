package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadURLFile reads target URLs from the file at path, one per line.
//
// Leading and trailing whitespace is trimmed; blank lines and lines
// starting with '#' are skipped. Anything else is kept verbatim —
// including malformed URLs, which the checker reports as failures.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL file %s: %w", path, err)
	}

	return urls, nil
}

// ResolveURLs returns the full target list for this configuration:
// inline URLs first, then the contents of each URL file in order.
//
// Duplicates are preserved; a URL listed twice is checked twice and
// produces two results.
func (c *Config) ResolveURLs() ([]string, error) {
	urls := make([]string, 0, len(c.URLs))
	urls = append(urls, c.URLs...)

	for _, path := range c.URLFiles {
		fromFile, err := ReadURLFile(path)
		if err != nil {
			return nil, err
		}
		urls = append(urls, fromFile...)
	}

	return urls, nil
}
