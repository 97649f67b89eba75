package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jpalmerr/webstatus"
)

// entry is the wire representation of a single check result.
type entry struct {
	URL            string    `json:"url"`
	Status         status    `json:"status"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

// status serializes an Outcome as a single-key object:
// {"Ok": 200} for successes, {"Err": "message"} for failures.
type status struct {
	outcome webstatus.Outcome
}

// MarshalJSON implements json.Marshaler for status.
func (s status) MarshalJSON() ([]byte, error) {
	switch o := s.outcome.(type) {
	case webstatus.Success:
		return json.Marshal(map[string]int{"Ok": o.StatusCode})
	case webstatus.Failure:
		return json.Marshal(map[string]string{"Err": o.Message})
	default:
		return nil, fmt.Errorf("unknown outcome type %T", s.outcome)
	}
}

// Write serializes results as an indented JSON array to w.
//
// Entries appear in the order given, which for a completed run is
// completion order.
func Write(w io.Writer, results []webstatus.CheckResult) error {
	entries := make([]entry, 0, len(results))
	for _, res := range results {
		entries = append(entries, entry{
			URL:            res.URL,
			Status:         status{outcome: res.Outcome},
			ResponseTimeMs: res.Latency.Milliseconds(),
			Timestamp:      res.CheckedAt,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteFile serializes results to the file at path, creating or
// truncating it.
func WriteFile(path string, results []webstatus.CheckResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Write(f, results); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
