package report

import (
	"time"

	"github.com/jpalmerr/webstatus"
)

// Summary holds aggregate response-time statistics for one run.
//
// Min, Max, and Avg are computed over successful results only; failed
// checks have no meaningful response time. When Successes is zero the
// three are zero and should not be displayed.
type Summary struct {
	// Total is the number of results in the run.
	Total int

	// Successes is the number of results whose outcome is [webstatus.Success].
	Successes int

	// Failures is the number of results whose outcome is [webstatus.Failure].
	Failures int

	// Min is the fastest successful response time.
	Min time.Duration

	// Max is the slowest successful response time.
	Max time.Duration

	// Avg is the mean successful response time.
	Avg time.Duration
}

// Summarize computes a [Summary] over a run's results.
func Summarize(results []webstatus.CheckResult) Summary {
	s := Summary{Total: len(results)}

	var sum time.Duration
	for _, res := range results {
		if _, ok := res.Outcome.(webstatus.Success); !ok {
			s.Failures++
			continue
		}

		if s.Successes == 0 || res.Latency < s.Min {
			s.Min = res.Latency
		}
		if res.Latency > s.Max {
			s.Max = res.Latency
		}
		sum += res.Latency
		s.Successes++
	}

	if s.Successes > 0 {
		s.Avg = sum / time.Duration(s.Successes)
	}
	return s
}
