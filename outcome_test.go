package webstatus

import "testing"

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"success", Success{StatusCode: 200}, "Ok: 200"},
		{"client error is still success", Success{StatusCode: 404}, "Ok: 404"},
		{"failure", Failure{Message: "connection refused"}, "Err: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestOutcome_TypeSwitch verifies both variants are distinguishable via
// type switch, the intended consumption pattern.
func TestOutcome_TypeSwitch(t *testing.T) {
	outcomes := []Outcome{
		Success{StatusCode: 500},
		Failure{Message: "timeout"},
	}

	var successes, failures int
	for _, o := range outcomes {
		switch v := o.(type) {
		case Success:
			successes++
			if v.StatusCode != 500 {
				t.Errorf("StatusCode = %d, want 500", v.StatusCode)
			}
		case Failure:
			failures++
			if v.Message != "timeout" {
				t.Errorf("Message = %q, want timeout", v.Message)
			}
		default:
			t.Fatalf("unexpected outcome type %T", o)
		}
	}

	if successes != 1 || failures != 1 {
		t.Errorf("successes = %d, failures = %d, want 1 and 1", successes, failures)
	}
}
