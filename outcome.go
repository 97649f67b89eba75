package webstatus

import "fmt"

// Outcome is the classification of a completed check: either the server
// responded (Success, carrying the HTTP status code) or the request could
// not be completed (Failure, carrying a human-readable cause).
//
// Outcome is a closed sum type: [Success] and [Failure] are the only
// implementations, and callers are expected to handle both via a type
// switch:
//
//	switch o := result.Outcome.(type) {
//	case webstatus.Success:
//	    fmt.Println("HTTP", o.StatusCode)
//	case webstatus.Failure:
//	    fmt.Println("failed:", o.Message)
//	}
//
// Any received HTTP status code counts as Success, including 4xx and 5xx:
// the server responded, so the check completed. Failure is reserved for
// requests that never produced a response (malformed URL, DNS failure,
// connection refused or reset, timeout, transport error).
type Outcome interface {
	fmt.Stringer

	// outcome seals the interface to the two variants in this package.
	outcome()
}

// Success indicates the target responded before the timeout elapsed.
//
// Success is immutable once produced. It is produced for any response,
// regardless of status code.
type Success struct {
	// StatusCode is the HTTP status code of the response (e.g. 200, 404).
	StatusCode int
}

// Failure indicates the request could not be completed.
//
// Failure is immutable once produced. Message describes the failure cause
// in human-readable form.
type Failure struct {
	// Message describes why the request failed.
	Message string
}

func (Success) outcome() {}
func (Failure) outcome() {}

// String returns the outcome in "Ok: <code>" form.
func (s Success) String() string {
	return fmt.Sprintf("Ok: %d", s.StatusCode)
}

// String returns the outcome in "Err: <message>" form.
func (f Failure) String() string {
	return fmt.Sprintf("Err: %s", f.Message)
}
