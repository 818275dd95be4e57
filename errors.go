package smartselect

import "fmt"

// QueryError describes a failed remote search. It is surfaced through the
// Failed remote state and rendered as a dismissable inline error; it never
// propagates to the host as a panic or a returned error.
type QueryError struct {
	Query      string
	StatusCode int // zero when the request never produced a response
	Err        error
}

func (e *QueryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("query %q: unexpected status %d", e.Query, e.StatusCode)
	}
	return fmt.Sprintf("query %q: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
