package smartselect

import (
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RemoteStatus is the lifecycle of a remote option query.
type RemoteStatus int

const (
	// StatusNotRequested means no query has fired since the popover opened
	// (or since the search text dropped below the threshold).
	StatusNotRequested RemoteStatus = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

// RemoteConfig configures remote option querying for an instance.
type RemoteConfig[A comparable] struct {
	// Threshold is the minimum search-text length before a query is
	// scheduled. Zero fires an empty query as soon as the popover opens,
	// for "show all remote options immediately" behavior.
	Threshold int

	// Debounce is the quiet period after the last keystroke before the
	// query fires. Only the last scheduled firing is honored.
	Debounce time.Duration

	// URL builds the request URL for a search text.
	URL func(query string) string

	// Headers are added to every request.
	Headers map[string]string

	// Decode parses the response body into options.
	Decode func(data []byte) ([]A, error)

	// Client defaults to a client with a 10 second timeout.
	Client *http.Client
}

func (rc *RemoteConfig[A]) applyDefaults() {
	if rc.Debounce <= 0 {
		rc.Debounce = 300 * time.Millisecond
	}
	if rc.Client == nil {
		rc.Client = &http.Client{Timeout: 10 * time.Second}
	}
}

// remoteState tracks the query lifecycle inside the model. Local instances
// never leave StatusNotRequested.
type remoteState[A comparable] struct {
	status  RemoteStatus
	options []A
	err     error
}

func (s *remoteState[A]) reset() {
	s.status = StatusNotRequested
	s.options = nil
	s.err = nil
}

// fetch performs the query and feeds the outcome back as a remoteResultMsg.
// The generation travels with the request so a result that arrives after the
// user kept typing (or closed the popover) identifies itself as stale.
func (rc *RemoteConfig[A]) fetch(id string, gen int, query string) tea.Cmd {
	return func() tea.Msg {
		req, err := http.NewRequest(http.MethodGet, rc.URL(query), nil)
		if err != nil {
			return remoteResultMsg[A]{id: id, gen: gen, err: &QueryError{Query: query, Err: err}}
		}
		for k, v := range rc.Headers {
			req.Header.Set(k, v)
		}
		resp, err := rc.Client.Do(req)
		if err != nil {
			return remoteResultMsg[A]{id: id, gen: gen, err: &QueryError{Query: query, Err: err}}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return remoteResultMsg[A]{id: id, gen: gen, err: &QueryError{Query: query, StatusCode: resp.StatusCode}}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return remoteResultMsg[A]{id: id, gen: gen, err: &QueryError{Query: query, Err: fmt.Errorf("reading response: %w", err)}}
		}
		opts, err := rc.Decode(body)
		if err != nil {
			return remoteResultMsg[A]{id: id, gen: gen, err: &QueryError{Query: query, Err: fmt.Errorf("decoding response: %w", err)}}
		}
		return remoteResultMsg[A]{id: id, gen: gen, options: opts}
	}
}
