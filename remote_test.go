package smartselect

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearch is an in-process option server recording every query it serves.
type fakeSearch struct {
	mu      sync.Mutex
	queries []string
	headers []http.Header
	status  int
	results map[string][]string
}

func newFakeSearch() (*fakeSearch, *httptest.Server) {
	fs := &fakeSearch{
		status: http.StatusOK,
		results: map[string][]string{
			"ab":  {"abbot", "abbey", "abide"},
			"abc": {"abcde"},
		},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		fs.mu.Lock()
		fs.queries = append(fs.queries, q)
		fs.headers = append(fs.headers, r.Header.Clone())
		status := fs.status
		body := fs.results[q]
		fs.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	return fs, server
}

func (fs *fakeSearch) served() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.queries...)
}

func newRemoteSelect(t *testing.T, mutate func(*Config[string])) (Model[string], *fakeSearch) {
	t.Helper()
	fs, server := newFakeSearch()
	t.Cleanup(server.Close)

	cfg := Config[string]{
		IDPrefix: "users",
		Label:    func(s string) string { return s },
		Surface:  measuredSurface("users"),
		Remote: &RemoteConfig[string]{
			Threshold: 2,
			Debounce:  time.Millisecond,
			URL: func(query string) string {
				return fmt.Sprintf("%s/?q=%s", server.URL, url.QueryEscape(query))
			},
			Headers: map[string]string{"Accept": "application/json"},
			Decode: func(data []byte) ([]string, error) {
				var opts []string
				err := json.Unmarshal(data, &opts)
				return opts, err
			},
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg), fs
}

// settle pumps command output back into Update until nothing more is
// produced, mimicking the runtime's message loop.
func settle(m Model[string], msgs []tea.Msg) Model[string] {
	for len(msgs) > 0 {
		m, msgs = deliver(m, msgs)
	}
	return m
}

func TestBelowThresholdSendsNoQuery(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, nil)
	m = openSelect(m)

	m, msgs := typeText(m, "a")
	m = settle(m, msgs)

	assert.Equal(t, StatusNotRequested, m.RemoteStatus())
	assert.Empty(t, fs.served(), "one character is below the two-character threshold")
	assert.Nil(t, m.VisibleOptions())
}

func TestQueryLoadsAfterDebounce(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, nil)
	m = openSelect(m)

	m, msgs := typeText(m, "ab")
	m = settle(m, msgs)

	assert.Equal(t, StatusLoaded, m.RemoteStatus())
	assert.Equal(t, []string{"abbot", "abbey", "abide"}, m.VisibleOptions())
	assert.Equal(t, []string{"ab"}, fs.served())
	assert.Equal(t, 0, m.FocusedIndex(), "focus resets when results land")
}

func TestRequestCarriesConfiguredHeaders(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, nil)
	m = openSelect(m)

	m, msgs := typeText(m, "ab")
	settle(m, msgs)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.Len(t, fs.headers, 1)
	assert.Equal(t, "application/json", fs.headers[0].Get("Accept"))
}

func TestLoadingStatePrecedesResult(t *testing.T) {
	t.Parallel()
	m, _ := newRemoteSelect(t, nil)
	m = openSelect(m)

	m, msgs := typeText(m, "ab")

	// Delivering the debounce firing enters Loading; the request result is
	// produced but not yet applied.
	m, produced := deliver(m, msgs)
	assert.Equal(t, StatusLoading, m.RemoteStatus())
	assert.Nil(t, m.VisibleOptions(), "nothing is focusable while loading")

	m = settle(m, produced)
	assert.Equal(t, StatusLoaded, m.RemoteStatus())
}

func TestStaleDebounceFiringIsDropped(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, nil)
	m = openSelect(m)

	// "ab" schedules a firing, then "c" supersedes it before delivery.
	m, stale := typeText(m, "ab")
	m, fresh := typeText(m, "c")

	m, _ = deliver(m, stale)
	assert.Empty(t, fs.served(), "superseded firing must not start a request")
	assert.Equal(t, StatusNotRequested, m.RemoteStatus())

	m = settle(m, fresh)
	assert.Equal(t, StatusLoaded, m.RemoteStatus())
	assert.Equal(t, []string{"abc"}, fs.served(), "only the last query reaches the server")
	assert.Equal(t, []string{"abcde"}, m.VisibleOptions())
}

func TestDropBelowThresholdResetsResults(t *testing.T) {
	t.Parallel()
	m, _ := newRemoteSelect(t, nil)
	m = openSelect(m)
	m, msgs := typeText(m, "ab")
	m = settle(m, msgs)
	require.Equal(t, StatusLoaded, m.RemoteStatus())

	var cmd tea.Cmd
	m, cmd = m.Update(keyMsg(tea.KeyBackspace))
	m = settle(m, collect(cmd))

	assert.Equal(t, StatusNotRequested, m.RemoteStatus(), "below the threshold there is nothing to show")
	assert.Nil(t, m.VisibleOptions())
}

func TestFailedQueryShowsErrorAndEscDismisses(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, nil)
	fs.status = http.StatusInternalServerError
	m = openSelect(m)

	m, msgs := typeText(m, "ab")
	m = settle(m, msgs)

	require.Equal(t, StatusFailed, m.RemoteStatus())
	var qerr *QueryError
	require.True(t, errors.As(m.RemoteErr(), &qerr))
	assert.Equal(t, http.StatusInternalServerError, qerr.StatusCode)
	assert.Equal(t, "ab", qerr.Query)

	// First esc clears the error, the popover stays open.
	m, _ = m.Update(keyMsg(tea.KeyEsc))
	assert.True(t, m.IsOpen())
	assert.Equal(t, StatusNotRequested, m.RemoteStatus())
	assert.NoError(t, m.RemoteErr())

	// Second esc closes.
	m, _ = m.Update(keyMsg(tea.KeyEsc))
	assert.False(t, m.IsOpen())
}

func TestRemoteResultsExcludeSelected(t *testing.T) {
	t.Parallel()
	m, _ := newRemoteSelect(t, func(c *Config[string]) { c.Multi = true })
	m = openSelect(m)
	m, msgs := typeText(m, "ab")
	m = settle(m, msgs)
	require.Equal(t, []string{"abbot", "abbey", "abide"}, m.VisibleOptions())

	m, cmd := m.Update(keyMsg(tea.KeyEnter)) // select abbot
	m = settle(m, collect(cmd))

	assert.Equal(t, []string{"abbot"}, m.Selected())
	assert.Equal(t, StatusNotRequested, m.RemoteStatus(), "selecting clears the search and its results")

	// Running the same query again hides the already-selected option.
	m, msgs = typeText(m, "ab")
	m = settle(m, msgs)
	assert.Equal(t, []string{"abbey", "abide"}, m.VisibleOptions())
}

func TestCloseResetsRemoteState(t *testing.T) {
	t.Parallel()
	m, _ := newRemoteSelect(t, nil)
	m = openSelect(m)
	m, msgs := typeText(m, "ab")
	m = settle(m, msgs)
	require.Equal(t, StatusLoaded, m.RemoteStatus())

	m, _ = m.Close()
	assert.Equal(t, StatusNotRequested, m.RemoteStatus())

	// Reopening shows no stale results.
	m = openSelect(m)
	assert.Nil(t, m.VisibleOptions())
}

func TestZeroThresholdQueriesOnOpen(t *testing.T) {
	t.Parallel()
	m, fs := newRemoteSelect(t, func(c *Config[string]) { c.Remote.Threshold = 0 })
	fs.mu.Lock()
	fs.results[""] = []string{"everything"}
	fs.mu.Unlock()

	m, cmd := m.Open()
	m = settle(m, collect(cmd))

	assert.Equal(t, StatusLoaded, m.RemoteStatus())
	assert.Equal(t, []string{"everything"}, m.VisibleOptions())
	assert.Equal(t, []string{""}, fs.served(), "the empty query fires on open")
}

func TestQueryErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := &QueryError{Query: "ab", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ab")

	statusErr := &QueryError{Query: "ab", StatusCode: 502}
	assert.Contains(t, statusErr.Error(), "502")
}
