// Package debounce schedules take-last delayed firings for remote search.
//
// Timers in the runtime cannot be cancelled once scheduled, so supersession
// is done with a generation counter instead: every keystroke bumps the
// generation, and only the callback carrying the latest generation is
// honored when it elapses. Earlier timers still fire but are ignored.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Elapsed is delivered when a scheduled quiet period ends. ID names the
// owning select instance and Gen the keystroke that scheduled the firing;
// both are compared before the message is honored.
type Elapsed struct {
	ID  string
	Gen int
}

// Debouncer issues generations and schedules Elapsed messages for one
// select instance.
type Debouncer struct {
	id       string
	duration time.Duration
	gen      int
}

// New returns a debouncer for the given instance id and quiet period.
func New(id string, d time.Duration) *Debouncer {
	return &Debouncer{id: id, duration: d}
}

// Bump supersedes any pending firing and schedules a new one. It returns the
// new generation and the command that delivers Elapsed for it.
func (d *Debouncer) Bump() (int, tea.Cmd) {
	d.gen++
	gen := d.gen
	return gen, tea.Tick(d.duration, func(time.Time) tea.Msg {
		return Elapsed{ID: d.id, Gen: gen}
	})
}

// Live reports whether the message belongs to this instance and is still the
// latest generation. Stale Elapsed messages and stale request results both
// fail this check and are dropped.
func (d *Debouncer) Live(id string, gen int) bool {
	return id == d.id && gen == d.gen
}

// Gen returns the current generation.
func (d *Debouncer) Gen() int {
	return d.gen
}

// Cancel invalidates all pending firings without scheduling a new one. Used
// when the search text drops below the query threshold or the popover closes.
func (d *Debouncer) Cancel() {
	d.gen++
}
