package smartselect

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"smartselect/internal/debounce"
	"smartselect/internal/options"
)

// Model is one mounted select instance. All mutation goes through Update and
// the explicit transition methods; the zero value is not usable, construct
// with New.
type Model[A comparable] struct {
	cfg Config[A]

	open         bool
	focusedIndex int
	scrollOffset int
	local        []A
	selected     []A
	alignment    *Alignment
	remote       remoteState[A]

	deb   *debounce.Debouncer
	input textinput.Model
	spin  spinner.Model
}

// New creates a closed, empty instance from the config.
func New[A comparable](cfg Config[A]) Model[A] {
	cfg.applyDefaults()

	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model[A]{
		cfg:   cfg,
		input: ti,
		spin:  sp,
	}
	if cfg.Remote != nil {
		m.deb = debounce.New(cfg.IDPrefix, cfg.Remote.Debounce)
	}
	return m
}

func defaultPredicate[A comparable](label func(A) string) func(string, A) bool {
	return options.Substring(label)
}

// Init satisfies tea.Model.
func (m Model[A]) Init() tea.Cmd {
	return textinput.Blink
}

// ID returns the instance's id prefix.
func (m Model[A]) ID() string { return m.cfg.IDPrefix }

// IsOpen reports whether the popover is open.
func (m Model[A]) IsOpen() bool { return m.open }

// SearchText returns the current filter/query input.
func (m Model[A]) SearchText() string { return m.input.Value() }

// FocusedIndex returns the index of the focused option within the currently
// visible list. Irrelevant when the visible list is empty.
func (m Model[A]) FocusedIndex() int { return m.focusedIndex }

// Alignment returns the last computed popover position, or nil when the
// popover has not been measured yet (it renders hidden in that case).
func (m Model[A]) Alignment() *Alignment {
	if m.alignment == nil {
		return nil
	}
	a := *m.alignment
	return &a
}

// RemoteStatus returns the remote query lifecycle state. Local instances
// always report StatusNotRequested.
func (m Model[A]) RemoteStatus() RemoteStatus { return m.remote.status }

// RemoteErr returns the error behind a StatusFailed state.
func (m Model[A]) RemoteErr() error { return m.remote.err }

// Selected returns the current selection in selection order. Single-select
// returns zero or one element.
func (m Model[A]) Selected() []A {
	return append([]A(nil), m.selected...)
}

// SetSelected replaces the selection, for hosts whose persisted values load
// after the widget mounts. Single-select keeps only the last element. The
// returned command reports the change.
func (m Model[A]) SetSelected(sel []A) (Model[A], tea.Cmd) {
	m.selected = append([]A(nil), sel...)
	if !m.cfg.Multi && len(m.selected) > 1 {
		m.selected = m.selected[len(m.selected)-1:]
	}
	m.focusedIndex = options.ClampIndex(m.focusedIndex, len(m.visibleOptions()))
	if m.open {
		m = m.recomputeAlignment()
	}
	return m, m.selectionChangedCmd()
}

// SetOptions replaces the local option list. Remote instances ignore it.
func (m Model[A]) SetOptions(opts []A) Model[A] {
	m.local = append([]A(nil), opts...)
	m.focusedIndex = options.ClampIndex(m.focusedIndex, len(m.visibleOptions()))
	return m
}

// VisibleOptions returns the options the popover shows right now: the
// candidate list minus selected entries, filtered by the search predicate
// (local) or as returned by the last query (remote). Slice positions are the
// indices that focus and option element ids address.
func (m Model[A]) VisibleOptions() []A {
	return m.visibleOptions()
}

// UpdatePosition recomputes the popover alignment from fresh measurements.
// Hosts call it when a scrollable ancestor moves the trigger.
func (m Model[A]) UpdatePosition() (Model[A], tea.Cmd) {
	if m.open {
		m = m.recomputeAlignment()
	}
	return m, nil
}

// Open opens the popover: focus moves to the search input, alignment is
// measured, and a zero-threshold remote instance fires an empty query
// immediately.
func (m Model[A]) Open() (Model[A], tea.Cmd) {
	if m.open {
		return m, nil
	}
	m.open = true
	m.focusedIndex = 0
	m.scrollOffset = 0
	m.input.Focus()
	m.cfg.Surface.Focus(InputID(m.cfg.IDPrefix))
	m = m.recomputeAlignment()

	cmds := []tea.Cmd{textinput.Blink, m.openedCmd()}
	if m.cfg.Remote != nil && m.cfg.Remote.Threshold == 0 {
		m.deb.Cancel()
		m.remote.status = StatusLoading
		m.remote.err = nil
		cmds = append(cmds, m.cfg.Remote.fetch(m.cfg.IDPrefix, m.deb.Gen(), ""), m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

// Close dismisses the popover and clears all transient state: search text,
// alignment, and any remote results, so reopening never shows a stale query.
func (m Model[A]) Close() (Model[A], tea.Cmd) {
	if !m.open {
		return m, nil
	}
	m.open = false
	m.input.SetValue("")
	m.input.Blur()
	m.cfg.Surface.Blur(InputID(m.cfg.IDPrefix))
	m.alignment = nil
	m.focusedIndex = 0
	m.scrollOffset = 0
	m.remote.reset()
	if m.deb != nil {
		m.deb.Cancel()
	}
	return m, m.closedCmd()
}

// ClearSelection empties the selection. An open popover is remeasured (the
// trigger may shrink) and remote state is reset.
func (m Model[A]) ClearSelection() (Model[A], tea.Cmd) {
	m.selected = nil
	m.remote.reset()
	if m.deb != nil {
		m.deb.Cancel()
	}
	if m.open {
		m = m.recomputeAlignment()
		m.cfg.Surface.Focus(InputID(m.cfg.IDPrefix))
	}
	return m, m.selectionChangedCmd()
}

// visibleOptions is the single source of the rendered, focusable list.
func (m Model[A]) visibleOptions() []A {
	if m.cfg.Remote != nil {
		if m.remote.status != StatusLoaded {
			return nil
		}
		// Remote results were filtered server-side by the query; only the
		// selected-exclusion rule applies here.
		return options.Visible(m.remote.options, m.selected, "", nil)
	}
	return options.Visible(m.local, m.selected, m.input.Value(), m.cfg.SearchPredicate)
}

// recomputeAlignment measures the trigger, popover and viewport and derives
// placement. Any element that cannot be measured leaves the alignment as it
// was; the popover renders hidden rather than mis-positioned.
func (m Model[A]) recomputeAlignment() Model[A] {
	trigger, ok := m.cfg.Surface.Measure(ComponentID(m.cfg.IDPrefix))
	if !ok {
		return m
	}
	popover, ok := m.cfg.Surface.Measure(ContainerID(m.cfg.IDPrefix))
	if !ok {
		return m
	}
	viewport, ok := m.cfg.Surface.Viewport()
	if !ok {
		return m
	}
	a := ComputeAlignment(trigger, popover, viewport)
	m.alignment = &a
	return m
}

// ensureFocusedVisible keeps the focused row inside the scrolled window and
// asks the surface to scroll the focused option's element into view.
func (m Model[A]) ensureFocusedVisible(visibleCount int) Model[A] {
	if m.focusedIndex < m.scrollOffset {
		m.scrollOffset = m.focusedIndex
	}
	if m.focusedIndex >= m.scrollOffset+m.cfg.MaxVisible {
		m.scrollOffset = m.focusedIndex - m.cfg.MaxVisible + 1
	}
	maxOffset := visibleCount - m.cfg.MaxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	m.cfg.Surface.ScrollIntoView(OptionID(m.cfg.IDPrefix, m.focusedIndex))
	return m
}

func (m Model[A]) selectionChangedCmd() tea.Cmd {
	msg := SelectionChangedMsg[A]{
		ID:       m.cfg.IDPrefix,
		Selected: append([]A(nil), m.selected...),
	}
	return func() tea.Msg { return msg }
}

func (m Model[A]) openedCmd() tea.Cmd {
	id := m.cfg.IDPrefix
	return func() tea.Msg { return OpenedMsg{ID: id} }
}

func (m Model[A]) closedCmd() tea.Cmd {
	id := m.cfg.IDPrefix
	return func() tea.Msg { return ClosedMsg{ID: id} }
}
