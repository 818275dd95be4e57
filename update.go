package smartselect

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"smartselect/internal/debounce"
	"smartselect/internal/keymap"
	"smartselect/internal/options"
)

// Update is the transition function. Every external event — key press,
// resize, mouse press, debounce firing, remote result — enters here and is
// applied synchronously; commands carry the side effects back out.
func (m Model[A]) Update(msg tea.Msg) (Model[A], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if m.open {
			m = m.recomputeAlignment()
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case debounce.Elapsed:
		return m.handleDebounceElapsed(msg)

	case remoteResultMsg[A]:
		return m.handleRemoteResult(msg)

	case spinner.TickMsg:
		if m.open && m.remote.status == StatusLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	default:
		// Cursor blink and other textinput housekeeping.
		if m.open {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model[A]) handleKey(msg tea.KeyMsg) (Model[A], tea.Cmd) {
	if !m.open {
		switch msg.String() {
		case "enter", " ", "down":
			return m.Open()
		}
		return m, nil
	}

	// A failed query is dismissed before the popover itself: the first esc
	// clears the error box, the second closes.
	if m.remote.status == StatusFailed && msg.String() == "esc" {
		m.remote.reset()
		m.deb.Cancel()
		return m, nil
	}

	visible := m.visibleOptions()
	action, consumed := keymap.Resolve(msg, keymap.Context{
		FocusedIndex:  m.focusedIndex,
		VisibleCount:  len(visible),
		SelectedCount: len(m.selected),
		SearchText:    m.input.Value(),
		Multi:         m.cfg.Multi,
	})
	if consumed {
		return m.applyAction(action, visible)
	}

	// Unhandled keys go to the search input; a changed value is a
	// TypeSearchText transition.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		var searchCmd tea.Cmd
		m, searchCmd = m.searchTextChanged()
		return m, tea.Batch(cmd, searchCmd)
	}
	return m, cmd
}

func (m Model[A]) applyAction(action keymap.Action, visible []A) (Model[A], tea.Cmd) {
	switch a := action.(type) {
	case keymap.MoveFocusAction:
		m.focusedIndex = a.Index
		m = m.ensureFocusedVisible(len(visible))
		return m, nil

	case keymap.SelectFocusedAction:
		if a.Index < 0 || a.Index >= len(visible) {
			return m, nil
		}
		return m.selectOption(visible[a.Index], a.NextIndex)

	case keymap.CloseAction:
		return m.Close()

	case keymap.DeselectLastAction:
		if len(m.selected) == 0 {
			return m, nil
		}
		return m.deselectOption(m.selected[len(m.selected)-1])

	default:
		return m, nil
	}
}

// selectOption applies a selection made by Enter, a click, or a programmatic
// call. nextFocus is the focus position after the option leaves the visible
// list.
func (m Model[A]) selectOption(opt A, nextFocus int) (Model[A], tea.Cmd) {
	if m.cfg.Multi {
		// Append: chips render in the order the user picked them, and
		// Backspace removes the most recent.
		m.selected = append(m.selected, opt)
	} else {
		m.selected = []A{opt}
	}

	if !m.cfg.Multi && m.cfg.CloseOnSelect {
		closed, closeCmd := m.Close()
		return closed, tea.Batch(closeCmd, closed.selectionChangedCmd())
	}

	// Stay open for more input. Clearing the search text re-derives the
	// visible list; selecting can change the trigger's height, so remeasure.
	m.input.SetValue("")
	m.focusedIndex = options.ClampIndex(nextFocus, len(m.visibleOptions()))
	m.scrollOffset = 0
	m.cfg.Surface.Focus(InputID(m.cfg.IDPrefix))
	m = m.recomputeAlignment()

	var searchCmd tea.Cmd
	if m.cfg.Remote != nil {
		m, searchCmd = m.searchTextChanged()
	}
	return m, tea.Batch(m.selectionChangedCmd(), searchCmd)
}

// DeselectOption removes one selected option, e.g. when the host renders
// removable chips of its own.
func (m Model[A]) DeselectOption(opt A) (Model[A], tea.Cmd) {
	return m.deselectOption(opt)
}

func (m Model[A]) deselectOption(opt A) (Model[A], tea.Cmd) {
	kept := make([]A, 0, len(m.selected))
	for _, s := range m.selected {
		if s != opt {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(m.selected) {
		return m, nil
	}
	m.selected = kept
	if m.open {
		m.cfg.Surface.Focus(InputID(m.cfg.IDPrefix))
		m = m.recomputeAlignment()
	}
	return m, m.selectionChangedCmd()
}

// searchTextChanged is the TypeSearchText transition: focus resets to the
// top, and remote instances either drop below the threshold or (re)start the
// debounce timer.
func (m Model[A]) searchTextChanged() (Model[A], tea.Cmd) {
	m.focusedIndex = 0
	m.scrollOffset = 0
	if m.cfg.Remote == nil {
		return m, nil
	}
	if len(m.input.Value()) < m.cfg.Remote.Threshold {
		m.remote.reset()
		m.deb.Cancel()
		return m, nil
	}
	_, cmd := m.deb.Bump()
	return m, cmd
}

func (m Model[A]) handleDebounceElapsed(msg debounce.Elapsed) (Model[A], tea.Cmd) {
	if !m.open || m.cfg.Remote == nil || !m.deb.Live(msg.ID, msg.Gen) {
		return m, nil
	}
	if len(m.input.Value()) < m.cfg.Remote.Threshold {
		return m, nil
	}
	// Loading is entered before the request resolves so the spinner shows
	// deterministically.
	m.remote.status = StatusLoading
	m.remote.err = nil
	return m, tea.Batch(
		m.cfg.Remote.fetch(m.cfg.IDPrefix, msg.Gen, m.input.Value()),
		m.spin.Tick,
	)
}

func (m Model[A]) handleRemoteResult(msg remoteResultMsg[A]) (Model[A], tea.Cmd) {
	if m.cfg.Remote == nil || !m.deb.Live(msg.id, msg.gen) {
		// Superseded by a later keystroke, or the popover was closed and
		// reset in the meantime. Take-last: drop silently.
		return m, nil
	}
	if msg.err != nil {
		m.remote.status = StatusFailed
		m.remote.err = msg.err
		m.remote.options = nil
	} else {
		m.remote.status = StatusLoaded
		m.remote.err = nil
		m.remote.options = msg.options
	}
	m.focusedIndex = 0
	m.scrollOffset = 0
	if m.open {
		m = m.recomputeAlignment()
	}
	return m, nil
}

func (m Model[A]) handleMouse(msg tea.MouseMsg) (Model[A], tea.Cmd) {
	if !m.open || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	x, y := float64(msg.X), float64(msg.Y)
	trigger, okT := m.cfg.Surface.Measure(ComponentID(m.cfg.IDPrefix))
	popover, okP := m.cfg.Surface.Measure(ContainerID(m.cfg.IDPrefix))
	if !okT || !okP {
		// Without geometry there is no way to tell inside from outside;
		// leave the popover alone.
		return m, nil
	}
	if trigger.Contains(x, y) || popover.Contains(x, y) {
		return m, nil
	}
	return m.Close()
}
