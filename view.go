package smartselect

import (
	"fmt"
	"strings"
)

// View renders the trigger: the always-visible element the user activates to
// open the popover. The popover itself is rendered separately by PopoverView
// so the host can place it with Overlay.
func (m Model[A]) View() string {
	st := m.cfg.Styles

	var content string
	switch {
	case m.cfg.Multi && len(m.selected) > 0:
		chips := make([]string, len(m.selected))
		for i, s := range m.selected {
			chips[i] = st.Chip.Render(m.cfg.Label(s))
		}
		content = strings.Join(chips, " ")
	case !m.cfg.Multi && len(m.selected) == 1:
		content = m.cfg.Label(m.selected[0])
	default:
		content = st.Placeholder.Render(m.cfg.Messages.Placeholder)
	}

	indicator := " ▾"
	if m.open && m.alignment != nil && m.alignment.Placement == PlacementAbove {
		indicator = " ▴"
	}
	return st.Trigger.Render(content + indicator)
}

// PopoverView renders the floating panel: search input, option list, and the
// loading/error/empty states. It returns "" while the popover is closed or
// not yet measured — an unmeasured popover stays hidden rather than
// rendering at a guessed position.
func (m Model[A]) PopoverView() string {
	if !m.open || m.alignment == nil {
		return ""
	}
	st := m.cfg.Styles

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.cfg.Remote != nil && m.remote.status == StatusLoading:
		b.WriteString(st.Loading.Render(m.spin.View() + "Searching..."))

	case m.cfg.Remote != nil && m.remote.status == StatusFailed:
		b.WriteString(st.ErrorBox.Render(m.remote.err.Error()))
		b.WriteString("\n")
		b.WriteString(st.Description.Render("esc to dismiss"))

	default:
		b.WriteString(m.renderOptions())
	}

	width := int(m.alignment.Width)
	popover := st.Popover
	if width > 0 {
		popover = popover.Width(width)
	}
	return popover.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model[A]) renderOptions() string {
	st := m.cfg.Styles
	visible := m.visibleOptions()

	if len(visible) == 0 {
		if m.input.Value() == "" {
			return st.Empty.Render(m.cfg.Messages.NoOptions)
		}
		return st.Empty.Render(fmt.Sprintf(m.cfg.Messages.NoResults, m.input.Value()))
	}

	start := m.scrollOffset
	if start > len(visible)-1 {
		start = len(visible) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + m.cfg.MaxVisible
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(st.Scroll.Render("↑ more"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		opt := visible[i]
		line := m.cfg.Label(opt)
		if m.cfg.Description != nil {
			if desc := m.cfg.Description(opt); desc != "" {
				line += "  " + st.Description.Render(desc)
			}
		}
		if i == m.focusedIndex {
			b.WriteString(st.Focused.Render("> " + line))
		} else {
			b.WriteString(st.Option.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if end < len(visible) {
		b.WriteString(st.Scroll.Render("↓ more"))
		b.WriteString("\n")
	}
	return b.String()
}
