// Package keymap resolves key presses into select actions. The resolver is a
// pure function of the key and the current view context, so every keyboard
// rule is testable without a running program.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Context is the slice of instance state the resolver needs.
type Context struct {
	FocusedIndex  int
	VisibleCount  int
	SelectedCount int
	SearchText    string
	Multi         bool
}

// Resolve maps a key press to an action. The second return value reports
// whether the key was consumed; unconsumed keys fall through to the search
// input so normal typing keeps working.
func Resolve(msg tea.KeyMsg, ctx Context) (Action, bool) {
	switch msg.String() {
	case "up":
		return MoveFocusAction{Index: clamp(ctx.FocusedIndex-1, ctx.VisibleCount)}, true
	case "down":
		return MoveFocusAction{Index: clamp(ctx.FocusedIndex+1, ctx.VisibleCount)}, true
	case "enter":
		if ctx.VisibleCount == 0 {
			// Enter on an empty list is a no-op, but the key is still
			// consumed so a surrounding form never sees it.
			return NoneAction{}, true
		}
		return SelectFocusedAction{
			Index: ctx.FocusedIndex,
			// Selecting removes the option from the visible list, shifting
			// later indices up by one; decrementing keeps focus on the item
			// now occupying this position.
			NextIndex: clamp(ctx.FocusedIndex-1, ctx.VisibleCount-1),
		}, true
	case "esc":
		return CloseAction{}, true
	case "backspace":
		if ctx.Multi && ctx.SearchText == "" && ctx.SelectedCount > 0 {
			return DeselectLastAction{}, true
		}
		return NoneAction{}, false
	default:
		return NoneAction{}, false
	}
}

func clamp(idx, count int) int {
	if idx < 0 || count <= 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}
