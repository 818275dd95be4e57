package keymap

// Action is a resolved keyboard intent, applied by the select's Update loop.
type Action interface {
	Type() string
}

// MoveFocusAction moves the focused option to Index (already clamped).
type MoveFocusAction struct {
	Index int
}

func (a MoveFocusAction) Type() string { return "move_focus" }

// SelectFocusedAction selects the option at Index. NextIndex is the focus
// position after the selected option leaves the visible list.
type SelectFocusedAction struct {
	Index     int
	NextIndex int
}

func (a SelectFocusedAction) Type() string { return "select_focused" }

// CloseAction dismisses the popover.
type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

// DeselectLastAction removes the most recently selected option (multi only).
type DeselectLastAction struct{}

func (a DeselectLastAction) Type() string { return "deselect_last" }

// NoneAction is emitted for keys the resolver does not handle.
type NoneAction struct{}

func (a NoneAction) Type() string { return "none" }
