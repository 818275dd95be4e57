package smartselect

// SelectionChangedMsg reports the instance's selection after any change:
// select, deselect, clear, or a programmatic SetSelected. ID is the
// instance's id prefix. Single-select carries zero or one element.
type SelectionChangedMsg[A comparable] struct {
	ID       string
	Selected []A
}

// OpenedMsg is emitted when the popover opens.
type OpenedMsg struct {
	ID string
}

// ClosedMsg is emitted when the popover closes.
type ClosedMsg struct {
	ID string
}

// remoteResultMsg carries the outcome of a remote query back into Update.
// Gen correlates the result with the debounce generation that fired it;
// stale generations are dropped without touching state.
type remoteResultMsg[A comparable] struct {
	id      string
	gen     int
	options []A
	err     error
}
