package smartselect

import (
	tea "github.com/charmbracelet/bubbletea"

	"smartselect/internal/debounce"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds each rune through Update as a keystroke and returns the
// model plus every message the resulting commands produced.
func typeText[A comparable](m Model[A], text string) (Model[A], []tea.Msg) {
	var msgs []tea.Msg
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = m.Update(runeMsg(string(r)))
		msgs = append(msgs, collect(cmd)...)
	}
	return m, msgs
}

// collect runs a command tree to completion and flattens the messages it
// yields. Batches are expanded recursively; tick-based commands block until
// they fire, so tests use short debounce intervals.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds the pipeline messages — debounce firings and query results —
// back into Update, the way the runtime would, and returns the messages
// produced in turn. Cursor-blink and spinner housekeeping is dropped so the
// pump terminates instead of following their self-rescheduling tick chains.
func deliver[A comparable](m Model[A], msgs []tea.Msg) (Model[A], []tea.Msg) {
	var produced []tea.Msg
	for _, msg := range msgs {
		switch msg.(type) {
		case debounce.Elapsed, remoteResultMsg[A]:
			var cmd tea.Cmd
			m, cmd = m.Update(msg)
			produced = append(produced, collect(cmd)...)
		}
	}
	return m, produced
}

func findSelection[A comparable](msgs []tea.Msg) (SelectionChangedMsg[A], bool) {
	for _, msg := range msgs {
		if sel, ok := msg.(SelectionChangedMsg[A]); ok {
			return sel, true
		}
	}
	return SelectionChangedMsg[A]{}, false
}

// measuredSurface returns a surface with the trigger, container and viewport
// of a single instance laid out mid-screen so the popover fits below.
func measuredSurface(prefix string) *StaticSurface {
	return &StaticSurface{
		Rects: map[string]Rect{
			ComponentID(prefix): {X: 2, Y: 10, Width: 40, Height: 3},
			ContainerID(prefix): {X: 2, Y: 13, Width: 40, Height: 10},
		},
		View:    Rect{Width: 120, Height: 40},
		HasView: true,
	}
}

var fruitOptions = []string{
	"Apple", "Banana", "Cherry", "Dragonfruit", "Elderberry",
	"Fig", "Grape", "Honeydew", "Kiwi",
}

// newFruitSelect builds a measured local instance over fruitOptions.
func newFruitSelect(mutate func(*Config[string])) (Model[string], *StaticSurface) {
	surface := measuredSurface("fruit")
	cfg := Config[string]{
		IDPrefix: "fruit",
		Label:    func(s string) string { return s },
		Surface:  surface,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	m := New(cfg)
	m = m.SetOptions(fruitOptions)
	return m, surface
}

// openSelect opens the instance and discards the open-time messages.
func openSelect[A comparable](m Model[A]) Model[A] {
	m, _ = m.Open()
	return m
}
