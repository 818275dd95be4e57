package smartselect

import "github.com/charmbracelet/lipgloss"

// Styles contains all the style definitions for the widget.
type Styles struct {
	Trigger     lipgloss.Style
	Placeholder lipgloss.Style
	Chip        lipgloss.Style
	Popover     lipgloss.Style
	Option      lipgloss.Style
	Focused     lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style
	Loading     lipgloss.Style
	ErrorBox    lipgloss.Style
	Scroll      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Trigger: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Chip: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Popover: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		Option:      lipgloss.NewStyle(),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Faint(true),
		Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
