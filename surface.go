package smartselect

// Surface is the host-provided capability for geometry and focus side
// effects. The state machine never touches a rendering surface directly; it
// requests measurements and focus changes by element id and carries on if
// the surface cannot satisfy them.
type Surface interface {
	// Measure returns the rectangle of the element with the given id.
	// The second return value is false when the element is not mounted yet;
	// the component treats that as "keep the popover hidden".
	Measure(id string) (Rect, bool)

	// Viewport returns the visible area the popover must fit inside.
	Viewport() (Rect, bool)

	// Focus moves input focus to the element with the given id.
	Focus(id string)

	// Blur removes input focus from the element with the given id.
	Blur(id string)

	// ScrollIntoView scrolls the element with the given id into the visible
	// region of its scrollable ancestor.
	ScrollIntoView(id string)
}

// nopSurface is the default surface: nothing is measurable, so the popover
// renders hidden until the host supplies a real surface.
type nopSurface struct{}

func (nopSurface) Measure(string) (Rect, bool) { return Rect{}, false }
func (nopSurface) Viewport() (Rect, bool)      { return Rect{}, false }
func (nopSurface) Focus(string)                {}
func (nopSurface) Blur(string)                 {}
func (nopSurface) ScrollIntoView(string)       {}

// StaticSurface is a Surface backed by fixed rectangles, keyed by element
// id. Hosts with simple layouts can fill it in after each render; tests use
// it to exercise placement without a terminal.
type StaticSurface struct {
	Rects    map[string]Rect
	View     Rect
	HasView  bool
	Focused  string
	Scrolled []string
}

func (s *StaticSurface) Measure(id string) (Rect, bool) {
	r, ok := s.Rects[id]
	return r, ok
}

func (s *StaticSurface) Viewport() (Rect, bool) {
	return s.View, s.HasView
}

func (s *StaticSurface) Focus(id string) { s.Focused = id }

func (s *StaticSurface) Blur(id string) {
	if s.Focused == id {
		s.Focused = ""
	}
}

func (s *StaticSurface) ScrollIntoView(id string) {
	s.Scrolled = append(s.Scrolled, id)
}
