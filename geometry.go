package smartselect

// Rect is an axis-aligned rectangle in a top-left origin coordinate system.
// The unit is whatever the host surface measures in (pixels, terminal cells).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Placement indicates which side of the trigger the popover opens on.
type Placement int

const (
	PlacementBelow Placement = iota
	PlacementAbove
)

func (p Placement) String() string {
	if p == PlacementAbove {
		return "above"
	}
	return "below"
}

// Alignment is a computed popover position. The popover always matches the
// trigger's left edge and width. It is derived state: recomputed on open,
// resize and selection change, and discarded on close.
type Alignment struct {
	Placement Placement
	X         float64
	Y         float64
	Width     float64
}

// ComputeAlignment returns the popover alignment for the given trigger,
// popover content and viewport rectangles. The popover opens below the
// trigger when it fits inside the viewport, otherwise above with its bottom
// edge touching the trigger's top edge.
func ComputeAlignment(trigger, popover, viewport Rect) Alignment {
	a := Alignment{
		X:     trigger.X,
		Width: trigger.Width,
	}
	if trigger.Y+trigger.Height+popover.Height < viewport.Height {
		a.Placement = PlacementBelow
		a.Y = trigger.Y + trigger.Height
		return a
	}
	a.Placement = PlacementAbove
	a.Y = trigger.Y - popover.Height
	return a
}
