package dnd

import "time"

// DragZIndex is the stacking order applied to the element being dragged.
const DragZIndex = 100

// Cursor names the pointer shape an element asks the host to show.
type Cursor string

const (
	CursorDefault  Cursor = ""
	CursorGrabbing Cursor = "grabbing"
)

// Style holds the inline overrides the engine places on an element. The
// zero value means "no override".
type Style struct {
	ZIndex int
	Cursor Cursor

	// Transform offsets the element from its laid-out position.
	Transform Point

	// Transition, when non-zero, asks the host to animate changes to
	// Transform over this duration instead of applying them at once.
	Transition time.Duration
}

// clearDrag removes the overrides a drag places on the dragged element.
func (s *Style) clearDrag() {
	s.ZIndex = 0
	s.Cursor = CursorDefault
	s.Transform = Point{}
}

// Element is the persistent visual node the host renders for one key.
type Element interface {
	Style() *Style
}

// Measurer reports an element's laid-out rectangle, ignoring Transform.
// ok is false when the element has not been laid out yet.
type Measurer interface {
	Measure(el Element) (rect Rect, ok bool)
}

// MeasureFunc adapts a function to [Measurer].
type MeasureFunc func(el Element) (Rect, bool)

func (f MeasureFunc) Measure(el Element) (Rect, bool) { return f(el) }
