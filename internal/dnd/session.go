package dnd

// Session is the state of one active drag gesture.
type Session struct {
	DraggedKey Key

	// OriginPointer is the pointer position previews are measured from.
	// It moves to the pointer on every commit and is corrected by the
	// reconciler so the preview stays continuous.
	OriginPointer Point

	// OriginRect is the dragged element's on-screen rectangle at drag
	// start, re-based to its on-screen rectangle at every commit.
	OriginRect Rect

	// committed is set by a reorder and consumed by the next layout pass.
	committed bool

	element Element
	dispose func()
}

// Element returns the element being dragged.
func (s *Session) Element() Element { return s.element }

// Reset detaches the surface handlers and clears the session.
func (s *Session) Reset() {
	if s.dispose != nil {
		s.dispose()
	}
	*s = Session{}
}
