package dnd

// reconcile corrects the layout jump a commit causes for one item.
//
// The dragged element is pinned back to the session's origin rectangle and
// the origin pointer absorbs the same offset, so the next preview frame
// continues from where the element appears. Every other element is pinned
// at its previous rectangle and, one frame later, released to glide to its
// new slot.
func (s *Sorter[T]) reconcile(it *Item[T], el Element, newRect Rect) {
	st := el.Style()
	sess := s.session

	if it.Key == sess.DraggedKey {
		offset := sess.OriginRect.Origin().Sub(newRect.Origin())
		st.Transition = 0
		st.Transform = offset
		sess.OriginPointer = sess.OriginPointer.Sub(offset)
	} else {
		offset := it.LastRect.Origin().Sub(newRect.Origin())
		st.Transition = 0
		st.Transform = offset
		glide := s.gate.Window()
		s.sched.NextFrame(func() {
			st.Transform = Point{}
			st.Transition = glide
		})
	}

	it.Element = el
	it.LastRect = newRect
}
