package dnd

// Handlers receive pointer events from a drag surface.
type Handlers struct {
	Move    func(p Point)
	Release func(p Point)
}

// Surface is the scope over which move and release are observed during a
// drag. It is wider than any single element, so a drag keeps tracking after
// the pointer leaves the element it started on.
type Surface interface {
	// Subscribe attaches h and returns a function that detaches it. The
	// disposer is safe to call more than once.
	Subscribe(h Handlers) (dispose func())
}

type subscription struct {
	id uint64
	h  Handlers
}

// Listeners is a [Surface] that hosts feed by calling Move and Release for
// every pointer event on the surface.
type Listeners struct {
	nextID uint64
	subs   []subscription
}

// Subscribe implements [Surface].
func (l *Listeners) Subscribe(h Handlers) func() {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscription{id: id, h: h})
	return func() { l.remove(id) }
}

func (l *Listeners) remove(id uint64) {
	for i := range l.subs {
		if l.subs[i].id == id {
			copy(l.subs[i:], l.subs[i+1:])
			l.subs[len(l.subs)-1] = subscription{}
			l.subs = l.subs[:len(l.subs)-1]
			return
		}
	}
}

// Len returns the number of attached handler sets.
func (l *Listeners) Len() int { return len(l.subs) }

// Move delivers pointer motion to every attached handler.
func (l *Listeners) Move(p Point) {
	for _, s := range l.snapshot() {
		if s.h.Move != nil {
			s.h.Move(p)
		}
	}
}

// Release delivers a pointer release to every attached handler. Handlers
// may detach themselves while being called.
func (l *Listeners) Release(p Point) {
	for _, s := range l.snapshot() {
		if s.h.Release != nil {
			s.h.Release(p)
		}
	}
}

func (l *Listeners) snapshot() []subscription {
	if len(l.subs) == 0 {
		return nil
	}
	return append([]subscription(nil), l.subs...)
}
