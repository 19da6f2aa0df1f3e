package dnd

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a [Sorter]. Scheduler, Surface and Measurer are
// required.
type Options struct {
	// Cooldown is the hit-test window. Zero means DefaultCooldown.
	Cooldown time.Duration

	Scheduler Scheduler
	Surface   Surface
	Measurer  Measurer

	// Rerender is called after a commit so the host re-derives the view
	// in the new order.
	Rerender func()

	// Keys is the identity registry. Nil means a fresh UUID registry.
	Keys *KeyRegistry

	Logger *log.Logger
}

// Events are the callbacks a host wires to the element it renders for a view.
type Events struct {
	// Ref must be called once per render pass with the element laid out
	// for this view.
	Ref func(el Element)

	// PointerDown starts a drag at p.
	PointerDown func(p Point)
}

// View is one entry the host renders, in order.
type View[T Identified] struct {
	Key     Key
	Payload T
	Events  Events
}

// Sorter is one drag-reorderable list. It is owned by a single host
// component and must be closed when that component goes away.
type Sorter[T Identified] struct {
	list     *OrderList[T]
	gate     *CooldownGate
	sched    Scheduler
	surface  Surface
	measurer Measurer
	rerender func()
	logger   *log.Logger

	// shown holds the keys of the most recent DeriveView.
	shown map[Key]bool

	// pending holds the keys still to be reconciled in the layout pass that
	// follows a commit. Each is reconciled once; any other Ref only refreshes
	// the element and its rectangle.
	pending map[Key]bool

	session *Session
}

// NewSorter returns an idle sorter.
func NewSorter[T Identified](opts Options) *Sorter[T] {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rerender := opts.Rerender
	if rerender == nil {
		rerender = func() {}
	}
	return &Sorter[T]{
		list:     NewOrderList[T](keys),
		gate:     NewCooldownGate(opts.Cooldown, opts.Scheduler),
		sched:    opts.Scheduler,
		surface:  opts.Surface,
		measurer: opts.Measurer,
		rerender: rerender,
		logger:   logger,
	}
}

// List returns the underlying order list.
func (s *Sorter[T]) List() *OrderList[T] { return s.list }

// Gate returns the hit-test cooldown gate.
func (s *Sorter[T]) Gate() *CooldownGate { return s.gate }

// Session returns the active drag session, or nil when idle.
func (s *Sorter[T]) Session() *Session { return s.session }

// Dragging reports whether a drag session is active.
func (s *Sorter[T]) Dragging() bool { return s.session != nil }

// DeriveView declares every identity in payloads and returns the views to
// render, in payload order. The same identifier always yields the same key,
// and only its first payload gets a view.
//
// Each call starts a layout pass. The pass right after a commit is the one
// whose Refs run the position reconciler.
func (s *Sorter[T]) DeriveView(payloads []T) []View[T] {
	payloads = Distinct(payloads)
	keys := s.list.Declare(payloads)
	views := make([]View[T], len(payloads))
	s.shown = make(map[Key]bool, len(keys))
	s.pending = nil
	if s.session != nil && s.session.committed {
		s.session.committed = false
		s.pending = make(map[Key]bool, len(keys))
	}
	for i, p := range payloads {
		key := keys[i]
		s.shown[key] = true
		if s.pending != nil {
			s.pending[key] = true
		}
		payload := p
		views[i] = View[T]{
			Key:     key,
			Payload: payload,
			Events: Events{
				Ref:         func(el Element) { s.bind(key, payload, el) },
				PointerDown: func(pt Point) { s.start(key, pt) },
			},
		}
	}
	return views
}

// Arrange returns payloads in the current list order.
func (s *Sorter[T]) Arrange(payloads []T) []T { return s.list.Arrange(payloads) }

// Close ends any active drag, detaches surface handlers and reopens the
// cooldown gate.
func (s *Sorter[T]) Close() {
	if s.session != nil {
		s.end("teardown")
	}
	s.gate.Reset()
}

func (s *Sorter[T]) bind(key Key, payload T, el Element) {
	if el == nil {
		return
	}
	rect, ok := s.measurer.Measure(el)
	if !ok {
		return
	}
	if s.list.Bind(key, payload, el, rect) {
		return
	}
	it := s.list.Item(key)
	if it == nil {
		return
	}
	if s.session == nil || !s.pending[key] {
		it.Element = el
		it.LastRect = rect
		return
	}
	delete(s.pending, key)
	s.reconcile(it, el, rect)
}

// start moves Idle -> Dragging.
func (s *Sorter[T]) start(key Key, p Point) {
	if s.session != nil {
		return
	}
	it := s.list.Item(key)
	if it == nil || it.Element == nil {
		return
	}
	el := it.Element
	rect, ok := s.measurer.Measure(el)
	if !ok {
		return
	}
	st := el.Style()
	st.Transition = 0
	st.Cursor = CursorGrabbing

	sess := &Session{
		DraggedKey:    key,
		OriginPointer: p,
		OriginRect:    rect.Translate(st.Transform),
		element:       el,
	}
	sess.dispose = s.surface.Subscribe(Handlers{Move: s.move, Release: s.release})
	s.session = sess
	s.logger.Debug("drag start", "key", key, "index", s.list.IndexOf(key), "x", p.X, "y", p.Y)
}

// move handles Dragging -> Dragging.
func (s *Sorter[T]) move(p Point) {
	sess := s.session
	if sess == nil {
		return
	}
	st := sess.element.Style()
	st.ZIndex = DragZIndex
	st.Cursor = CursorGrabbing
	st.Transform = p.Sub(sess.OriginPointer)

	if !s.gate.Sample() {
		return
	}

	from := s.list.IndexOf(sess.DraggedKey)
	if from < 0 {
		return
	}
	to := s.hovered(p, from)
	if to < 0 {
		return
	}

	sess.OriginPointer = p
	sess.committed = true
	s.list.Reorder(from, to)
	if rect, ok := s.measurer.Measure(sess.element); ok {
		sess.OriginRect = rect.Translate(st.Transform)
	}
	s.logger.Debug("drag commit", "key", sess.DraggedKey, "from", from, "to", to)
	s.rerender()
}

// hovered returns the index of the first tracked item, in list order, whose
// last known rectangle contains p. The item at skip, and items missing from
// the current view, are never considered.
func (s *Sorter[T]) hovered(p Point, skip int) int {
	for i, it := range s.list.items {
		if i == skip || it.Element == nil || !s.shown[it.Key] {
			continue
		}
		if IsPointerOver(p, it.LastRect) {
			return i
		}
	}
	return -1
}

// release handles Dragging -> Idle.
func (s *Sorter[T]) release(Point) {
	if s.session == nil {
		return
	}
	s.end("release")
}

func (s *Sorter[T]) end(reason string) {
	sess := s.session
	sess.element.Style().clearDrag()
	s.session = nil
	s.pending = nil
	s.logger.Debug("drag end", "key", sess.DraggedKey, "reason", reason, "index", s.list.IndexOf(sess.DraggedKey))
	sess.Reset()
}
