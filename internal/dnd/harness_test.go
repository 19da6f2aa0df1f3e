package dnd

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

const testFrame = 16 * time.Millisecond

type fakeTask struct {
	at  time.Duration
	seq int
	fn  func()
}

// fakeScheduler runs deferred callbacks against virtual time.
type fakeScheduler struct {
	now   time.Duration
	seq   int
	tasks []fakeTask
}

func (f *fakeScheduler) After(d time.Duration, fn func()) {
	f.tasks = append(f.tasks, fakeTask{at: f.now + d, seq: f.seq, fn: fn})
	f.seq++
}

func (f *fakeScheduler) NextFrame(fn func()) { f.After(testFrame, fn) }

func (f *fakeScheduler) Advance(d time.Duration) {
	target := f.now + d
	for {
		sort.SliceStable(f.tasks, func(i, j int) bool {
			if f.tasks[i].at != f.tasks[j].at {
				return f.tasks[i].at < f.tasks[j].at
			}
			return f.tasks[i].seq < f.tasks[j].seq
		})
		if len(f.tasks) == 0 || f.tasks[0].at > target {
			break
		}
		task := f.tasks[0]
		f.tasks = f.tasks[1:]
		f.now = task.at
		task.fn()
	}
	f.now = target
}

type block struct {
	id    string
	label string
}

func (b block) Identifier() string { return b.id }

type fakeElement struct {
	style  Style
	rect   Rect
	placed bool
}

func (e *fakeElement) Style() *Style { return &e.style }

const rowHeight = 3

// harness is a minimal host: it stacks one fakeElement per key vertically
// and re-renders whenever the sorter asks.
type harness struct {
	t        *testing.T
	sched    *fakeScheduler
	surface  *Listeners
	sorter   *Sorter[block]
	payloads []block
	elements map[Key]*fakeElement
	views    []View[block]

	deferRender bool
	pending     bool
	renders     int
	commits     int
	commitTimes []time.Duration
}

func newHarness(t *testing.T, ids ...string) *harness {
	t.Helper()
	h := &harness{
		t:        t,
		sched:    &fakeScheduler{},
		surface:  &Listeners{},
		elements: map[Key]*fakeElement{},
	}
	for _, id := range ids {
		h.payloads = append(h.payloads, block{id: id, label: "label " + id})
	}
	n := 0
	h.sorter = NewSorter[block](Options{
		Scheduler: h.sched,
		Surface:   h.surface,
		Measurer: MeasureFunc(func(el Element) (Rect, bool) {
			fe, ok := el.(*fakeElement)
			if !ok || !fe.placed {
				return Rect{}, false
			}
			return fe.rect, true
		}),
		Rerender: func() {
			h.commits++
			h.commitTimes = append(h.commitTimes, h.sched.now)
			if h.deferRender {
				h.pending = true
				return
			}
			h.render()
		},
		Keys: NewKeyRegistryWith(func() Key {
			n++
			return Key(fmt.Sprintf("k%d", n))
		}),
	})
	h.render()
	return h
}

func (h *harness) render() {
	h.pending = false
	h.payloads = h.sorter.Arrange(h.payloads)
	h.views = h.sorter.DeriveView(h.payloads)
	for i, v := range h.views {
		el := h.elements[v.Key]
		if el == nil {
			el = &fakeElement{}
			h.elements[v.Key] = el
		}
		el.rect = Rect{X: 0, Y: i * rowHeight, Width: 20, Height: rowHeight}
		el.placed = true
	}
	for _, v := range h.views {
		v.Events.Ref(h.elements[v.Key])
	}
	h.renders++
}

func (h *harness) flush() {
	if h.pending {
		h.render()
	}
}

func (h *harness) view(id string) View[block] {
	h.t.Helper()
	for _, v := range h.views {
		if v.Payload.id == id {
			return v
		}
	}
	h.t.Fatalf("no view for %q", id)
	return View[block]{}
}

func (h *harness) key(id string) Key { return h.view(id).Key }

func (h *harness) el(id string) *fakeElement { return h.elements[h.key(id)] }

func (h *harness) press(id string, p Point) { h.view(id).Events.PointerDown(p) }

func (h *harness) order() string {
	out := ""
	for i, it := range h.sorter.List().Items() {
		if i > 0 {
			out += ","
		}
		out += it.Payload.id
	}
	return out
}

// center returns the interior point of row i.
func center(i int) Point { return Point{X: 5, Y: i*rowHeight + 1} }
