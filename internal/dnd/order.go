package dnd

import "fmt"

// Identified is implemented by payloads that carry a stable identifier.
type Identified interface {
	Identifier() string
}

// Item is one tracked entry in an [OrderList].
type Item[T Identified] struct {
	Key      Key
	Payload  T
	Element  Element
	LastRect Rect
}

// OrderList is the ordered sequence of tracked items. Its order is the
// render order.
//
// Tracking is two-phase. Declare records every identity in a payload
// sequence up front; Bind then attaches elements as the host renders them.
type OrderList[T Identified] struct {
	keys     *KeyRegistry
	declared map[Key]struct{}
	items    []*Item[T]
}

// NewOrderList returns an empty list that takes keys from keys.
func NewOrderList[T Identified](keys *KeyRegistry) *OrderList[T] {
	return &OrderList[T]{keys: keys, declared: map[Key]struct{}{}}
}

// Declare returns the key for each payload, in payload order, and records
// each distinct identity as seen.
func (l *OrderList[T]) Declare(payloads []T) []Key {
	out := make([]Key, len(payloads))
	for i, p := range payloads {
		k := l.keys.KeyFor(p.Identifier())
		l.declared[k] = struct{}{}
		out[i] = k
	}
	return out
}

// Declared returns the number of distinct identities seen so far.
func (l *OrderList[T]) Declared() int { return len(l.declared) }

// Bind starts tracking el for key. It only registers when nothing is yet
// tracked for key and there is room, i.e. more identities have been declared
// than items are tracked. It reports whether a new entry was appended. For
// an already tracked key the payload is refreshed and Bind returns false.
func (l *OrderList[T]) Bind(key Key, payload T, el Element, rect Rect) bool {
	if it := l.Item(key); it != nil {
		it.Payload = payload
		return false
	}
	if _, ok := l.declared[key]; !ok {
		return false
	}
	if l.Declared() <= len(l.items) {
		return false
	}
	l.items = append(l.items, &Item[T]{Key: key, Payload: payload, Element: el, LastRect: rect})
	return true
}

// Reorder removes the item at from and reinserts it at to. Both indexes must
// be in range; anything else is a caller bug and panics.
func (l *OrderList[T]) Reorder(from, to int) {
	n := len(l.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		panic(fmt.Sprintf("dnd: reorder index out of range [%d -> %d] with length %d", from, to, n))
	}
	if from == to {
		return
	}
	it := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = it
}

// IndexOf returns the position of key, or -1.
func (l *OrderList[T]) IndexOf(key Key) int {
	for i, it := range l.items {
		if it.Key == key {
			return i
		}
	}
	return -1
}

// Item returns the tracked item for key, or nil.
func (l *OrderList[T]) Item(key Key) *Item[T] {
	if i := l.IndexOf(key); i >= 0 {
		return l.items[i]
	}
	return nil
}

// Len returns the number of tracked items.
func (l *OrderList[T]) Len() int { return len(l.items) }

// Items returns the tracked items in order. The slice is a copy; the items
// are shared.
func (l *OrderList[T]) Items() []*Item[T] {
	return append([]*Item[T](nil), l.items...)
}

// Keys returns the tracked keys in order.
func (l *OrderList[T]) Keys() []Key {
	out := make([]Key, len(l.items))
	for i, it := range l.items {
		out[i] = it.Key
	}
	return out
}

// Arrange returns payloads sorted into list order. Payloads whose identity
// is not tracked keep their relative order and follow the tracked ones.
// Each identity appears once: the first payload carrying it wins, matching
// the single item the list tracks for it.
func (l *OrderList[T]) Arrange(payloads []T) []T {
	payloads = Distinct(payloads)
	byKey := make(map[Key]T, len(payloads))
	var untracked []T
	for _, p := range payloads {
		k, ok := l.keys.Lookup(p.Identifier())
		if !ok || l.IndexOf(k) < 0 {
			untracked = append(untracked, p)
			continue
		}
		byKey[k] = p
	}
	out := make([]T, 0, len(payloads))
	for _, it := range l.items {
		if p, ok := byKey[it.Key]; ok {
			out = append(out, p)
		}
	}
	return append(out, untracked...)
}

// Distinct drops every payload whose identifier already appeared earlier in
// payloads.
func Distinct[T Identified](payloads []T) []T {
	seen := make(map[string]struct{}, len(payloads))
	out := make([]T, 0, len(payloads))
	for _, p := range payloads {
		id := p.Identifier()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}
	return out
}
