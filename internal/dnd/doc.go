// Package dnd implements drag-to-reorder for a rendered list of items.
//
// A [Sorter] owns the ordered list, the drag session, the hit-test cooldown
// and the position reconciler. The host rendering layer supplies three
// capabilities: a [Measurer] that reports an element's laid-out rectangle,
// a [Surface] that delivers pointer motion and release while a drag is
// active, and a [Scheduler] that runs deferred callbacks on the host's
// event loop.
//
// Every method is expected to be called from that single event loop. None
// of the types in this package are safe for concurrent use.
//
// Render protocol:
//
//	payloads -> Sorter.DeriveView -> []View (key, payload, events)
//	host lays out one persistent element per key, then calls Events.Ref
//	pointer down on an element -> Events.PointerDown
//	Surface move/release -> drag session -> OrderList.Reorder -> Rerender
package dnd
