package dnd

import "time"

// Scheduler runs deferred callbacks on the host event loop. Callbacks must
// never run concurrently with other engine calls.
type Scheduler interface {
	// After runs fn once d has elapsed.
	After(d time.Duration, fn func())

	// NextFrame runs fn after the host has painted the current frame.
	NextFrame(fn func())
}
