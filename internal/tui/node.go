package tui

import (
	"math"
	"time"

	"blocksort-cli/internal/dnd"
	"blocksort-cli/internal/model"
)

// blockNode is the persistent on-screen element for one key. It survives
// re-layouts for as long as its key is rendered.
type blockNode struct {
	key    dnd.Key
	block  model.Block
	events dnd.Events

	style   dnd.Style
	rect    dnd.Rect
	laidOut bool

	// shown is the offset currently painted. It follows style.Transform,
	// either at once or over style.Transition.
	shown  dnd.Point
	target dnd.Point
	glide  glide
}

// glide is an in-flight transform animation.
type glide struct {
	from  dnd.Point
	start time.Time
	dur   time.Duration
}

func (n *blockNode) Style() *dnd.Style { return &n.style }

// visualRect is where the node is painted right now.
func (n *blockNode) visualRect() dnd.Rect { return n.rect.Translate(n.shown) }

func (n *blockNode) grabbed() bool { return n.style.Cursor == dnd.CursorGrabbing }

// advance moves the painted offset toward the style transform and reports
// whether an animation is still running.
func (n *blockNode) advance(now time.Time) bool {
	if n.style.Transform != n.target {
		n.target = n.style.Transform
		if n.style.Transition > 0 && n.shown != n.target {
			n.glide = glide{from: n.shown, start: now, dur: n.style.Transition}
		} else {
			n.glide = glide{}
		}
	}
	if n.glide.dur <= 0 {
		n.shown = n.target
		return false
	}
	elapsed := now.Sub(n.glide.start)
	if elapsed >= n.glide.dur {
		n.shown = n.target
		n.glide = glide{}
		return false
	}
	f := float64(elapsed) / float64(n.glide.dur)
	n.shown = dnd.Point{
		X: lerp(n.glide.from.X, n.target.X, f),
		Y: lerp(n.glide.from.Y, n.target.Y, f),
	}
	return true
}

func lerp(a, b int, f float64) int {
	return a + int(math.Round(float64(b-a)*f))
}

// measureNode reports a node's laid-out rectangle.
func measureNode(el dnd.Element) (dnd.Rect, bool) {
	n, ok := el.(*blockNode)
	if !ok || n == nil || !n.laidOut {
		return dnd.Rect{}, false
	}
	return n.rect, true
}
