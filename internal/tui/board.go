package tui

import (
	"sort"
	"time"

	"blocksort-cli/internal/dnd"
	"blocksort-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// frame is the area blocks are stacked into.
type frame struct {
	x, y  int
	width int
	gap   int
}

// board owns the reorder engine and the nodes it drives. appModel is copied
// on every Update, so everything the engine calls back into lives here.
type board struct {
	blocks  []model.Block
	sorter  *dnd.Sorter[model.Block]
	surface *dnd.Listeners
	sched   *loopScheduler

	nodes map[dnd.Key]*blockNode
	// order is the render order of the last layout.
	order []dnd.Key

	dirty     bool
	animating bool
	now       func() time.Time
}

func newBoard(cooldown time.Duration, logger *log.Logger) *board {
	b := &board{
		surface: &dnd.Listeners{},
		sched:   newLoopScheduler(),
		nodes:   map[dnd.Key]*blockNode{},
		now:     time.Now,
	}
	b.sorter = dnd.NewSorter[model.Block](dnd.Options{
		Cooldown:  cooldown,
		Scheduler: b.sched,
		Surface:   b.surface,
		Measurer:  dnd.MeasureFunc(measureNode),
		Rerender:  func() { b.dirty = true },
		Logger:    logger,
	})
	return b
}

func (b *board) setBlocks(blocks []model.Block) {
	b.blocks = blocks
	b.dirty = true
}

// layout stacks one node per view top to bottom, then hands each node to its
// Ref callback. All rectangles are assigned before any Ref runs so the
// reconciler measures the finished layout.
func (b *board) layout(f frame) {
	b.dirty = false
	b.blocks = b.sorter.Arrange(b.blocks)
	views := b.sorter.DeriveView(b.blocks)

	live := make(map[dnd.Key]bool, len(views))
	b.order = b.order[:0]
	y := f.y
	for _, v := range views {
		n := b.nodes[v.Key]
		if n == nil {
			n = &blockNode{key: v.Key}
			b.nodes[v.Key] = n
		}
		n.block = v.Payload
		n.events = v.Events
		n.rect = dnd.Rect{X: f.x, Y: y, Width: f.width, Height: blockHeight}
		n.laidOut = true
		live[v.Key] = true
		b.order = append(b.order, v.Key)
		y += blockHeight + f.gap
	}
	for k := range b.nodes {
		if !live[k] {
			delete(b.nodes, k)
		}
	}
	for _, v := range views {
		v.Events.Ref(b.nodes[v.Key])
	}
}

// paintOrder returns nodes back to front.
func (b *board) paintOrder() []*blockNode {
	out := make([]*blockNode, 0, len(b.order))
	for _, k := range b.order {
		if n := b.nodes[k]; n != nil {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].style.ZIndex < out[j].style.ZIndex })
	return out
}

// nodeAt returns the topmost node painted under p.
func (b *board) nodeAt(p dnd.Point) *blockNode {
	nodes := b.paintOrder()
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].visualRect().Contains(p) {
			return nodes[i]
		}
	}
	return nil
}

// pointer routes a mouse event: presses go to the node under the pointer,
// motion and release go to the drag surface.
func (b *board) pointer(msg tea.MouseMsg) {
	p := dnd.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if n := b.nodeAt(p); n != nil && n.events.PointerDown != nil {
			n.events.PointerDown(p)
		}
	case tea.MouseActionMotion:
		b.surface.Move(p)
	case tea.MouseActionRelease:
		b.surface.Release(p)
	}
}

// dragged returns the node under an active drag, if any.
func (b *board) dragged() *blockNode {
	sess := b.sorter.Session()
	if sess == nil {
		return nil
	}
	return b.nodes[sess.DraggedKey]
}

// animate advances every node and keeps a frame tick running while any node
// is still gliding.
func (b *board) animate() tea.Cmd {
	now := b.now()
	active := false
	for _, n := range b.nodes {
		if n.advance(now) {
			active = true
		}
	}
	if !active || b.animating {
		return nil
	}
	b.animating = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return animTickMsg{} })
}
