package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"blocksort-cli/internal/dnd"
	"blocksort-cli/internal/model"
	"blocksort-cli/internal/source"

	tea "github.com/charmbracelet/bubbletea"
)

type deferredCall struct {
	d  time.Duration
	fn func()
}

// tester drives an appModel through Update with a manual clock and a
// scheduler that records callbacks instead of starting timers.
type tester struct {
	t     *testing.T
	m     appModel
	now   time.Time
	calls []deferredCall
}

func newTester(t *testing.T, src source.Source) *tester {
	t.Helper()
	tt := &tester{t: t, now: time.Unix(1700000000, 0)}
	tt.m = newAppModel(context.Background(), Options{Source: src})
	tt.m.board.now = func() time.Time { return tt.now }
	tt.m.board.sched.tick = func(d time.Duration, fn func()) tea.Cmd {
		tt.calls = append(tt.calls, deferredCall{d: d, fn: fn})
		return nil
	}
	tt.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	tt.send(tt.m.Init()())
	return tt
}

func (tt *tester) send(msg tea.Msg) tea.Cmd {
	tt.t.Helper()
	mAny, cmd := tt.m.Update(msg)
	tt.m = mAny.(appModel)
	return cmd
}

func (tt *tester) press(x, y int) {
	tt.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (tt *tester) move(x, y int) {
	tt.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func (tt *tester) release(x, y int) {
	tt.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// fire delivers every recorded callback scheduled with delay d.
func (tt *tester) fire(d time.Duration) int {
	var due []deferredCall
	rest := tt.calls[:0]
	for _, c := range tt.calls {
		if c.d == d {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	tt.calls = rest
	for _, c := range due {
		tt.send(deferredMsg{fn: c.fn})
	}
	return len(due)
}

func (tt *tester) order() string {
	var titles []string
	for _, b := range tt.m.board.blocks {
		titles = append(titles, b.Title())
	}
	return strings.Join(titles, ",")
}

func (tt *tester) node(id string) *blockNode {
	tt.t.Helper()
	for _, n := range tt.m.board.nodes {
		if n.block.ID == id {
			return n
		}
	}
	tt.t.Fatalf("no node for %q", id)
	return nil
}

func threeBlocks() source.Source {
	return source.Static(
		model.Block{ID: "1", Label: "Go"},
		model.Block{ID: "2", Label: "Rust"},
		model.Block{ID: "3", Label: "SQL"},
	)
}

// interior returns a point strictly inside block row i of the default layout.
func interior(i int) (int, int) { return 5, headerHeight + i*blockHeight + 1 }

type failingSource struct{}

func (failingSource) Load(context.Context) ([]model.Block, error) { return nil, errors.New("boom") }
func (failingSource) String() string                              { return "broken" }

func TestLoad_LaysOutBlocksInSourceOrder(t *testing.T) {
	tt := newTester(t, threeBlocks())

	if got := tt.order(); got != "Go,Rust,SQL" {
		t.Fatalf("order: got %s", got)
	}
	for i, id := range []string{"1", "2", "3"} {
		want := dnd.Rect{X: marginX, Y: headerHeight + i*blockHeight, Width: 80 - 2*marginX, Height: blockHeight}
		if got := tt.node(id).rect; got != want {
			t.Fatalf("rect %s: got %+v want %+v", id, got, want)
		}
	}
	v := tt.m.View()
	for _, s := range []string{"Go", "Rust", "SQL", "3 blocks"} {
		if !strings.Contains(v, s) {
			t.Fatalf("view missing %q:\n%s", s, v)
		}
	}
}

func TestLoad_ErrorShowsStatusAndRendersNoBlocks(t *testing.T) {
	tt := newTester(t, failingSource{})

	if len(tt.m.board.blocks) != 0 || len(tt.m.board.nodes) != 0 {
		t.Fatalf("expected empty board, got %d blocks", len(tt.m.board.blocks))
	}
	if v := tt.m.View(); !strings.Contains(v, "error: boom") {
		t.Fatalf("status line missing:\n%s", v)
	}
}

func TestDrag_MouseReordersAndDisplacedBlockGlides(t *testing.T) {
	tt := newTester(t, threeBlocks())

	tt.press(interior(0))
	if !tt.m.board.sorter.Dragging() {
		t.Fatalf("expected drag after press on a block")
	}

	tt.move(interior(1))
	if got := tt.order(); got != "Rust,Go,SQL" {
		t.Fatalf("order after drag: got %s", got)
	}

	goNode, rust := tt.node("1"), tt.node("2")
	if got := goNode.visualRect().Y; got != headerHeight+blockHeight {
		t.Fatalf("dragged block should stay under the pointer at row %d, got %d", headerHeight+blockHeight, got)
	}
	if got := rust.visualRect().Y; got != headerHeight+blockHeight {
		t.Fatalf("displaced block should start at its old row, got %d", got)
	}
	if got := tt.m.View(); !strings.Contains(got, "moving Go") {
		t.Fatalf("footer should name the dragged block:\n%s", got)
	}

	if n := tt.fire(frameInterval); n == 0 {
		t.Fatalf("expected a next-frame callback after the swap")
	}
	if got := rust.style.Transition; got != dnd.DefaultCooldown {
		t.Fatalf("glide duration: got %s", got)
	}

	tt.now = tt.now.Add(dnd.DefaultCooldown / 2)
	tt.send(animTickMsg{})
	if y := rust.shown.Y; y <= 0 || y >= blockHeight {
		t.Fatalf("mid-glide offset: got %d", y)
	}

	tt.now = tt.now.Add(dnd.DefaultCooldown)
	tt.send(animTickMsg{})
	if got := rust.visualRect().Y; got != headerHeight {
		t.Fatalf("displaced block should settle at row %d, got %d", headerHeight, got)
	}

	tt.release(interior(1))
	if tt.m.board.sorter.Dragging() {
		t.Fatalf("release should end the drag")
	}
	if goNode.style != (dnd.Style{}) {
		t.Fatalf("dragged style not cleared: %+v", goNode.style)
	}
	if tt.m.board.surface.Len() != 0 {
		t.Fatalf("surface handlers leaked")
	}
}

func TestDrag_CooldownLimitsCommitsFromMouse(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.press(interior(0))

	tt.move(interior(1))
	tt.move(5, headerHeight+2*blockHeight+2)
	if got := tt.order(); got != "Rust,Go,SQL" {
		t.Fatalf("second commit inside the window: got %s", got)
	}

	if n := tt.fire(dnd.DefaultCooldown); n != 1 {
		t.Fatalf("expected one gate reopen, got %d", n)
	}
	tt.move(5, headerHeight+2*blockHeight+1)
	if got := tt.order(); got != "Rust,SQL,Go" {
		t.Fatalf("commit after the window: got %s", got)
	}
}

func TestDrag_PressOffBlocksOrWithOtherButtonsIsIgnored(t *testing.T) {
	tt := newTester(t, threeBlocks())

	tt.press(0, 0)
	if tt.m.board.sorter.Dragging() {
		t.Fatalf("press outside blocks started a drag")
	}

	x, y := interior(0)
	tt.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	tt.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if tt.m.board.sorter.Dragging() {
		t.Fatalf("non-left button started a drag")
	}

	tt.move(interior(1))
	tt.release(interior(1))
	if got := tt.order(); got != "Go,Rust,SQL" {
		t.Fatalf("order changed without a drag: %s", got)
	}
}

func TestView_DraggedBlockPaintsOnTop(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.press(interior(0))
	// One row down: Go now overlaps Rust's top border without entering it.
	x, y := interior(0)
	tt.move(x, y+1)

	if got := tt.order(); got != "Go,Rust,SQL" {
		t.Fatalf("unexpected commit: %s", got)
	}
	lines := strings.Split(tt.m.View(), "\n")
	row := headerHeight + blockHeight
	if !strings.Contains(lines[row], "┗") || strings.Contains(lines[row], "╭") {
		t.Fatalf("row %d should show the dragged block's bottom border: %q", row, lines[row])
	}
}

func TestReload_KeepsUserOrderAndAppendsNewBlocks(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.press(interior(0))
	tt.move(interior(1))

	tt.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if tt.m.loading {
		t.Fatalf("reload should wait for the drag to end")
	}
	tt.release(interior(1))

	tt.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !tt.m.loading {
		t.Fatalf("reload not started")
	}
	tt.send(blocksLoadedMsg{blocks: []model.Block{
		{ID: "1", Label: "Go"},
		{ID: "2", Label: "Rust"},
		{ID: "3", Label: "SQL"},
		{ID: "4", Label: "Zig"},
	}})
	if got := tt.order(); got != "Rust,Go,SQL,Zig" {
		t.Fatalf("order after reload: got %s", got)
	}
}

func TestReload_DroppedBlockLosesItsNode(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.send(blocksLoadedMsg{blocks: []model.Block{{ID: "1", Label: "Go"}, {ID: "3", Label: "SQL"}}})

	if len(tt.m.board.nodes) != 2 {
		t.Fatalf("nodes: got %d want 2", len(tt.m.board.nodes))
	}
	// SQL moved up into the row Rust used to occupy.
	tt.press(interior(0))
	tt.move(interior(1))
	if got := tt.order(); got != "SQL,Go" {
		t.Fatalf("order: got %s", got)
	}
}

func TestQuit_TearsDownDrag(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.press(interior(0))

	cmd := tt.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if tt.m.board.sorter.Dragging() || tt.m.board.surface.Len() != 0 {
		t.Fatalf("drag not torn down on quit")
	}
}

func TestNodesPersistAcrossLayouts(t *testing.T) {
	tt := newTester(t, threeBlocks())
	before := tt.node("2")
	tt.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	if tt.node("2") != before {
		t.Fatalf("node recreated on re-layout")
	}
	if got := before.rect.Width; got != 60-2*marginX {
		t.Fatalf("width after resize: got %d", got)
	}
}

func TestDrag_ResizeMidDragKeepsPreviewUnderPointer(t *testing.T) {
	tt := newTester(t, threeBlocks())
	tt.press(interior(0))
	// Overshoot into Rust so the commit needs a non-zero correction.
	x, y := interior(1)
	tt.move(x, y+1)
	tt.move(x, y+2)

	goNode := tt.node("1")
	before := goNode.visualRect()
	origin := tt.m.board.sorter.Session().OriginPointer

	tt.send(tea.WindowSizeMsg{Width: 70, Height: 24})
	tt.move(x, y+2)

	after := goNode.visualRect()
	if after.X != before.X || after.Y != before.Y {
		t.Fatalf("preview moved on resize: %+v -> %+v", before, after)
	}
	if got := tt.m.board.sorter.Session().OriginPointer; got != origin {
		t.Fatalf("origin pointer changed on resize: %+v -> %+v", origin, got)
	}
	if got := tt.order(); got != "Rust,Go,SQL" {
		t.Fatalf("order: got %s", got)
	}
}

func TestLoad_DuplicateIdentifiersShowOnce(t *testing.T) {
	tt := newTester(t, source.Static(
		model.Block{ID: "1", Label: "Go"},
		model.Block{ID: "2", Label: "Rust"},
		model.Block{ID: "1", Label: "Go again"},
	))
	if got := tt.order(); got != "Go,Rust" {
		t.Fatalf("order: got %s", got)
	}
	if len(tt.m.board.nodes) != 2 {
		t.Fatalf("nodes: got %d want 2", len(tt.m.board.nodes))
	}
}
