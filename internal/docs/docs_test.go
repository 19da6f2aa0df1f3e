package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "config,drag,sources" {
		t.Fatalf("topics: %s", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Drag ")
	if !ok || !strings.HasPrefix(body, "# Reordering blocks") {
		t.Fatalf("get drag: ok=%v body=%q", ok, body)
	}
	if _, ok := Get("missing"); ok {
		t.Fatalf("unexpected topic")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("empty topic found")
	}
}

func TestRender_PlainStyleKeepsText(t *testing.T) {
	out := Render("# Title\n\nsome body text", "notty", 40)
	if !strings.Contains(out, "some body text") {
		t.Fatalf("rendered output lost text: %q", out)
	}
}
