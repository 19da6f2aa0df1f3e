package dnd

import (
	"testing"

	"github.com/google/uuid"
)

func TestKeyRegistry_MintsOncePerIdentifier(t *testing.T) {
	r := NewKeyRegistry()
	a := r.KeyFor("1")
	b := r.KeyFor("2")
	if a == b {
		t.Fatalf("distinct identifiers share key %s", a)
	}
	if r.KeyFor("1") != a {
		t.Fatalf("key for the same identifier changed")
	}
	if _, err := uuid.Parse(string(a)); err != nil {
		t.Fatalf("key is not a uuid: %v", err)
	}
	if k, ok := r.Lookup("2"); !ok || k != b {
		t.Fatalf("lookup: %s %v", k, ok)
	}
	if _, ok := r.Lookup("3"); ok {
		t.Fatalf("lookup minted")
	}
	if r.Len() != 2 {
		t.Fatalf("len: %d", r.Len())
	}
}
