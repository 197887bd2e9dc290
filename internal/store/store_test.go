package store

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, path
}

func TestSetGetRoundTrip(t *testing.T) {
	s, path := openTestStore(t)

	type layout struct {
		Left  int `json:"left"`
		Right int `json:"right"`
	}

	if err := s.Set("space-1", "layout", layout{Left: 60, Right: 40}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got layout
	if !s.Get("space-1", "layout", &got) {
		t.Fatal("Get() should find the stored value")
	}
	if got.Left != 60 || got.Right != 40 {
		t.Errorf("Get() = %+v, want {60 40}", got)
	}

	// Write-through: a fresh Store over the same file sees the value.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	got = layout{}
	if !reopened.Get("space-1", "layout", &got) {
		t.Fatal("reopened store should find the stored value")
	}
	if got.Left != 60 {
		t.Errorf("reopened Get() = %+v, want Left=60", got)
	}
}

func TestNamespaceIsolation(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("space-a", "viewMode", "grid"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var mode string
	if s.Get("space-b", "viewMode", &mode) {
		t.Error("value set for space-a must not be visible under space-b")
	}
	if !s.Get("space-a", "viewMode", &mode) || mode != "grid" {
		t.Errorf("space-a viewMode = %q, want %q", mode, "grid")
	}
}

func TestGetMissing(t *testing.T) {
	s, _ := openTestStore(t)

	var v int
	if s.Get("nope", "nothing", &v) {
		t.Error("Get() on empty store should return false")
	}
}

func TestMalformedValueTreatedAsMissing(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("space-1", "gridColumns", "not-a-number"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var cols int
	if s.Get("space-1", "gridColumns", &cols) {
		t.Error("a blob that does not unmarshal into the target should read as missing")
	}
}

func TestDeleteAndClear(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Set("space-1", "layout", 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Delete("space-1", "layout"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	var v int
	if s.Get("space-1", "layout", &v) {
		t.Error("deleted key should be gone")
	}

	// Delete of an absent key is a no-op, not an error.
	if err := s.Delete("space-1", "layout"); err != nil {
		t.Errorf("Delete() of absent key error = %v", err)
	}

	if err := s.Set("space-2", "chatLayout", "x"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	var str string
	if s.Get("space-2", "chatLayout", &str) {
		t.Error("Clear() should remove all namespaces")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() on corrupt file error = %v, want nil", err)
	}
	var v int
	if s.Get("any", "any", &v) {
		t.Error("corrupt file should yield an empty store")
	}
}
