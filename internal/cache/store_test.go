package cache

import (
	"path/filepath"
	"testing"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}

	if _, found, err := s.Get("missing"); err != nil || found {
		t.Errorf("Get(missing) found=%v err=%v", found, err)
	}
	if err := s.Set("a.jpg", "data:image/png;base64,AAA"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("a.jpg", "data:image/png;base64,BBB"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found, err := s.Get("a.jpg")
	if err != nil || !found || got != "data:image/png;base64,BBB" {
		t.Errorf("Get = %q found=%v err=%v", got, found, err)
	}
	if n, err := s.Count(); err != nil || n != 1 {
		t.Errorf("Count = %d err=%v", n, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Values survive reopening the file.
	s, err = NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, found, _ := s.Get("a.jpg"); !found {
		t.Error("value lost after reopen")
	}
}

func TestNop(t *testing.T) {
	var s Store = Nop{}
	if err := s.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := s.Get("k"); found {
		t.Error("Nop should never find anything")
	}
}
