package yatta

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestVersionStoreRoundTrip(t *testing.T) {
	store := newVersionStore(t.TempDir())

	at := time.Now().Truncate(time.Second)
	if err := store.save("44V5", at); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	token, loadedAt, err := store.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "44V5" {
		t.Errorf("Expected token 44V5, got %q", token)
	}
	if !loadedAt.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, loadedAt)
	}
}

func TestVersionStoreMissingFile(t *testing.T) {
	store := newVersionStore(t.TempDir())

	token, at, err := store.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "" || !at.IsZero() {
		t.Error("Expected empty token for missing file")
	}
}

func TestVersionStoreMalformedFile(t *testing.T) {
	dir := t.TempDir()
	store := newVersionStore(dir)

	cases := []string{"garbage", "token,notanumber", ",12345", ""}
	for _, content := range cases {
		if err := os.WriteFile(filepath.Join(dir, "version"), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		token, _, err := store.load()
		if err != nil {
			t.Fatalf("load failed on %q: %v", content, err)
		}
		if token != "" {
			t.Errorf("Expected no token for %q, got %q", content, token)
		}
	}
}

func TestVersionStoreOverwrite(t *testing.T) {
	store := newVersionStore(t.TempDir())

	if err := store.save("old", time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.save("new", time.Now()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	token, _, err := store.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "new" {
		t.Errorf("Expected token new, got %q", token)
	}
}
