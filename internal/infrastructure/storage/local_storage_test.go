package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorage_StoreLoadDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	t.Setenv("DOCUMENT_STORAGE_PATH", root)
	s := NewLocalStorage()

	path, err := s.Store(ctx, []byte("%PDF-1.4"), "AF-2025-001.pdf", "invoices/2025")
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	if path != filepath.Join(root, "invoices", "2025", "AF-2025-001.pdf") {
		t.Fatalf("unexpected path: %s", path)
	}

	data, err := s.Load(ctx, path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(data) != "%PDF-1.4" {
		t.Fatalf("unexpected content: %q", data)
	}

	if err := s.Delete(ctx, path); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected the file to be removed, stat err=%v", err)
	}

	// Deleting twice is a no-op.
	if err := s.Delete(ctx, path); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
}

func TestLocalStorage_StoreNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	t.Setenv("DOCUMENT_STORAGE_PATH", t.TempDir())
	s := NewLocalStorage()

	first, err := s.Store(ctx, []byte("one"), "AF-2025-001.pdf", "invoices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Store(ctx, []byte("two"), "AF-2025-001.pdf", "invoices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := s.Store(ctx, []byte("three"), "AF-2025-001.pdf", "invoices")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(second) != "AF-2025-001-1.pdf" {
		t.Fatalf("expected suffixed name, got %s", second)
	}
	if filepath.Base(third) != "AF-2025-001-2.pdf" {
		t.Fatalf("expected suffixed name, got %s", third)
	}

	data, err := s.Load(ctx, first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("original file was overwritten: %q", data)
	}
}
