package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cardsmith/internal/domain"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := store.Write(context.Background(), "cards/job-1/card.png", []byte("payload"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if key != "cards/job-1/card.png" {
		t.Fatalf("key = %q", key)
	}

	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("data = %q", data)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Read(context.Background(), "cards/ghost/card.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Read error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(filepath.Join(root, "storage"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"leading slash", "/cards/a.png", "cards/a.png"},
		{"dot slash", "./cards/a.png", "cards/a.png"},
		{"inner traversal", "cards/x/../a.png", "cards/a.png"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.Write(context.Background(), tc.key, []byte("x"))
			if err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("key = %q, want %q", got, tc.want)
			}
		})
	}

	for _, key := range []string{"", "   ", "../escape.png", ".."} {
		if _, err := store.Write(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("Write(%q) accepted an invalid key", key)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "escape.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("traversal key escaped the storage root")
	}
}
