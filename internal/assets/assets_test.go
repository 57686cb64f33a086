package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestManager_LoadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tunnelUnit.tga"), []byte("tga"), 0644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}

	m := NewManager()
	defer m.Close()
	if err := m.AddDir(dir); err != nil {
		t.Fatalf("AddDir failed: %v", err)
	}

	data, err := m.Load("tunnelUnit.tga")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "tga" {
		t.Errorf("unexpected content %q", data)
	}

	// Second load comes from the cache
	if _, err := m.Load("/tunnelUnit.tga"); err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("cache stats = %d hits, %d misses; want 1, 1", hits, misses)
	}
}

func TestManager_Priority(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{
		"tex.tga":  {Data: []byte("base")},
		"only.tga": {Data: []byte("only")},
	})
	m.AddFS("mod", fstest.MapFS{
		"tex.tga": {Data: []byte("mod")},
	})

	tests := []struct {
		path string
		want string
	}{
		{"tex.tga", "mod"},
		{"only.tga", "only"},
	}
	for _, tt := range tests {
		data, err := m.Load(tt.path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", tt.path, err)
		}
		if string(data) != tt.want {
			t.Errorf("Load(%s) = %q, want %q", tt.path, data, tt.want)
		}
	}
}

func TestManager_NotFound(t *testing.T) {
	m := NewManager()
	m.AddFS("empty", fstest.MapFS{})

	_, err := m.Load("missing.tga")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_AddDirErrors(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := m.AddDir(file); err == nil {
		t.Error("expected error for non-directory")
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tunnelUnit.tga", "tunnelUnit.tga"},
		{"/textures/a.tga", "textures/a.tga"},
		{"textures/../b.tga", "b.tga"},
	}
	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache()
	c.Set("a", []byte{1})
	c.Get("a")
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Error("expected cache miss after Clear")
	}
	hits, misses := c.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("stats after clear = %d, %d; want 0, 1", hits, misses)
	}
}
