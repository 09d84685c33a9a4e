// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package tokenstore

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, *MemoryTier, *MemoryTier) {
	t.Helper()
	session := &MemoryTier{}
	persistent := &MemoryTier{}
	store, err := New(session, persistent)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return store, session, persistent
}

func TestNew(t *testing.T) {
	t.Run("missing session tier", func(t *testing.T) {
		if _, err := New(nil, &MemoryTier{}); err == nil {
			t.Fatal("expected error for nil session tier")
		}
	})

	t.Run("missing persistent tier", func(t *testing.T) {
		if _, err := New(&MemoryTier{}, nil); err == nil {
			t.Fatal("expected error for nil persistent tier")
		}
	})
}

func TestSaveAndGet(t *testing.T) {
	t.Run("session tier round trip", func(t *testing.T) {
		store, session, persistent := newTestStore(t)

		if err := store.Save("tok123", false); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		token, ok := store.Get()
		if !ok || token != "tok123" {
			t.Fatalf("Get = %q, %v; want \"tok123\", true", token, ok)
		}

		// remember=false must not touch the persistent tier.
		if _, ok := persistent.Get(); ok {
			t.Error("persistent tier unexpectedly populated")
		}
		if _, ok := session.Get(); !ok {
			t.Error("session tier should hold the token")
		}
	})

	t.Run("persistent tier round trip", func(t *testing.T) {
		store, session, _ := newTestStore(t)

		if err := store.Save("tok456", true); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		token, ok := store.Get()
		if !ok || token != "tok456" {
			t.Fatalf("Get = %q, %v; want \"tok456\", true", token, ok)
		}
		if _, ok := session.Get(); ok {
			t.Error("session tier unexpectedly populated")
		}
	})

	t.Run("persistent wins over session", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		if err := store.Save("session-token", false); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save("persistent-token", true); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		token, ok := store.Get()
		if !ok || token != "persistent-token" {
			t.Fatalf("Get = %q, %v; want the persistent tier's value", token, ok)
		}
	})

	t.Run("writing one tier never clears the other", func(t *testing.T) {
		store, session, persistent := newTestStore(t)

		if err := store.Save("a", false); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save("b", true); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if token, ok := session.Get(); !ok || token != "a" {
			t.Errorf("session tier = %q, %v; want \"a\", true", token, ok)
		}
		if token, ok := persistent.Get(); !ok || token != "b" {
			t.Errorf("persistent tier = %q, %v; want \"b\", true", token, ok)
		}
	})

	t.Run("empty token rejected", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		if err := store.Save("", false); err == nil {
			t.Fatal("expected error for empty token")
		}
	})

	t.Run("absent when both tiers empty", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		if token, ok := store.Get(); ok {
			t.Fatalf("Get = %q, true; want absent", token)
		}
	})
}

func TestClear(t *testing.T) {
	t.Run("clears both tiers", func(t *testing.T) {
		store, session, persistent := newTestStore(t)

		if err := store.Save("a", false); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save("b", true); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}

		if _, ok := store.Get(); ok {
			t.Error("Get should return absent after Clear")
		}
		if _, ok := session.Get(); ok {
			t.Error("session tier should be empty after Clear")
		}
		if _, ok := persistent.Get(); ok {
			t.Error("persistent tier should be empty after Clear")
		}
	})

	t.Run("clear on empty store", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear on empty store failed: %v", err)
		}
	})
}

func TestFileTier(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tier := &FileTier{Path: filepath.Join(t.TempDir(), "classdeck", "token")}

		if err := tier.Set("tok789"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		token, ok := tier.Get()
		if !ok || token != "tok789" {
			t.Fatalf("Get = %q, %v; want \"tok789\", true", token, ok)
		}

		info, err := os.Stat(tier.Path)
		if err != nil {
			t.Fatalf("stat token file: %v", err)
		}
		if mode := info.Mode().Perm(); mode != 0600 {
			t.Errorf("token file mode = %o; want 0600", mode)
		}
	})

	t.Run("trailing newline stripped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(path, []byte("tok\n"), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		tier := &FileTier{Path: path}
		token, ok := tier.Get()
		if !ok || token != "tok" {
			t.Fatalf("Get = %q, %v; want \"tok\", true", token, ok)
		}
	})

	t.Run("missing file is absent", func(t *testing.T) {
		tier := &FileTier{Path: filepath.Join(t.TempDir(), "nope")}
		if _, ok := tier.Get(); ok {
			t.Error("Get should return absent for a missing file")
		}
	})

	t.Run("clear missing file is not an error", func(t *testing.T) {
		tier := &FileTier{Path: filepath.Join(t.TempDir(), "nope")}
		if err := tier.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
	})

	t.Run("clear removes the file", func(t *testing.T) {
		tier := &FileTier{Path: filepath.Join(t.TempDir(), "token")}
		if err := tier.Set("tok"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := tier.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		if _, ok := tier.Get(); ok {
			t.Error("Get should return absent after Clear")
		}
	})
}
