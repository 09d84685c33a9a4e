// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tier is one storage location for the access token. Implementations
// must tolerate Clear on an empty tier.
type Tier interface {
	// Get returns the stored token. The second return is false when the
	// tier holds no token.
	Get() (string, bool)

	// Set stores the token, replacing any previous value.
	Set(token string) error

	// Clear removes the stored token. A no-op when the tier is empty.
	Clear() error
}

// FileTier stores the token in a single file. The file is written with
// mode 0600 (owner-only) since it contains a bearer credential; the
// parent directory is created with mode 0700 on first write.
//
// Placed under the user config directory the tier survives restarts;
// placed under the runtime directory (tmpfs, removed when the login
// session ends) it behaves like session storage.
type FileTier struct {
	// Path is the token file location.
	Path string
}

// Get reads the token file. Trailing newlines are stripped; files
// written by echo/printf pipelines often end with one.
func (t *FileTier) Get() (string, bool) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		return "", false
	}
	token := strings.TrimRight(string(data), "\r\n")
	if token == "" {
		return "", false
	}
	return token, true
}

// Set writes the token file, creating the parent directory if needed.
func (t *FileTier) Set(token string) error {
	directory := filepath.Dir(t.Path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return err
	}
	return os.WriteFile(t.Path, []byte(token+"\n"), 0600)
}

// Clear removes the token file. A missing file is not an error.
func (t *FileTier) Clear() error {
	err := os.Remove(t.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTier stores the token in process memory. Used by tests and by
// callers that hold a token only for the lifetime of the process.
// Safe for concurrent use: in-flight requests may read the store while
// an invalidation clears it.
type MemoryTier struct {
	mu    sync.Mutex
	token string
	set   bool
}

// Get returns the stored token.
func (t *MemoryTier) Get() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token, t.set
}

// Set stores the token.
func (t *MemoryTier) Set(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
	t.set = true
	return nil
}

// Clear removes the stored token.
func (t *MemoryTier) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = ""
	t.set = false
	return nil
}

// Verify tiers implement the Tier interface.
var (
	_ Tier = (*FileTier)(nil)
	_ Tier = (*MemoryTier)(nil)
)
