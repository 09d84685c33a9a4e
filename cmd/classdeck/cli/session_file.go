// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/classdeck-project/classdeck/classroom"
)

// SavedSession is the identity persisted across CLI invocations. The
// token itself lives in the token store tiers; this file only carries
// who the token belongs to and which tier it was saved to.
type SavedSession struct {
	User     classroom.User `json:"user"`
	Remember bool           `json:"remember"`
}

// SessionFilePath returns the saved-session location:
// $CLASSDECK_SESSION_FILE if set, else classdeck/session.json under the
// user config directory.
func SessionFilePath() string {
	if path := os.Getenv("CLASSDECK_SESSION_FILE"); path != "" {
		return path
	}
	if directory := os.Getenv("XDG_CONFIG_HOME"); directory != "" {
		return filepath.Join(directory, "classdeck", "session.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "classdeck-session.json")
	}
	return filepath.Join(home, ".config", "classdeck", "session.json")
}

// SaveSession writes the session file with owner-only permissions.
func SaveSession(saved *SavedSession) error {
	path := SessionFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// LoadSavedSession reads the session file.
func LoadSavedSession() (*SavedSession, error) {
	data, err := os.ReadFile(SessionFilePath())
	if err != nil {
		return nil, err
	}
	var saved SavedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return &saved, nil
}

// ClearSavedSession removes the session file. Missing is not an error.
func ClearSavedSession() error {
	err := os.Remove(SessionFilePath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
