// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.APIURL == "" {
		t.Error("default APIURL should be set")
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("default timeout = %v; want 30s", cfg.Timeout())
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
api_url: https://api.example.com
request_timeout: 10s
paths:
  token: /tmp/classdeck-token
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if cfg.APIURL != "https://api.example.com" {
			t.Errorf("APIURL = %q", cfg.APIURL)
		}
		if cfg.Timeout() != 10*time.Second {
			t.Errorf("timeout = %v; want 10s", cfg.Timeout())
		}
		if cfg.Paths.Token != "/tmp/classdeck-token" {
			t.Errorf("token path = %q", cfg.Paths.Token)
		}
		// Fields absent from the file keep their defaults.
		if cfg.Paths.SessionToken == "" {
			t.Error("session token path should fall back to the default")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("invalid timeout rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("request_timeout: soon\n"), 0600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatal("expected error for invalid timeout")
		}
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	t.Setenv("CLASSDECK_API_URL", "https://env.example.com")
	t.Setenv("CLASSDECK_TOKEN_FILE", "/custom/token")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %q; environment must override the file", cfg.APIURL)
	}
	if cfg.Paths.Token != "/custom/token" {
		t.Errorf("token path = %q; environment must override the default", cfg.Paths.Token)
	}
}

func TestVariableExpansion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "paths:\n  token: ${CLASSDECK_TEST_DIR}/token\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	t.Setenv("CLASSDECK_TEST_DIR", "/var/data")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Paths.Token != "/var/data/token" {
		t.Errorf("token path = %q; want ${VAR} expanded", cfg.Paths.Token)
	}
}
