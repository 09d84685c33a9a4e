// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for classdeck.
//
// Configuration is resolved in three layers, later layers overriding
// earlier ones:
//
//  1. Built-in defaults.
//  2. A YAML config file, located via the CLASSDECK_CONFIG environment
//     variable or the default path under the user config directory.
//  3. Environment variables (CLASSDECK_API_URL), optionally loaded
//     from a .env file in the working directory.
//
// The .env layer mirrors how the API base URL reaches the client in
// deployments: a runtime value, never compiled in.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the classdeck client configuration.
type Config struct {
	// APIURL is the base URL of the classroom API.
	APIURL string `yaml:"api_url"`

	// RequestTimeout bounds each API call (Go duration string).
	RequestTimeout string `yaml:"request_timeout"`

	// Paths configures where the token tiers live.
	Paths PathsConfig `yaml:"paths"`
}

// PathsConfig configures token storage locations.
type PathsConfig struct {
	// Token is the persistent-tier token file. Survives restarts.
	Token string `yaml:"token"`

	// SessionToken is the session-tier token file. Lives under the
	// runtime directory, which the OS clears when the login session
	// ends.
	SessionToken string `yaml:"session_token"`
}

// Default returns the default configuration. Defaults exist so every
// field has a sensible value before the config file is applied; the
// file and environment override them.
func Default() *Config {
	return &Config{
		APIURL:         "http://localhost:8080",
		RequestTimeout: "30s",
		Paths: PathsConfig{
			Token:        filepath.Join(configDirectory(), "classdeck", "token"),
			SessionToken: filepath.Join(runtimeDirectory(), "classdeck", "token"),
		},
	}
}

// Load resolves the configuration: defaults, then the YAML file named
// by CLASSDECK_CONFIG (or the default path, when present), then
// environment overrides. A missing default-path file is not an error;
// a missing CLASSDECK_CONFIG file is.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CLASSDECK_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(configDirectory(), "classdeck", "config.yaml")
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	cfg.applyEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific file path, then applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	cfg.applyEnvironment()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// applyEnvironment loads a .env file from the working directory when
// one exists (missing is fine) and applies CLASSDECK_* overrides.
func (c *Config) applyEnvironment() {
	// godotenv never overwrites variables already set in the
	// environment, so real env vars win over .env entries.
	_ = godotenv.Load()

	if url := os.Getenv("CLASSDECK_API_URL"); url != "" {
		c.APIURL = url
	}
	if token := os.Getenv("CLASSDECK_TOKEN_FILE"); token != "" {
		c.Paths.Token = token
	}
	if token := os.Getenv("CLASSDECK_SESSION_TOKEN_FILE"); token != "" {
		c.Paths.SessionToken = token
	}

	// ${VAR} references in file-sourced values resolve against the
	// environment, so a config file can say token: ${HOME}/.classdeck/token.
	c.APIURL = os.ExpandEnv(c.APIURL)
	c.Paths.Token = os.ExpandEnv(c.Paths.Token)
	c.Paths.SessionToken = os.ExpandEnv(c.Paths.SessionToken)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("config: api_url is required")
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("config: invalid request_timeout %q: %w", c.RequestTimeout, err)
	}
	if c.Paths.Token == "" {
		return fmt.Errorf("config: paths.token is required")
	}
	if c.Paths.SessionToken == "" {
		return fmt.Errorf("config: paths.session_token is required")
	}
	return nil
}

// Timeout returns the parsed request timeout. Call Validate first;
// an unparseable value falls back to 30 seconds here.
func (c *Config) Timeout() time.Duration {
	timeout, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return timeout
}

// configDirectory resolves the user config directory: XDG_CONFIG_HOME,
// else ~/.config.
func configDirectory() string {
	if directory := os.Getenv("XDG_CONFIG_HOME"); directory != "" {
		return directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".config")
}

// runtimeDirectory resolves the session-scoped runtime directory:
// XDG_RUNTIME_DIR (tmpfs, cleared at end of login session), else the
// system temp directory.
func runtimeDirectory() string {
	if directory := os.Getenv("XDG_RUNTIME_DIR"); directory != "" {
		return directory
	}
	return os.TempDir()
}
