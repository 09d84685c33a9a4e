// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the authenticated user's in-memory state and
// the uniform invalidation policy. Every feature routes an
// invalid-credentials failure here instead of handling it locally:
// what failed is feature-specific, what happens on expired or rejected
// auth is one policy in one place.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/lib/tokenstore"
)

// ControllerConfig holds configuration for creating a Controller.
type ControllerConfig struct {
	// Tokens is the process-wide token store, cleared on invalidation.
	Tokens *tokenstore.Store
	// OnInvalidated is called after an invalid-credentials failure has
	// been applied (token cleared, session reset). The UI uses it to
	// navigate to re-authentication. May be nil.
	OnInvalidated func()
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Controller owns the session state derived from authentication:
// the user's identity fields and whether a usable token exists.
// Mutated by successful login, by profile edits (changed fields only),
// and by logout or invalidation (cleared entirely).
type Controller struct {
	tokens        *tokenstore.Store
	onInvalidated func()
	logger        *slog.Logger

	mu            sync.Mutex
	user          classroom.User
	authenticated bool
}

// NewController creates a session controller.
func NewController(config ControllerConfig) (*Controller, error) {
	if config.Tokens == nil {
		return nil, fmt.Errorf("session: Tokens is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		tokens:        config.Tokens,
		onInvalidated: config.OnInvalidated,
		logger:        logger,
	}, nil
}

// Establish records a successful login: saves the token to the chosen
// tier and sets the session's user identity.
func (c *Controller) Establish(user classroom.User, token string, remember bool) error {
	if err := c.tokens.Save(token, remember); err != nil {
		return fmt.Errorf("session: saving token: %w", err)
	}

	c.mu.Lock()
	c.user = user
	c.authenticated = true
	c.mu.Unlock()

	c.logger.Info("session established", "username", user.Username, "remember", remember)
	return nil
}

// User returns the session's user identity. The second return is false
// when no session is established.
func (c *Controller) User() (classroom.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user, c.authenticated
}

// ApplyChanges merges an accepted profile edit into the session:
// changed fields only, everything else untouched. Passwords are not
// part of session state.
func (c *Controller) ApplyChanges(changes classroom.ChangeSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.authenticated {
		return
	}
	if email, ok := changes["email"]; ok {
		c.user.Email = email
	}
	if phone, ok := changes["phone"]; ok {
		c.user.Phone = phone
	}
}

// Logout clears the token from both tiers and resets the session.
func (c *Controller) Logout() error {
	c.reset()
	if err := c.tokens.Clear(); err != nil {
		return fmt.Errorf("session: clearing tokens: %w", err)
	}
	c.logger.Info("logged out")
	return nil
}

// HandleInvalid applies the uniform invalidation policy when err was
// classified as invalid credentials: clear the token from both tiers,
// reset the session to empty, and invoke the re-authentication hook.
// Returns true when the policy was applied, false when err is some
// other failure (which the caller keeps handling itself).
//
// A token cleared here does not cancel requests already dispatched
// with the old token; those still run to classification and route
// back here, where the reset is idempotent.
func (c *Controller) HandleInvalid(err error) bool {
	if !classroom.IsInvalidCredentials(err) {
		return false
	}

	c.reset()
	if clearErr := c.tokens.Clear(); clearErr != nil {
		c.logger.Error("clearing tokens after invalid credentials", "error", clearErr)
	}
	c.logger.Info("session invalidated", "reason", err)

	if c.onInvalidated != nil {
		c.onInvalidated()
	}
	return true
}

func (c *Controller) reset() {
	c.mu.Lock()
	c.user = classroom.User{}
	c.authenticated = false
	c.mu.Unlock()
}
