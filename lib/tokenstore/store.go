// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package tokenstore

import (
	"fmt"
)

// Store holds the access token across a session tier and a persistent
// tier. Reads prefer the persistent tier: if both tiers somehow hold a
// value, the persistent one is returned. That precedence is specified
// behavior, not an accident of read order.
type Store struct {
	session    Tier
	persistent Tier
}

// New creates a Store over the given tiers. Both tiers are required.
func New(session, persistent Tier) (*Store, error) {
	if session == nil {
		return nil, fmt.Errorf("tokenstore: session tier is required")
	}
	if persistent == nil {
		return nil, fmt.Errorf("tokenstore: persistent tier is required")
	}
	return &Store{session: session, persistent: persistent}, nil
}

// Get returns the current token. The persistent tier's value wins when
// both tiers are populated. The second return is false when neither
// tier holds a token.
func (s *Store) Get() (string, bool) {
	if token, ok := s.persistent.Get(); ok {
		return token, true
	}
	return s.session.Get()
}

// Save writes the token to exactly one tier: the session tier when
// remember is false, the persistent tier when remember is true. Writing
// to one tier never clears the other; logout must clear both
// explicitly via Clear.
func (s *Store) Save(token string, remember bool) error {
	if token == "" {
		return fmt.Errorf("tokenstore: refusing to save an empty token")
	}
	if remember {
		if err := s.persistent.Set(token); err != nil {
			return fmt.Errorf("tokenstore: saving to persistent tier: %w", err)
		}
		return nil
	}
	if err := s.session.Set(token); err != nil {
		return fmt.Errorf("tokenstore: saving to session tier: %w", err)
	}
	return nil
}

// Clear removes the token from both tiers. Clearing a tier that holds
// no token is not an error.
func (s *Store) Clear() error {
	sessionErr := s.session.Clear()
	persistentErr := s.persistent.Clear()
	if sessionErr != nil {
		return fmt.Errorf("tokenstore: clearing session tier: %w", sessionErr)
	}
	if persistentErr != nil {
		return fmt.Errorf("tokenstore: clearing persistent tier: %w", persistentErr)
	}
	return nil
}
