// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package feed is the client-side projection of a class's message
// feed. The server is the source of truth, but the projection never
// re-fetches after a local mutation: a confirmed send appends, a
// confirmed delete removes, and concurrent edits from elsewhere stay
// invisible until the next full load. That staleness window is
// accepted behavior.
package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/session"
)

// WindowSize is the number of entries kept from the initial load. The
// server returns most-recent-first; the client truncates and never
// re-sorts.
const WindowSize = 5

// ErrEmptyMessage is returned by Send for empty or whitespace-only
// content. No network call is made.
var ErrEmptyMessage = errors.New("feed: message content is empty")

// ErrForbidden is returned by Send while the access gate is closed.
var ErrForbidden = errors.New("feed: join the class before sending messages")

// Feed is the bounded local view over one class's messages. Not safe
// for concurrent use: it is driven from a single UI event loop, with
// the in-flight flag of the triggering control serializing mutations.
type Feed struct {
	client   *classroom.Client
	sessions *session.Controller
	classID  int64

	messages  []classroom.Message
	loaded    bool
	forbidden bool
}

// NewFeed creates a feed projection for the given class. Nothing is
// fetched until Load.
func NewFeed(client *classroom.Client, sessions *session.Controller, classID int64) (*Feed, error) {
	if client == nil {
		return nil, fmt.Errorf("feed: client is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("feed: session controller is required")
	}
	return &Feed{client: client, sessions: sessions, classID: classID}, nil
}

// Load performs the one-shot fetch and truncates the result to
// WindowSize entries. A Forbidden classification closes the access
// gate: the viewer must join the class first, which is a distinct
// state from an empty feed. Invalid credentials route to the session
// controller's uniform invalidation path. The local window is left
// untouched on any failure.
func (f *Feed) Load(ctx context.Context) error {
	fetched, err := f.client.ClassMessages(ctx, f.classID)
	if err != nil {
		if f.sessions.HandleInvalid(err) {
			return err
		}
		if classroom.IsForbidden(err) {
			f.forbidden = true
		}
		return err
	}

	if len(fetched) > WindowSize {
		fetched = fetched[:WindowSize]
	}
	f.messages = fetched
	f.loaded = true
	f.forbidden = false
	return nil
}

// Send posts content to the class and appends the server-confirmed
// message (carrying the server-assigned ID) to the local window. Empty
// or whitespace-only content is rejected before any network I/O, as is
// sending while the access gate is closed.
func (f *Feed) Send(ctx context.Context, content string) (*classroom.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if f.forbidden {
		return nil, ErrForbidden
	}

	user, ok := f.sessions.User()
	if !ok {
		return nil, fmt.Errorf("feed: no session established")
	}

	confirmed, err := f.client.PostMessage(ctx, classroom.Message{
		Content: content,
		UserID:  user.ID,
		ClassID: f.classID,
	})
	if err != nil {
		f.sessions.HandleInvalid(err)
		return nil, err
	}

	// The server assigns the ID; the author's display fields are known
	// locally and filled in when the confirmation omits them.
	if confirmed.Username == "" {
		confirmed.Username = user.Username
	}
	if confirmed.FullName == "" {
		confirmed.FullName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	f.messages = append(f.messages, *confirmed)
	return confirmed, nil
}

// Delete removes the message with the given ID from the local window
// after the server confirms the deletion. Exactly the matching entry
// is removed; the rest keep their order. Local state is untouched on
// failure.
func (f *Feed) Delete(ctx context.Context, messageID int64) error {
	if err := f.client.DeleteMessage(ctx, messageID); err != nil {
		f.sessions.HandleInvalid(err)
		return err
	}

	remaining := f.messages[:0:0]
	for _, message := range f.messages {
		if message.ID != messageID {
			remaining = append(remaining, message)
		}
	}
	f.messages = remaining
	return nil
}

// Messages returns a copy of the local window.
func (f *Feed) Messages() []classroom.Message {
	out := make([]classroom.Message, len(f.messages))
	copy(out, f.messages)
	return out
}

// Loaded reports whether the initial fetch has succeeded.
func (f *Feed) Loaded() bool {
	return f.loaded
}

// Forbidden reports the access gate: true means the viewer must join
// the class before the feed is available. Distinct from an empty feed.
func (f *Feed) Forbidden() bool {
	return f.forbidden
}

// ClassID returns the class this feed projects.
func (f *Feed) ClassID() int64 {
	return f.classID
}
