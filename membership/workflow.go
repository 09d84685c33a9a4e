// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package membership tracks one user's join status for one class. All
// transitions are server-authoritative: the workflow requests them and
// applies the new state only after the server confirms. The feed's
// access gate is a separate signal: a user can be NotJoined here and
// still surface Forbidden on a feed fetch, or vice versa. Neither is
// ever inferred from the other.
package membership

import (
	"context"
	"fmt"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/session"
)

// Status is the client's view of a (user, class) membership.
type Status int

const (
	// NotJoined means no membership and no outstanding request.
	NotJoined Status = iota
	// Pending means a join request is awaiting the teacher's decision.
	Pending
	// Joined means the server lists the class among the user's classes.
	Joined
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case NotJoined:
		return "not joined"
	case Pending:
		return "pending"
	case Joined:
		return "joined"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Workflow drives the join/leave state machine for a single class.
// Not safe for concurrent use: it is driven from a single UI event
// loop, with at most one transition in flight at a time.
type Workflow struct {
	client   *classroom.Client
	sessions *session.Controller
	classID  int64
	status   Status
}

// NewWorkflow creates a workflow for the given class, starting at
// NotJoined until Refresh observes the server's state.
func NewWorkflow(client *classroom.Client, sessions *session.Controller, classID int64) (*Workflow, error) {
	if client == nil {
		return nil, fmt.Errorf("membership: client is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("membership: session controller is required")
	}
	return &Workflow{client: client, sessions: sessions, classID: classID}, nil
}

// Status returns the last observed membership status.
func (w *Workflow) Status() Status {
	return w.status
}

// ClassID returns the class this workflow tracks.
func (w *Workflow) ClassID() int64 {
	return w.classID
}

// Refresh derives the status from the server: Joined when the class
// appears among the user's classes, Pending when an outstanding join
// request names it, NotJoined otherwise.
func (w *Workflow) Refresh(ctx context.Context) error {
	user, ok := w.sessions.User()
	if !ok {
		return fmt.Errorf("membership: no session established")
	}

	classes, err := w.client.UserClasses(ctx, user.ID)
	if err != nil {
		w.sessions.HandleInvalid(err)
		return err
	}
	for _, class := range classes {
		if class.ID == w.classID {
			w.status = Joined
			return nil
		}
	}

	requests, err := w.client.UserJoinRequests(ctx)
	if err != nil {
		w.sessions.HandleInvalid(err)
		return err
	}
	for _, request := range requests {
		if request.ClassID == w.classID {
			w.status = Pending
			return nil
		}
	}

	w.status = NotJoined
	return nil
}

// RequestJoin sends a join request. Valid only from NotJoined; moves
// to Pending once the server accepts the request for review. Approval
// or denial happens server-side; the client only observes the outcome
// on a later Refresh.
func (w *Workflow) RequestJoin(ctx context.Context) error {
	if w.status != NotJoined {
		return fmt.Errorf("membership: cannot request to join while %s", w.status)
	}

	if err := w.client.SendJoinRequest(ctx, w.classID); err != nil {
		w.sessions.HandleInvalid(err)
		return err
	}

	w.status = Pending
	return nil
}

// Leave leaves the class. Valid only from Joined; applied only after
// server confirmation.
func (w *Workflow) Leave(ctx context.Context) error {
	if w.status != Joined {
		return fmt.Errorf("membership: cannot leave while %s", w.status)
	}

	if err := w.client.LeaveClass(ctx, w.classID); err != nil {
		w.sessions.HandleInvalid(err)
		return err
	}

	w.status = NotJoined
	return nil
}
