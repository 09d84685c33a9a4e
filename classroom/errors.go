// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"errors"
	"fmt"
)

// Kind is the classification of a failed API call. The set is closed:
// every failure surfaced by the request executor carries exactly one
// of these kinds, and callers are expected to handle all of them.
type Kind int

const (
	// KindInvalidCredentials means the token was missing, expired, or
	// rejected (HTTP 401, or no token before an authenticated call).
	// Features must route this to the session controller's uniform
	// invalidation path rather than handling it locally.
	KindInvalidCredentials Kind = iota + 1

	// KindForbidden means the caller is authenticated but not
	// authorized for the resource (HTTP 403). Never treated as
	// KindInvalidCredentials; it gates feature UI instead.
	KindForbidden

	// KindError is any other non-success outcome: unexpected status
	// codes and transport-level failures.
	KindError

	// KindJSON means the server reported success but the body was not
	// valid JSON. Callers treat it like KindError; the distinct kind
	// exists for diagnostics.
	KindJSON
)

// String returns the wire-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindForbidden:
		return "forbidden"
	case KindError:
		return "error"
	case KindJSON:
		return "json_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CallError is the typed failure produced by the request executor.
// Message is the caller-supplied text for the classified kind, not the
// server's raw error body. Callers use errors.As or the Is* helpers:
//
//	var callErr *classroom.CallError
//	if errors.As(err, &callErr) && callErr.Kind == classroom.KindForbidden { ... }
type CallError struct {
	// Kind classifies the failure.
	Kind Kind
	// Message is the caller-supplied, user-facing text for this kind.
	Message string
	// StatusCode is the HTTP status of the response, or zero when the
	// failure happened before or below the HTTP exchange.
	StatusCode int
	// cause is the underlying error, if any (transport failures,
	// JSON decode errors).
	cause error
}

func (e *CallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("classroom: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("classroom: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *CallError) Unwrap() error {
	return e.cause
}

// IsKind checks whether err is a *CallError with the given kind.
func IsKind(err error, kind Kind) bool {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind == kind
	}
	return false
}

// IsInvalidCredentials checks whether err was classified as a missing
// or rejected token.
func IsInvalidCredentials(err error) bool {
	return IsKind(err, KindInvalidCredentials)
}

// IsForbidden checks whether err was classified as authorization
// denied.
func IsForbidden(err error) bool {
	return IsKind(err, KindForbidden)
}

// AuthError is the failure reported by Login. Message is the server's
// msg field when one was present, else a fixed fallback.
type AuthError struct {
	// Message is the user-facing explanation.
	Message string
	// StatusCode is the HTTP status of the login response.
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("classroom: authentication failed (%d): %s", e.StatusCode, e.Message)
}

// ErrNoChanges is returned by edit operations when the computed change
// set is empty. An empty change set is a no-op and must not be
// submitted to the server.
var ErrNoChanges = errors.New("classroom: no fields changed")
