// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package feedui is the terminal UI for a class message feed: a
// bubbletea model over the feed projection and membership workflow.
//
// The feed's four states render distinctly: loading, join-required
// (the access gate), empty, and the message window. A single busy flag
// serializes feed mutations: while a load, send, delete, or join is in
// flight the triggering keys are ignored, which is the only admission
// control in the UI. Asynchronous completions carry a generation
// counter; a completion from a superseded view is dropped instead of
// mutating state it no longer owns.
package feedui
