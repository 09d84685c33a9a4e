// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the classdeck command tree: the command
// framework (dispatch, flags, help) and the individual commands built
// on the classroom client stack.
package cli
