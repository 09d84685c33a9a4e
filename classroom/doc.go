// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package classroom is the client for the remote classroom API.
//
// All authenticated access flows through one request executor that
// attaches the bearer token from the injected token store and
// classifies every outcome into a closed set of error kinds:
// invalid credentials, forbidden, generic failure, or malformed JSON.
// Each endpoint wrapper is a thin configuration of that executor (its
// own HTTP call plus its own four user-facing messages), so every call
// site controls its own text while sharing one classification
// algorithm.
package classroom
