// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package tokenstore stores the classroom API access token across two
// storage tiers: a session tier that lasts until the login session ends
// and a persistent tier that survives restarts. The persistent tier wins
// on read when both hold a value. Saving writes to exactly one tier
// (chosen by the "remember me" decision); clearing removes the token
// from both.
//
// The package is pure storage, with no network and no UI side effects. Tiers
// are injected, so tests run against in-memory tiers and the CLI wires
// file-backed tiers under the user's config and runtime directories.
package tokenstore
