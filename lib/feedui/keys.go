// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the feed viewer TUI.
type KeyMap struct {
	// Navigation (active when the message list has focus).
	Up   key.Binding
	Down key.Binding

	// Focus switching between the compose input and the list.
	FocusToggle key.Binding

	// Send posts the compose input (input focus). Join sends a join
	// request while the access gate is closed.
	Send key.Binding
	Join key.Binding

	// Mutations (list focus).
	Delete key.Binding
	Reload key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style list
// navigation (j/k) alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch focus"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "send"),
	),
	Join: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "request to join"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
