// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and visual properties for the TUI.
type Theme struct {
	// Title styles the class title in the header line.
	Title lipgloss.Style

	// Badge styles the membership status next to the title.
	Badge lipgloss.Style

	// Author styles the message author (username and full name).
	Author lipgloss.Style

	// Content styles message bodies.
	Content lipgloss.Style

	// Selected styles the message row under the cursor.
	Selected lipgloss.Style

	// Gate styles the join-required notice when the access gate is
	// closed.
	Gate lipgloss.Style

	// Muted styles secondary text: the empty-feed notice, the help
	// line, timestamps.
	Muted lipgloss.Style

	// Notice styles transient status-bar text (errors, confirmations).
	Notice lipgloss.Style

	// Prompt styles the compose input prompt.
	Prompt lipgloss.Style
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
	Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	Author:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
	Content:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Selected: lipgloss.NewStyle().Background(lipgloss.Color("237")),
	Gate:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
}
