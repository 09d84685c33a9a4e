// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classdeck-project/classdeck/feed"
	"github.com/classdeck-project/classdeck/lib/feedui"
	"github.com/classdeck-project/classdeck/membership"
)

// FeedCommand returns the "feed" command: the interactive terminal
// view of a class's message feed.
func FeedCommand() *Command {
	return &Command{
		Name:    "feed",
		Summary: "Open the interactive message feed of a class",
		Usage:   "classdeck feed <class-id>",
		Examples: []Example{
			{
				Description: "Follow the feed of class 7",
				Command:     "classdeck feed 7",
			},
		},
		Run: func(args []string) error {
			classID, err := classIDArg(args, "feed")
			if err != nil {
				return err
			}

			app, err := LoadApp()
			if err != nil {
				return err
			}
			if _, err := app.RequireSession(); err != nil {
				return err
			}

			class, err := app.Client.GetClass(app.Context(), classID)
			if err != nil {
				return err
			}

			f, err := feed.NewFeed(app.Client, app.Sessions, classID)
			if err != nil {
				return err
			}
			workflow, err := membership.NewWorkflow(app.Client, app.Sessions, classID)
			if err != nil {
				return err
			}

			model, err := feedui.New(feedui.Config{
				Feed:     f,
				Workflow: workflow,
				Class:    *class,
			})
			if err != nil {
				return err
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
