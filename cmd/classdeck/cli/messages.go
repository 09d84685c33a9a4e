// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/classdeck-project/classdeck/feed"
)

// MessagesCommand returns the "messages" command group. These are the
// one-shot equivalents of the interactive feed: each invocation builds
// the feed projection, performs a single operation, and exits.
func MessagesCommand() *Command {
	return &Command{
		Name:    "messages",
		Summary: "Read and post class messages",
		Subcommands: []*Command{
			messagesListCommand(),
			messagesSendCommand(),
			messagesDeleteCommand(),
		},
	}
}

func messagesListCommand() *Command {
	return &Command{
		Name:    "list",
		Summary: "Show the latest messages of a class",
		Usage:   "classdeck messages list <class-id>",
		Run: func(args []string) error {
			classID, err := classIDArg(args, "messages list")
			if err != nil {
				return err
			}
			app, f, err := loadFeed(classID)
			if err != nil {
				return err
			}

			if err := f.Load(app.Context()); err != nil {
				if f.Forbidden() {
					return fmt.Errorf("you have to join this class to access messages")
				}
				return err
			}

			messages := f.Messages()
			if len(messages) == 0 {
				fmt.Println("No messages yet.")
				return nil
			}
			for _, message := range messages {
				author := message.FullName
				if author == "" {
					author = message.Username
				}
				fmt.Printf("#%d %s: %s\n", message.ID, author, message.Content)
			}
			return nil
		},
	}
}

func messagesSendCommand() *Command {
	return &Command{
		Name:    "send",
		Summary: "Post a message to a class",
		Usage:   "classdeck messages send <class-id> <content>",
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("class ID and content are required\n\nUsage: classdeck messages send <class-id> <content>")
			}
			classID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid class ID %q", args[0])
			}
			content := args[1]

			app, f, err := loadFeed(classID)
			if err != nil {
				return err
			}

			confirmed, err := f.Send(app.Context(), content)
			if err != nil {
				if errors.Is(err, feed.ErrEmptyMessage) {
					return fmt.Errorf("message content is empty")
				}
				return err
			}
			fmt.Fprintf(os.Stderr, "Sent message #%d\n", confirmed.ID)
			return nil
		},
	}
}

func messagesDeleteCommand() *Command {
	return &Command{
		Name:    "delete",
		Summary: "Delete one of your messages",
		Usage:   "classdeck messages delete <class-id> <message-id>",
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("class ID and message ID are required\n\nUsage: classdeck messages delete <class-id> <message-id>")
			}
			classID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid class ID %q", args[0])
			}
			messageID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid message ID %q", args[1])
			}

			app, f, err := loadFeed(classID)
			if err != nil {
				return err
			}
			if err := f.Delete(app.Context(), messageID); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Message deleted.")
			return nil
		},
	}
}

// loadFeed wires the app and a feed projection for one class, requiring
// an established session.
func loadFeed(classID int64) (*App, *feed.Feed, error) {
	app, err := LoadApp()
	if err != nil {
		return nil, nil, err
	}
	if _, err := app.RequireSession(); err != nil {
		return nil, nil, err
	}
	f, err := feed.NewFeed(app.Client, app.Sessions, classID)
	if err != nil {
		return nil, nil, err
	}
	return app, f, nil
}
