// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete classdeck CLI command tree.
package commands

import (
	"fmt"

	"github.com/classdeck-project/classdeck/cmd/classdeck/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

// Root builds and returns the classdeck command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "classdeck",
		Description: `Classdeck: classroom messaging from the terminal.

Browse classes, request to join them, follow and post to class message
feeds, and manage your account.`,
		Subcommands: []*cli.Command{
			cli.LoginCommand(),
			cli.LogoutCommand(),
			cli.WhoAmICommand(),
			cli.ClassesCommand(),
			cli.MessagesCommand(),
			cli.FeedCommand(),
			cli.AccountCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("classdeck %s\n", version)
					return nil
				},
			},
		},
	}
}
