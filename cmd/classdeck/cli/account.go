// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/classdeck-project/classdeck/classroom"
)

// AccountCommand returns the "account" command group.
func AccountCommand() *Command {
	return &Command{
		Name:    "account",
		Summary: "Manage your account",
		Subcommands: []*Command{
			accountEditCommand(),
		},
	}
}

func accountEditCommand() *Command {
	var email, phone, passwordFile string

	return &Command{
		Name:    "edit",
		Summary: "Edit your profile",
		Description: `Edit the account's email, phone, or password. Only fields that are set
and actually differ from the current profile are submitted; if nothing
changed, no request is made.

The new password is read from --password-file, or prompted for when the
flag's value is "-".`,
		Usage: "classdeck account edit [flags]",
		Examples: []Example{
			{
				Description: "Change the phone number",
				Command:     "classdeck account edit --phone 555-1234",
			},
			{
				Description: "Change the password interactively",
				Command:     "classdeck account edit --password-file -",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("edit", pflag.ContinueOnError)
			flags.StringVar(&email, "email", "", "new email address")
			flags.StringVar(&phone, "phone", "", "new phone number")
			flags.StringVar(&passwordFile, "password-file", "", "path to a file containing the new password, or - to prompt")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			app, err := LoadApp()
			if err != nil {
				return err
			}
			user, err := app.RequireSession()
			if err != nil {
				return err
			}

			password := ""
			if passwordFile != "" {
				password, err = readPassword(passwordFile)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			form := classroom.ProfileForm{Password: password, Email: email, Phone: phone}
			changes := form.Changes(user)
			if err := app.Client.EditUser(app.Context(), user.ID, changes); err != nil {
				if errors.Is(err, classroom.ErrNoChanges) {
					fmt.Fprintln(os.Stderr, "Nothing changed.")
					return nil
				}
				return err
			}

			// The accepted edit is merged into the session and persisted,
			// so whoami reflects it without another login.
			app.Sessions.ApplyChanges(changes)
			if updated, ok := app.Sessions.User(); ok {
				saved, err := LoadSavedSession()
				if err == nil {
					saved.User = updated
					SaveSession(saved)
				}
			}

			fmt.Fprintln(os.Stderr, "Account updated.")
			return nil
		},
	}
}
