// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/classdeck-project/classdeck/classroom"
)

// LoginCommand returns the "login" command. It authenticates against
// the classroom API and saves the token to the tier chosen by
// --remember: the persistent tier survives restarts, the session tier
// is gone when the login session ends.
func LoginCommand() *Command {
	var remember bool
	var passwordFile string

	return &Command{
		Name:    "login",
		Summary: "Authenticate against the classroom API",
		Description: `Log in and save the access token locally.

With --remember the token is written to the persistent tier (under the
user config directory, mode 0600) and survives restarts. Without it the
token goes to the session tier under the runtime directory, which the
OS clears when the login session ends.

The password is prompted interactively unless --password-file names a
file containing it.`,
		Usage: "classdeck login <username> [flags]",
		Examples: []Example{
			{
				Description: "Log in for this session only",
				Command:     "classdeck login alice",
			},
			{
				Description: "Log in and stay logged in across restarts",
				Command:     "classdeck login alice --remember",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.BoolVar(&remember, "remember", false, "save the token to the persistent tier")
			flags.StringVar(&passwordFile, "password-file", "", "path to a file containing the password (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("username is required\n\nUsage: classdeck login <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := readPassword(passwordFile)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}

			app, err := LoadApp()
			if err != nil {
				return err
			}

			result, err := app.Client.Login(app.Context(), classroom.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			if err := app.Sessions.Establish(result.User, result.Token, remember); err != nil {
				return err
			}
			if err := SaveSession(&SavedSession{User: result.User, Remember: remember}); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s\n", result.User.Username)
			if remember {
				fmt.Fprintf(os.Stderr, "Token saved to %s\n", app.Config.Paths.Token)
			} else {
				fmt.Fprintf(os.Stderr, "Token saved for this session (%s)\n", app.Config.Paths.SessionToken)
			}
			return nil
		},
	}
}

// LogoutCommand returns the "logout" command: clear the token from
// both tiers and remove the saved identity.
func LogoutCommand() *Command {
	return &Command{
		Name:    "logout",
		Summary: "Clear the saved token and session",
		Usage:   "classdeck logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			app, err := LoadApp()
			if err != nil {
				return err
			}
			if err := app.Sessions.Logout(); err != nil {
				return err
			}
			if err := ClearSavedSession(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}

// WhoAmICommand returns the "whoami" command.
func WhoAmICommand() *Command {
	return &Command{
		Name:    "whoami",
		Summary: "Show the logged-in account",
		Usage:   "classdeck whoami",
		Run: func(args []string) error {
			app, err := LoadApp()
			if err != nil {
				return err
			}
			user, err := app.RequireSession()
			if err != nil {
				return err
			}
			fmt.Printf("%s", user.Username)
			if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
				fmt.Printf(" (%s)", name)
			}
			fmt.Println()
			if user.Email != "" {
				fmt.Printf("email: %s\n", user.Email)
			}
			if user.Phone != "" {
				fmt.Printf("phone: %s\n", user.Phone)
			}
			return nil
		},
	}
}

// readPassword reads the password from the named file, or prompts on
// the terminal when path is empty or "-". The prompt never echoes.
func readPassword(path string) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
