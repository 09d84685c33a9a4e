// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/membership"
)

// ClassesCommand returns the "classes" command group.
func ClassesCommand() *Command {
	return &Command{
		Name:    "classes",
		Summary: "Browse and manage classes",
		Subcommands: []*Command{
			classesListCommand(),
			classesShowCommand(),
			classesMineCommand(),
			classesJoinCommand(),
			classesLeaveCommand(),
			classesRequestsCommand(),
			classesEditCommand(),
			classesDeleteCommand(),
		},
	}
}

func classesListCommand() *Command {
	return &Command{
		Name:    "list",
		Summary: "List all classes",
		Usage:   "classdeck classes list",
		Run: func(args []string) error {
			app, err := LoadApp()
			if err != nil {
				return err
			}
			classes, err := app.Client.ListClasses(app.Context())
			if err != nil {
				return err
			}
			printClasses(classes)
			return nil
		},
	}
}

func classesShowCommand() *Command {
	return &Command{
		Name:    "show",
		Summary: "Show one class with your membership status",
		Usage:   "classdeck classes show <class-id>",
		Run: func(args []string) error {
			classID, err := classIDArg(args, "classes show")
			if err != nil {
				return err
			}
			app, err := LoadApp()
			if err != nil {
				return err
			}

			class, err := app.Client.GetClass(app.Context(), classID)
			if err != nil {
				return err
			}

			fmt.Printf("%s (#%d)\n", class.Title, class.ID)
			if teacher := strings.TrimSpace(class.TeacherFirstName + " " + class.TeacherLastName); teacher != "" {
				fmt.Printf("Teacher: %s\n", teacher)
			}
			if class.Description != "" {
				fmt.Printf("\n%s\n", class.Description)
			}

			// Membership needs a session; without one the class is still
			// shown, just without the status line.
			if _, ok := app.Sessions.User(); ok {
				workflow, err := membership.NewWorkflow(app.Client, app.Sessions, classID)
				if err != nil {
					return err
				}
				if err := workflow.Refresh(app.Context()); err != nil {
					return err
				}
				fmt.Printf("\nMembership: %s\n", workflow.Status())
			}
			return nil
		},
	}
}

func classesMineCommand() *Command {
	return &Command{
		Name:    "mine",
		Summary: "List the classes you are a member of",
		Usage:   "classdeck classes mine",
		Run: func(args []string) error {
			app, err := LoadApp()
			if err != nil {
				return err
			}
			user, err := app.RequireSession()
			if err != nil {
				return err
			}
			classes, err := app.Client.UserClasses(app.Context(), user.ID)
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Println("You are not a member of any class.")
				return nil
			}
			printClasses(classes)
			return nil
		},
	}
}

func classesJoinCommand() *Command {
	return &Command{
		Name:    "join",
		Summary: "Request to join a class",
		Description: `Send a join request for a class. The request stays pending until a
teacher approves it; run 'classdeck classes show <class-id>' to check
the status.`,
		Usage: "classdeck classes join <class-id>",
		Run: func(args []string) error {
			classID, err := classIDArg(args, "classes join")
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

			workflow, err := membership.NewWorkflow(app.Client, app.Sessions, classID)
			if err != nil {
				return err
			}
			if err := workflow.Refresh(app.Context()); err != nil {
				return err
			}
			if err := workflow.RequestJoin(app.Context()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Join request sent. A teacher has to approve it.")
			return nil
		},
	}
}

func classesLeaveCommand() *Command {
	return &Command{
		Name:    "leave",
		Summary: "Leave a class",
		Usage:   "classdeck classes leave <class-id>",
		Run: func(args []string) error {
			classID, err := classIDArg(args, "classes leave")
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

			workflow, err := membership.NewWorkflow(app.Client, app.Sessions, classID)
			if err != nil {
				return err
			}
			if err := workflow.Refresh(app.Context()); err != nil {
				return err
			}
			if err := workflow.Leave(app.Context()); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Left the class.")
			return nil
		},
	}
}

func classesRequestsCommand() *Command {
	var classID int64

	return &Command{
		Name:    "requests",
		Summary: "List join requests (yours, or a class's with --class)",
		Usage:   "classdeck classes requests [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("requests", pflag.ContinueOnError)
			flags.Int64Var(&classID, "class", 0, "list requests for this class instead of your own")
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
			if _, err := app.RequireSession(); err != nil {
				return err
			}

			var requests []classroom.JoinRequest
			if classID != 0 {
				requests, err = app.Client.ClassJoinRequests(app.Context(), classID)
			} else {
				requests, err = app.Client.UserJoinRequests(app.Context())
			}
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				fmt.Println("No pending join requests.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "CLASS\tUSER\n")
			for _, request := range requests {
				fmt.Fprintf(tw, "%d\t%d\n", request.ClassID, request.UserID)
			}
			tw.Flush()
			return nil
		},
	}
}

func classesEditCommand() *Command {
	var title, description string

	return &Command{
		Name:    "edit",
		Summary: "Edit a class you teach",
		Description: `Edit a class's title or description. Only the fields that are set and
actually differ from the current values are submitted; if nothing
changed, no request is made.`,
		Usage: "classdeck classes edit <class-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("edit", pflag.ContinueOnError)
			flags.StringVar(&title, "title", "", "new class title")
			flags.StringVar(&description, "description", "", "new class description")
			return flags
		},
		Run: func(args []string) error {
			classID, err := classIDArg(args, "classes edit")
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

			current, err := app.Client.GetClass(app.Context(), classID)
			if err != nil {
				return err
			}

			form := classroom.ClassForm{Title: title, Description: description}
			changes := form.Changes(*current)
			if err := app.Client.EditClass(app.Context(), classID, changes); err != nil {
				if errors.Is(err, classroom.ErrNoChanges) {
					fmt.Fprintln(os.Stderr, "Nothing changed.")
					return nil
				}
				return err
			}
			fmt.Fprintln(os.Stderr, "Class updated.")
			return nil
		},
	}
}

func classesDeleteCommand() *Command {
	return &Command{
		Name:    "delete",
		Summary: "Delete a class you teach",
		Usage:   "classdeck classes delete <class-id>",
		Run: func(args []string) error {
			classID, err := classIDArg(args, "classes delete")
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
			if err := app.Client.DeleteClass(app.Context(), classID); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Class deleted.")
			return nil
		},
	}
}

// classIDArg parses the single <class-id> positional argument.
func classIDArg(args []string, command string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("class ID is required\n\nUsage: classdeck %s <class-id>", command)
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	classID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid class ID %q", args[0])
	}
	return classID, nil
}

func printClasses(classes []classroom.Class) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tTEACHER\n")
	for _, class := range classes {
		teacher := strings.TrimSpace(class.TeacherFirstName + " " + class.TeacherLastName)
		fmt.Fprintf(tw, "%d\t%s\t%s\n", class.ID, class.Title, teacher)
	}
	tw.Flush()
}
