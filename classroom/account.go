// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"context"
	"net/http"
)

// editUserRequest is the account-edit body: the user's ID plus only
// the changed fields.
type editUserRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// EditUser submits the changed profile fields for the user. An empty
// change set is a no-op: EditUser returns ErrNoChanges without issuing
// a network call.
func (c *Client) EditUser(ctx context.Context, userID int64, changes ChangeSet) error {
	if len(changes) == 0 {
		return ErrNoChanges
	}

	messages := Messages{
		InvalidCredentials: "Couldn't edit the account due to invalid credentials.",
		Forbidden:          "You are not allowed to edit this account",
		Error:              "Couldn't edit the account. Please try again later",
		JSON:               "Couldn't get JSON from the edit account response.",
	}
	_, err := c.execute(ctx, Call{
		Method: http.MethodPut,
		Path:   "/api/v1/user",
		Body: editUserRequest{
			ID:       userID,
			Password: changes["password"],
			Email:    changes["email"],
			Phone:    changes["phone"],
		},
		RequiresAuth: true,
	}, messages)
	return err
}
