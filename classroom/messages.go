// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"context"
	"fmt"
	"net/http"
)

// ClassMessages fetches the message feed of a class, most recent
// first. A Forbidden classification means the viewer must join the
// class before the feed is available.
func (c *Client) ClassMessages(ctx context.Context, classID int64) ([]Message, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't fetch messages due to invalid credentials. Try again later",
		Forbidden:          "You have to join this class to access messages.",
		Error:              fmt.Sprintf("Couldn't get messages for class id=%d. Please try again later", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from messages response; class id=%d.", classID),
	}
	body, err := c.execute(ctx, Call{
		Method:       http.MethodGet,
		Path:         fmt.Sprintf("/api/v1/messages/%d", classID),
		RequiresAuth: true,
	}, messages)
	if err != nil {
		return nil, err
	}

	var feed []Message
	if err := decode(body, &feed, messages); err != nil {
		return nil, err
	}
	return feed, nil
}

// PostMessage sends a message to a class and returns the
// server-confirmed copy carrying the server-assigned ID.
func (c *Client) PostMessage(ctx context.Context, message Message) (*Message, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't send the message due to invalid credentials.",
		Forbidden:          "You are not allowed to send messages to this class",
		Error:              "Something went wrong while sending the message",
		JSON:               "Couldn't get JSON from the sent message response.",
	}
	body, err := c.execute(ctx, Call{
		Method:       http.MethodPost,
		Path:         "/api/v1/message",
		Body:         message,
		RequiresAuth: true,
	}, messages)
	if err != nil {
		return nil, err
	}

	var confirmed Message
	if err := decode(body, &confirmed, messages); err != nil {
		return nil, err
	}
	return &confirmed, nil
}

// DeleteMessage deletes a message by ID.
func (c *Client) DeleteMessage(ctx context.Context, messageID int64) error {
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't delete message id=%d due to invalid credentials.", messageID),
		Forbidden:          fmt.Sprintf("You are not allowed to delete message id=%d", messageID),
		Error:              fmt.Sprintf("Something went wrong while deleting message id=%d", messageID),
		JSON:               fmt.Sprintf("Couldn't get JSON from deleted message response id=%d.", messageID),
	}
	_, err := c.execute(ctx, Call{
		Method:       http.MethodDelete,
		Path:         fmt.Sprintf("/api/v1/message/%d", messageID),
		RequiresAuth: true,
	}, messages)
	return err
}
