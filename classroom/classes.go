// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"context"
	"fmt"
	"net/http"
)

// ListClasses fetches every class available for browsing. Browsing is
// public, no token required.
func (c *Client) ListClasses(ctx context.Context) ([]Class, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't get any classes. Try again later",
		Forbidden:          "You are not allowed to fetch classes",
		Error:              "Couldn't get classes. Please try again later",
		JSON:               "Couldn't get JSON from classes response.",
	}
	body, err := c.execute(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/v1/class",
	}, messages)
	if err != nil {
		return nil, err
	}

	var classes []Class
	if err := decode(body, &classes, messages); err != nil {
		return nil, err
	}
	return classes, nil
}

// GetClass fetches one class by ID.
func (c *Client) GetClass(ctx context.Context, classID int64) (*Class, error) {
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't get a class id=%d. Try again later", classID),
		Forbidden:          fmt.Sprintf("You are not allowed to fetch class id=%d", classID),
		Error:              fmt.Sprintf("Couldn't get a class id=%d. Please try again later", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from a class response id=%d.", classID),
	}
	body, err := c.execute(ctx, Call{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/class/%d", classID),
	}, messages)
	if err != nil {
		return nil, err
	}

	var class Class
	if err := decode(body, &class, messages); err != nil {
		return nil, err
	}
	return &class, nil
}

// UserClasses fetches the classes the given user has joined.
func (c *Client) UserClasses(ctx context.Context, userID int64) ([]Class, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't fetch user classes due to invalid credentials. Try again later",
		Forbidden:          "You are not allowed to fetch user classes.",
		Error:              "Couldn't get user classes. Please try again later",
		JSON:               "Couldn't get JSON from user classes response.",
	}
	body, err := c.execute(ctx, Call{
		Method:       http.MethodGet,
		Path:         fmt.Sprintf("/api/v1/classes/%d", userID),
		RequiresAuth: true,
	}, messages)
	if err != nil {
		return nil, err
	}

	var classes []Class
	if err := decode(body, &classes, messages); err != nil {
		return nil, err
	}
	return classes, nil
}

// SendJoinRequest asks the server to record a join request for the
// class. The transition to Joined is server-authoritative; this only
// requests it.
func (c *Client) SendJoinRequest(ctx context.Context, classID int64) error {
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't send a request to join %d", classID),
		Forbidden:          "You are not allowed to join this class",
		Error:              fmt.Sprintf("Something went wrong while requesting to join class id=%d", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from send request response; class id=%d", classID),
	}
	_, err := c.execute(ctx, Call{
		Method:       http.MethodPost,
		Path:         fmt.Sprintf("/api/v1/student/request/%d", classID),
		RequiresAuth: true,
	}, messages)
	return err
}

// UserJoinRequests fetches the authenticated user's outstanding join
// requests.
func (c *Client) UserJoinRequests(ctx context.Context) ([]JoinRequest, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't fetch join requests.",
		Forbidden:          "You are not allowed to fetch join requests",
		Error:              "Something went wrong while fetching join requests",
		JSON:               "Couldn't get JSON from join requests response",
	}
	body, err := c.execute(ctx, Call{
		Method:       http.MethodGet,
		Path:         "/api/v1/student/requests",
		RequiresAuth: true,
	}, messages)
	if err != nil {
		return nil, err
	}

	var requests []JoinRequest
	if err := decode(body, &requests, messages); err != nil {
		return nil, err
	}
	return requests, nil
}

// ClassJoinRequests fetches the pending join requests for a class.
// Only the class's teacher is authorized.
func (c *Client) ClassJoinRequests(ctx context.Context, classID int64) ([]JoinRequest, error) {
	messages := Messages{
		InvalidCredentials: "Couldn't fetch join requests.",
		Forbidden:          "You are not allowed to fetch join requests",
		Error:              "Something went wrong while fetching join requests",
		JSON:               "Couldn't get JSON from join requests response",
	}
	body, err := c.execute(ctx, Call{
		Method:       http.MethodGet,
		Path:         fmt.Sprintf("/api/v1/class/requests/%d", classID),
		RequiresAuth: true,
	}, messages)
	if err != nil {
		return nil, err
	}

	var requests []JoinRequest
	if err := decode(body, &requests, messages); err != nil {
		return nil, err
	}
	return requests, nil
}

// LeaveClass removes the authenticated user from a class.
func (c *Client) LeaveClass(ctx context.Context, classID int64) error {
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't leave class id=%d. Try again later", classID),
		Forbidden:          fmt.Sprintf("You are not allowed to leave class id=%d", classID),
		Error:              fmt.Sprintf("Something went wrong while leaving class id=%d", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from leave class response; class id=%d", classID),
	}
	_, err := c.execute(ctx, Call{
		Method:       http.MethodPost,
		Path:         fmt.Sprintf("/api/v1/student/leave/%d", classID),
		RequiresAuth: true,
	}, messages)
	return err
}

// EditClass submits the changed fields of a class. Refuses to issue a
// network call for an empty change set.
func (c *Client) EditClass(ctx context.Context, classID int64, changes ChangeSet) error {
	if len(changes) == 0 {
		return ErrNoChanges
	}
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't edit a class id=%d. Try again later", classID),
		Forbidden:          fmt.Sprintf("You are not allowed to edit a class id=%d", classID),
		Error:              fmt.Sprintf("Couldn't edit a class id=%d. Please try again later", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from an edited class response id=%d.", classID),
	}
	_, err := c.execute(ctx, Call{
		Method:       http.MethodPut,
		Path:         fmt.Sprintf("/api/v1/class/%d", classID),
		Body:         changes,
		RequiresAuth: true,
	}, messages)
	return err
}

// DeleteClass deletes a class. Only the class's teacher is authorized.
func (c *Client) DeleteClass(ctx context.Context, classID int64) error {
	messages := Messages{
		InvalidCredentials: fmt.Sprintf("Couldn't delete a class id=%d. Try again later", classID),
		Forbidden:          fmt.Sprintf("You are not allowed to delete a class id=%d", classID),
		Error:              fmt.Sprintf("Couldn't delete a class id=%d. Please try again later", classID),
		JSON:               fmt.Sprintf("Couldn't get JSON from a deleted class response id=%d.", classID),
	}
	_, err := c.execute(ctx, Call{
		Method:       http.MethodDelete,
		Path:         fmt.Sprintf("/api/v1/class/%d", classID),
		RequiresAuth: true,
	}, messages)
	return err
}
