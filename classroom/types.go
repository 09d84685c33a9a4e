// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import "time"

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the authenticated account's identity as returned by the API.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Class is a class listing entry. Teacher name fields are denormalized
// into the class record by the server.
type Class struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	TeacherFirstName string `json:"teacher_first_name"`
	TeacherLastName  string `json:"teacher_last_name"`
}

// Message is one entry in a class message feed. The server assigns ID
// and SentAt; Username and FullName are the author's display fields.
type Message struct {
	ID       int64     `json:"id"`
	Content  string    `json:"content"`
	UserID   int64     `json:"user"`
	ClassID  int64     `json:"cls"`
	Username string    `json:"username"`
	FullName string    `json:"fullname"`
	SentAt   time.Time `json:"sent_at"`
}

// JoinRequest is a pending request by a user to join a class.
type JoinRequest struct {
	ClassID int64 `json:"class_id"`
	UserID  int64 `json:"user_id"`
}

// loginResponse is the success body of the authentication endpoint.
// The user object is optional; older servers return only the token.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// LoginResult is a successful authentication: the bearer token and the
// account identity the session is established with.
type LoginResult struct {
	Token string
	User  User
}

// serverMessage is the optional error body shape: non-success
// responses may carry a msg field for display.
type serverMessage struct {
	Msg string `json:"msg"`
}
