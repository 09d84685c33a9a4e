// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/classdeck-project/classdeck/lib/tokenstore"
)

// fallbackErrorMessage is shown when a failed login response carries
// no msg field (or no parseable body at all).
const fallbackErrorMessage = "Something is wrong, try again later"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// APIURL is the base URL of the classroom API (e.g., "http://localhost:8080").
	APIURL string
	// TokenStore supplies the bearer token for authenticated calls.
	TokenStore *tokenstore.Store
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the classroom API. Endpoint wrappers read the token
// store at dispatch time, so a token cleared mid-flight does not
// retroactively cancel requests already sent with the old token; those
// still run to classification.
type Client struct {
	baseURL    string
	tokens     *tokenstore.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a classroom API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.APIURL == "" {
		return nil, fmt.Errorf("classroom: APIURL is required")
	}
	if _, err := url.Parse(config.APIURL); err != nil {
		return nil, fmt.Errorf("classroom: invalid APIURL %q: %w", config.APIURL, err)
	}
	if config.TokenStore == nil {
		return nil, fmt.Errorf("classroom: TokenStore is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.APIURL, "/"),
		tokens:     config.TokenStore,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Login exchanges credentials for an access token. On a non-success
// status the server's msg field is extracted when present, else a fixed
// fallback, and the call fails with an *AuthError carrying that text.
//
// Login does not persist the token: saving it (and the "remember me"
// decision) is the caller's responsibility via the token store.
func (c *Client) Login(ctx context.Context, credentials Credentials) (*LoginResult, error) {
	if credentials.Username == "" {
		return nil, fmt.Errorf("classroom: username is required for login")
	}
	if credentials.Password == "" {
		return nil, fmt.Errorf("classroom: password is required for login")
	}

	status, body, err := c.doRequest(ctx, http.MethodPost, "/api/v1/user/login", "", credentials)
	if err != nil {
		return nil, fmt.Errorf("classroom: login request failed: %w", err)
	}

	if status < 200 || status >= 300 {
		return nil, &AuthError{Message: loginErrorMessage(body), StatusCode: status}
	}

	var response loginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("classroom: failed to parse login response: %w", err)
	}
	if response.AccessToken == "" {
		return nil, fmt.Errorf("classroom: login response has no access_token")
	}

	user := response.User
	if user.Username == "" {
		user.Username = credentials.Username
	}

	c.logger.Info("logged in to classroom API", "username", user.Username)
	return &LoginResult{Token: response.AccessToken, User: user}, nil
}

// loginErrorMessage extracts the display message from a failed login
// body. Falls back to a fixed message when the body is not JSON or has
// no msg field.
func loginErrorMessage(body []byte) string {
	var message serverMessage
	if err := json.Unmarshal(body, &message); err != nil || message.Msg == "" {
		return fallbackErrorMessage
	}
	return message.Msg
}
