// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Call describes one HTTP operation against the classroom API.
type Call struct {
	// Method is the HTTP method.
	Method string
	// Path is the URL path relative to the API base (e.g., "/api/v1/class").
	Path string
	// Body is the JSON request body, or nil.
	Body any
	// Query holds optional query parameters.
	Query url.Values
	// RequiresAuth makes the executor attach the bearer token. When no
	// token is stored, the call fails as invalid credentials before any
	// network I/O.
	RequiresAuth bool
}

// Messages is the table of user-facing texts for each failure kind.
// Every call site supplies its own four messages; the executor picks
// the one matching its classification.
type Messages struct {
	InvalidCredentials string
	Forbidden          string
	Error              string
	JSON               string
}

// execute is the single choke point for API access. It performs the
// call, classifies the outcome, and returns exactly one of: the raw
// JSON success body, or one *CallError. Classification is a pure
// function of (requires-auth flag, token presence, HTTP status, body
// parseability). No retries, no logging-and-swallowing.
func (c *Client) execute(ctx context.Context, call Call, messages Messages) (json.RawMessage, error) {
	token := ""
	if call.RequiresAuth {
		stored, ok := c.tokens.Get()
		if !ok {
			// Fail before any network I/O: there is no point issuing a
			// request that the server is guaranteed to reject.
			return nil, &CallError{Kind: KindInvalidCredentials, Message: messages.InvalidCredentials}
		}
		token = stored
	}

	status, body, err := c.doRequest(ctx, call.Method, call.Path, token, call.Body, call.Query)
	if err != nil {
		return nil, &CallError{Kind: KindError, Message: messages.Error, cause: err}
	}

	switch {
	case status == http.StatusUnauthorized:
		return nil, &CallError{Kind: KindInvalidCredentials, Message: messages.InvalidCredentials, StatusCode: status}
	case status == http.StatusForbidden:
		return nil, &CallError{Kind: KindForbidden, Message: messages.Forbidden, StatusCode: status}
	case status < 200 || status >= 300:
		return nil, &CallError{Kind: KindError, Message: messages.Error, StatusCode: status}
	}

	// Some endpoints (join request, delete) return an empty success
	// body. Treat that as JSON null rather than a parse failure.
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("null"), nil
	}

	if !json.Valid(body) {
		return nil, &CallError{Kind: KindJSON, Message: messages.JSON, StatusCode: status}
	}
	return json.RawMessage(body), nil
}

// decode unmarshals a success body into out, converting decode
// failures into the caller's JSON-kind message. The server reported
// success, so a shape mismatch is a malformed-body condition, not a
// transport one.
func decode(body json.RawMessage, out any, messages Messages) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &CallError{Kind: KindJSON, Message: messages.JSON, cause: err}
	}
	return nil
}

// doRequest performs one HTTP exchange and returns the status code and
// response body. token may be empty for unauthenticated endpoints.
// Errors are transport-level only; status classification is the
// executor's job.
func (c *Client) doRequest(ctx context.Context, method, path, token string, requestBody any, query ...url.Values) (int, []byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 && query[0] != nil {
		requestURL += "?" + query[0].Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}

	return response.StatusCode, responseBody, nil
}
