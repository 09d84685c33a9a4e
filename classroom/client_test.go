// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		client, _ := newTestClient(t, "http://localhost:8080")
		if client == nil {
			t.Fatal("NewClient returned nil")
		}
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{})
		if err == nil {
			t.Fatal("expected error for empty URL")
		}
	})

	t.Run("missing token store", func(t *testing.T) {
		_, err := NewClient(ClientConfig{APIURL: "http://localhost:8080"})
		if err == nil {
			t.Fatal("expected error for missing token store")
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/user/login" {
				t.Errorf("unexpected path: %s", request.URL.Path)
				writer.WriteHeader(http.StatusNotFound)
				return
			}
			if request.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", request.Method)
			}

			var credentials Credentials
			if err := json.NewDecoder(request.Body).Decode(&credentials); err != nil {
				t.Fatalf("decoding credentials: %v", err)
			}
			if credentials.Username != "alice" || credentials.Password != "secret" {
				t.Errorf("unexpected credentials: %+v", credentials)
			}

			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"access_token": "tok-alice",
				"user":         map[string]any{"id": 42, "username": "alice"},
			})
		}))
		defer server.Close()

		client, store := newTestClient(t, server.URL)

		result, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result.Token != "tok-alice" {
			t.Errorf("token = %q; want \"tok-alice\"", result.Token)
		}
		if result.User.ID != 42 {
			t.Errorf("user ID = %d; want 42", result.User.ID)
		}

		// Login never persists; the remember decision is the caller's.
		if _, ok := store.Get(); ok {
			t.Error("Login must not write to the token store")
		}
	})

	t.Run("token-only response backfills the username", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]string{"access_token": "tok"})
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)

		result, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result.User.Username != "alice" {
			t.Errorf("username = %q; want the credentials username", result.User.Username)
		}
	})

	t.Run("failure with server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{"msg": "Wrong username or password"})
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)

		_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "bad"})
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected *AuthError, got: %v", err)
		}
		if authErr.Message != "Wrong username or password" {
			t.Errorf("message = %q; want the server's msg field", authErr.Message)
		}
		if authErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d; want 401", authErr.StatusCode)
		}
	})

	t.Run("failure without message uses fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			writer.Write([]byte("not json at all"))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)

		_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"})
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected *AuthError, got: %v", err)
		}
		if authErr.Message != fallbackErrorMessage {
			t.Errorf("message = %q; want the fixed fallback", authErr.Message)
		}
	})

	t.Run("success body without token field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.Write([]byte(`{"unexpected": true}`))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)

		if _, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"}); err == nil {
			t.Fatal("expected error for missing access_token field")
		}
	})

	t.Run("success body that is not JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Write([]byte("<html>surprise</html>"))
		}))
		defer server.Close()

		client, _ := newTestClient(t, server.URL)

		if _, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "secret"}); err == nil {
			t.Fatal("expected error for non-JSON success body")
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		client, _ := newTestClient(t, "http://localhost:1")

		if _, err := client.Login(context.Background(), Credentials{Password: "x"}); err == nil {
			t.Fatal("expected error for empty username")
		}
		if _, err := client.Login(context.Background(), Credentials{Username: "alice"}); err == nil {
			t.Fatal("expected error for empty password")
		}
	})
}

func TestEditUser(t *testing.T) {
	t.Run("submits only changed fields with the user ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/api/v1/user" || request.Method != http.MethodPut {
				t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
			}

			var body map[string]any
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["id"] != float64(42) {
				t.Errorf("id = %v; want 42", body["id"])
			}
			if body["phone"] != "555-1234" {
				t.Errorf("phone = %v; want \"555-1234\"", body["phone"])
			}
			if _, present := body["email"]; present {
				t.Error("unchanged email must not be submitted")
			}
			if _, present := body["password"]; present {
				t.Error("unchanged password must not be submitted")
			}

			writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client, store := newTestClient(t, server.URL)
		store.Save("tok", false)

		changes := ChangeSet{"phone": "555-1234"}
		if err := client.EditUser(context.Background(), 42, changes); err != nil {
			t.Fatalf("EditUser failed: %v", err)
		}
	})

	t.Run("empty change set is a no-op", func(t *testing.T) {
		requestCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			requestCount++
			writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client, store := newTestClient(t, server.URL)
		store.Save("tok", false)

		if err := client.EditUser(context.Background(), 42, ChangeSet{}); !errors.Is(err, ErrNoChanges) {
			t.Fatalf("expected ErrNoChanges, got: %v", err)
		}
		if requestCount != 0 {
			t.Errorf("server saw %d requests; want none", requestCount)
		}
	})
}
