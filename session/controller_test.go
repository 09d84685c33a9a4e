// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"testing"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/lib/tokenstore"
)

func newTestController(t *testing.T, onInvalidated func()) (*Controller, *tokenstore.Store) {
	t.Helper()
	store, err := tokenstore.New(&tokenstore.MemoryTier{}, &tokenstore.MemoryTier{})
	if err != nil {
		t.Fatalf("creating token store: %v", err)
	}
	controller, err := NewController(ControllerConfig{
		Tokens:        store,
		OnInvalidated: onInvalidated,
	})
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	return controller, store
}

func testUser() classroom.User {
	return classroom.User{
		ID:        42,
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Lovelace",
		Email:     "a@b.com",
		Phone:     "000",
	}
}

func TestEstablish(t *testing.T) {
	t.Run("session tier", func(t *testing.T) {
		controller, store := newTestController(t, nil)

		if err := controller.Establish(testUser(), "tok", false); err != nil {
			t.Fatalf("Establish failed: %v", err)
		}

		user, ok := controller.User()
		if !ok || user.Username != "alice" {
			t.Fatalf("User = %+v, %v; want alice, true", user, ok)
		}
		if token, ok := store.Get(); !ok || token != "tok" {
			t.Fatalf("store.Get = %q, %v; want \"tok\", true", token, ok)
		}
	})

	t.Run("no session before establish", func(t *testing.T) {
		controller, _ := newTestController(t, nil)
		if _, ok := controller.User(); ok {
			t.Fatal("User should report no session")
		}
	})
}

func TestApplyChanges(t *testing.T) {
	controller, _ := newTestController(t, nil)
	if err := controller.Establish(testUser(), "tok", false); err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	controller.ApplyChanges(classroom.ChangeSet{"phone": "555-1234", "password": "ignored"})

	user, _ := controller.User()
	if user.Phone != "555-1234" {
		t.Errorf("phone = %q; want merged value", user.Phone)
	}
	if user.Email != "a@b.com" {
		t.Errorf("email = %q; unchanged fields must survive the merge", user.Email)
	}
}

func TestLogout(t *testing.T) {
	controller, store := newTestController(t, nil)
	if err := controller.Establish(testUser(), "tok", true); err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	if err := controller.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, ok := controller.User(); ok {
		t.Error("session should be empty after logout")
	}
	if _, ok := store.Get(); ok {
		t.Error("token store should be empty after logout")
	}
}

func TestHandleInvalid(t *testing.T) {
	t.Run("invalid credentials clears everything", func(t *testing.T) {
		invalidated := false
		controller, store := newTestController(t, func() { invalidated = true })
		if err := controller.Establish(testUser(), "tok", true); err != nil {
			t.Fatalf("Establish failed: %v", err)
		}

		err := &classroom.CallError{Kind: classroom.KindInvalidCredentials, Message: "expired"}
		if !controller.HandleInvalid(err) {
			t.Fatal("HandleInvalid should apply the policy")
		}

		if _, ok := store.Get(); ok {
			t.Error("token store should hold no token in either tier")
		}
		if _, ok := controller.User(); ok {
			t.Error("session should be empty")
		}
		if !invalidated {
			t.Error("OnInvalidated hook should fire")
		}
	})

	t.Run("wrapped invalid credentials is recognized", func(t *testing.T) {
		controller, _ := newTestController(t, nil)
		wrapped := errors.Join(errors.New("loading feed"),
			&classroom.CallError{Kind: classroom.KindInvalidCredentials, Message: "expired"})
		if !controller.HandleInvalid(wrapped) {
			t.Fatal("HandleInvalid should see through wrapping")
		}
	})

	t.Run("other failures are left to the caller", func(t *testing.T) {
		controller, store := newTestController(t, func() { t.Error("hook must not fire") })
		if err := controller.Establish(testUser(), "tok", false); err != nil {
			t.Fatalf("Establish failed: %v", err)
		}

		forbidden := &classroom.CallError{Kind: classroom.KindForbidden, Message: "join first"}
		if controller.HandleInvalid(forbidden) {
			t.Fatal("forbidden must not trigger invalidation")
		}

		// No state reset for non-credential failures.
		if _, ok := store.Get(); !ok {
			t.Error("token should survive a forbidden failure")
		}
		if _, ok := controller.User(); !ok {
			t.Error("session should survive a forbidden failure")
		}
	})

	t.Run("idempotent when already invalidated", func(t *testing.T) {
		controller, _ := newTestController(t, nil)
		err := &classroom.CallError{Kind: classroom.KindInvalidCredentials, Message: "expired"}
		if !controller.HandleInvalid(err) {
			t.Fatal("first HandleInvalid should apply")
		}
		if !controller.HandleInvalid(err) {
			t.Fatal("second HandleInvalid should still report handled")
		}
	})
}
