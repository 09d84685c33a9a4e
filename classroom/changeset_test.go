// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

import (
	"reflect"
	"testing"
)

func TestProfileFormChanges(t *testing.T) {
	user := User{
		ID:    1,
		Email: "a@b.com",
		Phone: "000",
	}

	t.Run("only non-empty differing fields are included", func(t *testing.T) {
		form := ProfileForm{Email: "", Phone: "555-1234", Password: ""}

		changes := form.Changes(user)
		want := ChangeSet{"phone": "555-1234"}
		if !reflect.DeepEqual(changes, want) {
			t.Errorf("Changes = %v; want %v", changes, want)
		}
	})

	t.Run("unchanged value is excluded", func(t *testing.T) {
		form := ProfileForm{Email: "a@b.com", Phone: "000"}

		changes := form.Changes(user)
		if len(changes) != 0 {
			t.Errorf("Changes = %v; want empty", changes)
		}
	})

	t.Run("any non-empty password counts as changed", func(t *testing.T) {
		form := ProfileForm{Password: "new-secret"}

		changes := form.Changes(user)
		want := ChangeSet{"password": "new-secret"}
		if !reflect.DeepEqual(changes, want) {
			t.Errorf("Changes = %v; want %v", changes, want)
		}
	})

	t.Run("empty form yields empty set", func(t *testing.T) {
		changes := ProfileForm{}.Changes(user)
		if len(changes) != 0 {
			t.Errorf("Changes = %v; want empty", changes)
		}
	})

	t.Run("all fields changed", func(t *testing.T) {
		form := ProfileForm{Password: "p", Email: "new@b.com", Phone: "111"}

		changes := form.Changes(user)
		want := ChangeSet{"password": "p", "email": "new@b.com", "phone": "111"}
		if !reflect.DeepEqual(changes, want) {
			t.Errorf("Changes = %v; want %v", changes, want)
		}
	})
}

func TestClassFormChanges(t *testing.T) {
	class := Class{ID: 9, Title: "Algebra", Description: "Linear equations"}

	t.Run("changed title only", func(t *testing.T) {
		form := ClassForm{Title: "Algebra II", Description: "Linear equations"}

		changes := form.Changes(class)
		want := ChangeSet{"title": "Algebra II"}
		if !reflect.DeepEqual(changes, want) {
			t.Errorf("Changes = %v; want %v", changes, want)
		}
	})

	t.Run("empty form yields empty set", func(t *testing.T) {
		changes := ClassForm{}.Changes(class)
		if len(changes) != 0 {
			t.Errorf("Changes = %v; want empty", changes)
		}
	})
}
