// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package classroom

// ChangeSet maps a field name to its new value. A field belongs in the
// set iff the submitted value is non-empty and differs from the
// entity's current value. Edit operations refuse to submit an empty
// set.
//
// Diffing is done per entity with an explicit typed field list (see
// ProfileForm and ClassForm) rather than reflective key lookup, so the
// compared fields are visible at the call site.
type ChangeSet map[string]string

// diff adds name→submitted to the set when submitted is non-empty and
// differs from current.
func (cs ChangeSet) diff(name, submitted, current string) {
	if submitted == "" || submitted == current {
		return
	}
	cs[name] = submitted
}

// ProfileForm is a submitted account-edit form. Empty fields mean
// "leave unchanged".
type ProfileForm struct {
	Password string
	Email    string
	Phone    string
}

// Changes computes the change set against the user's current profile.
// The password has no readable current value, so any non-empty
// submission counts as a change.
func (f ProfileForm) Changes(user User) ChangeSet {
	changes := ChangeSet{}
	changes.diff("password", f.Password, "")
	changes.diff("email", f.Email, user.Email)
	changes.diff("phone", f.Phone, user.Phone)
	return changes
}

// ClassForm is a submitted class-edit form. Empty fields mean "leave
// unchanged".
type ClassForm struct {
	Title       string
	Description string
}

// Changes computes the change set against the class's current fields.
func (f ClassForm) Changes(class Class) ChangeSet {
	changes := ChangeSet{}
	changes.diff("title", f.Title, class.Title)
	changes.diff("description", f.Description, class.Description)
	return changes
}
