// Package entities contains core business entities.
package entities

import "time"

// User is a domain representation of a directory user.
type User struct {
	ID        int64
	Username  string
	Teams     []Team
	Tasks     []Task
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch carries optional user fields; nil keeps the stored value.
type UserPatch struct {
	Username *string
}

// CreateUserParams is the input of user creation.
type CreateUserParams struct {
	Username string
}

// Merge overlays the patch on a copy of the user.
func (u User) Merge(p UserPatch) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	return u
}
