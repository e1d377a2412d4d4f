// Package entities contains core business entities.
package entities

import "time"

// Team aggregates member users and owned projects.
type Team struct {
	ID        int64
	Name      string
	Users     []User
	Projects  []Project
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamPatch carries optional team fields.
type TeamPatch struct {
	Name *string
}

// CreateTeamParams is the input of team creation.
type CreateTeamParams struct {
	Name string
}

// Merge overlays the patch on a copy of the team.
func (t Team) Merge(p TeamPatch) Team {
	if p.Name != nil {
		t.Name = *p.Name
	}
	return t
}

// HasMember reports whether a user with the id is in the member set.
func (t Team) HasMember(userID int64) bool {
	for _, u := range t.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// MemberIndex returns the position of the member with the username or -1.
func (t Team) MemberIndex(username string) int {
	for i, u := range t.Users {
		if u.Username == username {
			return i
		}
	}
	return -1
}
