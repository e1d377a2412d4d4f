// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the kind shared by every missing-entity error.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a uniqueness or referential constraint violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	// ErrCommentNotFound signals missing comment.
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	// ErrMemberNotFound signals an existing user that is not a member of the team.
	ErrMemberNotFound = fmt.Errorf("team member %w", ErrNotFound)

	// ErrMemberExists signals a duplicate team membership.
	ErrMemberExists = fmt.Errorf("%w: user already in team", ErrConflict)
)
