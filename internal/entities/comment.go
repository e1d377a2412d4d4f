// Package entities contains core business entities.
package entities

import "time"

// Comment is a note left by a user on a task.
type Comment struct {
	ID        int64
	Content   string
	UserID    int64
	User      *User
	TaskID    int64
	Task      *Task
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentPatch carries optional comment fields. User and Task must be resolved.
type CommentPatch struct {
	Content *string
	User    *User
	Task    *Task
}

// CreateCommentParams is the input of comment creation.
type CreateCommentParams struct {
	Content  string
	UserName string
	TaskID   int64
}

// UpdateCommentParams is the input of comment update.
type UpdateCommentParams struct {
	Content  *string
	UserName *string
	TaskID   *int64
}

// Merge overlays the patch on a copy of the comment.
func (c Comment) Merge(p CommentPatch) Comment {
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.User != nil {
		c.User = p.User
		c.UserID = p.User.ID
	}
	if p.Task != nil {
		c.Task = p.Task
		c.TaskID = p.Task.ID
	}
	return c
}
