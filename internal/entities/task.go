// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// TaskPending is the initial status.
	TaskPending TaskStatus = "PENDING"
	// TaskInProgress marks a task being worked on.
	TaskInProgress TaskStatus = "IN_PROGRESS"
	// TaskCompleted marks a finished task.
	TaskCompleted TaskStatus = "COMPLETED"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work inside a project.
type Task struct {
	ID            int64
	Name          string
	Description   string
	Status        TaskStatus
	ProjectID     int64
	Project       *Project
	CreatorID     int64
	Creator       *User
	ResponsibleID *int64
	Responsible   *User
	Comments      []Comment
	Deleted       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskPatch carries optional task fields. Responsible must be a resolved user.
type TaskPatch struct {
	Name        *string
	Description *string
	Status      *TaskStatus
	Responsible *User
}

// TaskFilter restricts task listings. Nil fields impose no restriction.
type TaskFilter struct {
	Name        *string
	Responsible *string
	Status      *TaskStatus
	ProjectID   *int64
}

// CreateTaskParams is the input of task creation. Users are referenced by username.
type CreateTaskParams struct {
	Name            string
	Description     string
	Status          TaskStatus
	ProjectID       int64
	CreatorUser     string
	ResponsibleUser string
}

// UpdateTaskParams is the input of task update.
type UpdateTaskParams struct {
	Name            *string
	Description     *string
	Status          *TaskStatus
	ResponsibleUser *string
}

// Merge overlays the patch on a copy of the task.
func (t Task) Merge(p TaskPatch) Task {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Responsible != nil {
		id := p.Responsible.ID
		t.Responsible = p.Responsible
		t.ResponsibleID = &id
	}
	return t
}
