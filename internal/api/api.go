// Package api contains HTTP transport models.
package api

import "time"

// ErrorResponseErrorCode is a machine readable error code.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	CONFLICT        ErrorResponseErrorCode = "CONFLICT"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the payload of ErrorResponse.
type ErrorBody struct {
	Code    ErrorResponseErrorCode `json:"code"`
	Message string                 `json:"message"`
}

// UserShort is a user reference nested in other models.
type UserShort struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TeamShort is a team reference nested in other models.
type TeamShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectShort is a project reference nested in other models.
type ProjectShort struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID int64  `json:"teamId"`
}

// TaskShort is a task reference nested in other models.
type TaskShort struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Deleted bool   `json:"deleted"`
}

// User defines model for User.
type User struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Teams     []TeamShort `json:"teams"`
	Tasks     []TaskShort `json:"tasks"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Team defines model for Team.
type Team struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Users     []UserShort    `json:"users"`
	Projects  []ProjectShort `json:"projects"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Project defines model for Project.
type Project struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	TeamID    int64       `json:"teamId"`
	Team      *TeamShort  `json:"team,omitempty"`
	Tasks     []TaskShort `json:"tasks"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Task defines model for Task.
type Task struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	ProjectID   int64         `json:"projectId"`
	Project     *ProjectShort `json:"project,omitempty"`
	Creator     *UserShort    `json:"creator,omitempty"`
	Responsible *UserShort    `json:"responsible,omitempty"`
	Comments    []Comment     `json:"comments"`
	Deleted     bool          `json:"deleted"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Comment defines model for Comment.
type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	TaskID    int64      `json:"taskId"`
	User      *UserShort `json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
