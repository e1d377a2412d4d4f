package usecase

import (
	"context"

	"og-team-ms/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	UserByUserName(ctx context.Context, userName string) (*entities.User, error)
	CreateUser(ctx context.Context, params entities.CreateUserParams) (*entities.User, error)
	UpdateUser(ctx context.Context, userName string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, userName string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, id int64) (*entities.Team, error)
	TeamByName(ctx context.Context, name string) (*entities.Team, error)
	CreateTeam(ctx context.Context, params entities.CreateTeamParams) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id int64, patch entities.TeamPatch) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) (*entities.Team, error)
	AddTeamUser(ctx context.Context, teamID int64, userName string) (*entities.User, error)
	RemoveTeamUser(ctx context.Context, teamID int64, userName string) (*entities.User, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	Projects(ctx context.Context) ([]entities.Project, error)
	Project(ctx context.Context, id int64) (*entities.Project, error)
	ProjectByName(ctx context.Context, name string) (*entities.Project, error)
	CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, params entities.UpdateProjectParams) (*entities.Project, error)
	DeleteProject(ctx context.Context, id int64) (*entities.Project, error)
}

// TaskUsecaseInterface abstracts task-related operations.
type TaskUsecaseInterface interface {
	Tasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	Task(ctx context.Context, id int64) (*entities.Task, error)
	TaskByName(ctx context.Context, name string) (*entities.Task, error)
	CreateTask(ctx context.Context, params entities.CreateTaskParams) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, params entities.UpdateTaskParams) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int64) (*entities.Task, error)
}

// CommentUsecaseInterface abstracts comment-related operations.
type CommentUsecaseInterface interface {
	Comments(ctx context.Context) ([]entities.Comment, error)
	Comment(ctx context.Context, id int64) (*entities.Comment, error)
	CreateComment(ctx context.Context, params entities.CreateCommentParams) (*entities.Comment, error)
	UpdateComment(ctx context.Context, id int64, params entities.UpdateCommentParams) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id int64) (*entities.Comment, error)
}
