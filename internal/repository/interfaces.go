// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"og-team-ms/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TransactorInterface runs fn inside one transaction carried by ctx.
// Direct lookups (Find*) made with that ctx lock the row until commit.
type TransactorInterface interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserInterface exposes user storage.
//
// List/Get methods load teams and tasks. Find methods read the row only.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	SaveUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// TeamInterface exposes team and membership storage.
//
// List/Get methods load users and projects, GetTeamMembers loads users only.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	GetTeamByName(ctx context.Context, name string) (*entities.Team, error)
	GetTeamMembers(ctx context.Context, id int64) (*entities.Team, error)
	FindTeam(ctx context.Context, id int64) (*entities.Team, error)
	SaveTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	AddTeamMember(ctx context.Context, teamID, userID int64) error
	RemoveTeamMember(ctx context.Context, teamID, userID int64) error
}

// ProjectInterface exposes project storage.
//
// List/Get methods load team and tasks.
type ProjectInterface interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	GetProjectByName(ctx context.Context, name string) (*entities.Project, error)
	FindProject(ctx context.Context, id int64) (*entities.Project, error)
	SaveProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// TaskInterface exposes task storage.
//
// List/Get methods load project, responsible, creator and comments.
type TaskInterface interface {
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	GetTaskByName(ctx context.Context, name string) (*entities.Task, error)
	FindTask(ctx context.Context, id int64) (*entities.Task, error)
	SaveTask(ctx context.Context, task entities.Task) (*entities.Task, error)
}

// CommentInterface exposes comment storage.
//
// List/Get methods load the author.
type CommentInterface interface {
	ListComments(ctx context.Context) ([]entities.Comment, error)
	GetComment(ctx context.Context, id int64) (*entities.Comment, error)
	FindComment(ctx context.Context, id int64) (*entities.Comment, error)
	SaveComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
