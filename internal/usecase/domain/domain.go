// Package domain contains application usecases orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"og-team-ms/internal/entities"
	"og-team-ms/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces by embedding one
// component per aggregate.
type Usecase struct {
	*UserDirectory
	*TeamRegistry
	*ProjectCatalog
	*TaskBoard
	*CommentLog
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) *Usecase {
	users := NewUserDirectory(log.Named("users"), repo, repo, timeout)
	teams := NewTeamRegistry(log.Named("teams"), repo, repo, users, timeout)
	projects := NewProjectCatalog(log.Named("projects"), repo, repo, teams, timeout)
	tasks := NewTaskBoard(log.Named("tasks"), repo, repo, projects, users, timeout)
	comments := NewCommentLog(log.Named("comments"), repo, repo, users, tasks, timeout)

	return &Usecase{
		UserDirectory:  users,
		TeamRegistry:   teams,
		ProjectCatalog: projects,
		TaskBoard:      tasks,
		CommentLog:     comments,
	}
}

// Sibling lookups. Components never reach into another component's storage.
type userResolver interface {
	UserByUserName(ctx context.Context, userName string) (*entities.User, error)
}

type teamResolver interface {
	Team(ctx context.Context, id int64) (*entities.Team, error)
}

type projectResolver interface {
	Project(ctx context.Context, id int64) (*entities.Project, error)
}

type taskResolver interface {
	Task(ctx context.Context, id int64) (*entities.Task, error)
}

// requireUser resolves a username and turns an absent user into ErrUserNotFound.
func requireUser(ctx context.Context, users userResolver, userName string) (*entities.User, error) {
	user, err := users.UserByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
