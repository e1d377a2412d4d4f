package domain

import (
	"context"

	"og-team-ms/internal/entities"
	"og-team-ms/internal/repository"

	"github.com/stretchr/testify/mock"
)

// txMock runs fn inline and counts transactions.
type txMock struct{ calls int }

var _ repository.TransactorInterface = (*txMock)(nil)

func (m *txMock) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type userRepoMock struct{ mock.Mock }

var _ repository.UserInterface = (*userRepoMock)(nil)

func (m *userRepoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *userRepoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *userRepoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *userRepoMock) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *userRepoMock) SaveUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *userRepoMock) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type teamRepoMock struct{ mock.Mock }

var _ repository.TeamInterface = (*teamRepoMock)(nil)

func (m *teamRepoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *teamRepoMock) team(args mock.Arguments) (*entities.Team, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *teamRepoMock) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	return m.team(m.Called(ctx, id))
}

func (m *teamRepoMock) GetTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return m.team(m.Called(ctx, name))
}

func (m *teamRepoMock) GetTeamMembers(ctx context.Context, id int64) (*entities.Team, error) {
	return m.team(m.Called(ctx, id))
}

func (m *teamRepoMock) FindTeam(ctx context.Context, id int64) (*entities.Team, error) {
	return m.team(m.Called(ctx, id))
}

func (m *teamRepoMock) SaveTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	return m.team(m.Called(ctx, team))
}

func (m *teamRepoMock) DeleteTeam(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *teamRepoMock) AddTeamMember(ctx context.Context, teamID, userID int64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *teamRepoMock) RemoveTeamMember(ctx context.Context, teamID, userID int64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

type projectRepoMock struct{ mock.Mock }

var _ repository.ProjectInterface = (*projectRepoMock)(nil)

func (m *projectRepoMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *projectRepoMock) project(args mock.Arguments) (*entities.Project, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *projectRepoMock) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	return m.project(m.Called(ctx, id))
}

func (m *projectRepoMock) GetProjectByName(ctx context.Context, name string) (*entities.Project, error) {
	return m.project(m.Called(ctx, name))
}

func (m *projectRepoMock) FindProject(ctx context.Context, id int64) (*entities.Project, error) {
	return m.project(m.Called(ctx, id))
}

func (m *projectRepoMock) SaveProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	return m.project(m.Called(ctx, project))
}

func (m *projectRepoMock) DeleteProject(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type taskRepoMock struct{ mock.Mock }

var _ repository.TaskInterface = (*taskRepoMock)(nil)

func (m *taskRepoMock) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *taskRepoMock) task(args mock.Arguments) (*entities.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *taskRepoMock) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	return m.task(m.Called(ctx, id))
}

func (m *taskRepoMock) GetTaskByName(ctx context.Context, name string) (*entities.Task, error) {
	return m.task(m.Called(ctx, name))
}

func (m *taskRepoMock) FindTask(ctx context.Context, id int64) (*entities.Task, error) {
	return m.task(m.Called(ctx, id))
}

func (m *taskRepoMock) SaveTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	return m.task(m.Called(ctx, task))
}

type commentRepoMock struct{ mock.Mock }

var _ repository.CommentInterface = (*commentRepoMock)(nil)

func (m *commentRepoMock) ListComments(ctx context.Context) ([]entities.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *commentRepoMock) comment(args mock.Arguments) (*entities.Comment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *commentRepoMock) GetComment(ctx context.Context, id int64) (*entities.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *commentRepoMock) FindComment(ctx context.Context, id int64) (*entities.Comment, error) {
	return m.comment(m.Called(ctx, id))
}

func (m *commentRepoMock) SaveComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	return m.comment(m.Called(ctx, comment))
}

func (m *commentRepoMock) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Sibling stubs.

type usersStub map[string]*entities.User

func (s usersStub) UserByUserName(_ context.Context, userName string) (*entities.User, error) {
	return s[userName], nil
}

type teamsStub map[int64]*entities.Team

func (s teamsStub) Team(_ context.Context, id int64) (*entities.Team, error) {
	if t, ok := s[id]; ok {
		return t, nil
	}
	return nil, entities.ErrTeamNotFound
}

type projectsStub map[int64]*entities.Project

func (s projectsStub) Project(_ context.Context, id int64) (*entities.Project, error) {
	if p, ok := s[id]; ok {
		return p, nil
	}
	return nil, entities.ErrProjectNotFound
}

type tasksStub map[int64]*entities.Task

func (s tasksStub) Task(_ context.Context, id int64) (*entities.Task, error) {
	if t, ok := s[id]; ok {
		return t, nil
	}
	return nil, entities.ErrTaskNotFound
}

func ptr[T any](v T) *T { return &v }
