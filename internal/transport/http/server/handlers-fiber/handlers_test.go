package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
	"og-team-ms/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// usecaseStub overrides the operations a test needs; others panic via the nil interface.
type usecaseStub struct {
	usecase.InterfaceUsecase

	userByUserName func(ctx context.Context, userName string) (*entities.User, error)
	createTeam     func(ctx context.Context, params entities.CreateTeamParams) (*entities.Team, error)
	addTeamUser    func(ctx context.Context, teamID int64, userName string) (*entities.User, error)
	tasks          func(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	createTask     func(ctx context.Context, params entities.CreateTaskParams) (*entities.Task, error)
	deleteTask     func(ctx context.Context, id int64) (*entities.Task, error)
}

func (s *usecaseStub) UserByUserName(ctx context.Context, userName string) (*entities.User, error) {
	return s.userByUserName(ctx, userName)
}

func (s *usecaseStub) CreateTeam(ctx context.Context, params entities.CreateTeamParams) (*entities.Team, error) {
	return s.createTeam(ctx, params)
}

func (s *usecaseStub) AddTeamUser(ctx context.Context, teamID int64, userName string) (*entities.User, error) {
	return s.addTeamUser(ctx, teamID, userName)
}

func (s *usecaseStub) Tasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	return s.tasks(ctx, filter)
}

func (s *usecaseStub) CreateTask(ctx context.Context, params entities.CreateTaskParams) (*entities.Task, error) {
	return s.createTask(ctx, params)
}

func (s *usecaseStub) DeleteTask(ctx context.Context, id int64) (*entities.Task, error) {
	return s.deleteTask(ctx, id)
}

func newTestApp(uc *usecaseStub) *fiber.App {
	app := fiber.New(AppConfig(0))
	NewHandler(zap.NewNop().Sugar(), uc).Register(app.Group("/api/v1"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) api.ErrorResponse {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetUserByNameAbsentIs404(t *testing.T) {
	app := newTestApp(&usecaseStub{
		userByUserName: func(context.Context, string) (*entities.User, error) { return nil, nil },
	})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/users/name/ghost", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, api.NOTFOUND, decodeError(t, resp).Error.Code)
}

func TestGetUserByName(t *testing.T) {
	app := newTestApp(&usecaseStub{
		userByUserName: func(_ context.Context, name string) (*entities.User, error) {
			return &entities.User{ID: 1, Username: name}, nil
		},
	})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/users/name/alice", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User api.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "alice", body.User.Username)
}

func TestCreateTeamValidation(t *testing.T) {
	called := false
	app := newTestApp(&usecaseStub{
		createTeam: func(context.Context, entities.CreateTeamParams) (*entities.Team, error) {
			called = true
			return nil, nil
		},
	})

	for _, body := range []string{`{}`, `{"name":""}`, `not json`} {
		resp := doRequest(t, app, http.MethodPost, "/api/v1/teams", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		require.Equal(t, api.INVALIDARGUMENT, decodeError(t, resp).Error.Code)
	}
	require.False(t, called)
}

func TestCreateTeamDropsUnknownFields(t *testing.T) {
	var got entities.CreateTeamParams
	app := newTestApp(&usecaseStub{
		createTeam: func(_ context.Context, params entities.CreateTeamParams) (*entities.Team, error) {
			got = params
			return &entities.Team{ID: 1, Name: params.Name}, nil
		},
	})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/teams", `{"name":"T1","extra":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "T1", got.Name)
}

func TestCreateTeamConflict(t *testing.T) {
	app := newTestApp(&usecaseStub{
		createTeam: func(context.Context, entities.CreateTeamParams) (*entities.Team, error) {
			return nil, entities.ErrConflict
		},
	})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/teams", `{"name":"T1"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAddTeamUser(t *testing.T) {
	var gotTeam int64
	var gotUser string
	app := newTestApp(&usecaseStub{
		addTeamUser: func(_ context.Context, teamID int64, userName string) (*entities.User, error) {
			gotTeam, gotUser = teamID, userName
			return &entities.User{ID: 5, Username: userName}, nil
		},
	})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/teams/3/users", `{"userName":"alice"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, int64(3), gotTeam)
	require.Equal(t, "alice", gotUser)
}

func TestAddTeamUserBadID(t *testing.T) {
	app := newTestApp(&usecaseStub{})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/teams/abc/users", `{"userName":"alice"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTasksFilter(t *testing.T) {
	var got entities.TaskFilter
	app := newTestApp(&usecaseStub{
		tasks: func(_ context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
			got = filter
			return []entities.Task{{ID: 1, Name: "Task1", Status: entities.TaskPending}}, nil
		},
	})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/tasks?filterName=task&filterStatus=PENDING&filterProject=7", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, got.Name)
	require.Equal(t, "task", *got.Name)
	require.Nil(t, got.Responsible)
	require.NotNil(t, got.Status)
	require.Equal(t, entities.TaskPending, *got.Status)
	require.NotNil(t, got.ProjectID)
	require.Equal(t, int64(7), *got.ProjectID)

	var body struct {
		Tasks []api.Task `json:"tasks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Tasks, 1)
}

func TestListTasksBadFilter(t *testing.T) {
	app := newTestApp(&usecaseStub{})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/tasks?filterStatus=DONE", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/tasks?filterProject=x", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTaskStatusValidation(t *testing.T) {
	var got entities.CreateTaskParams
	app := newTestApp(&usecaseStub{
		createTask: func(_ context.Context, params entities.CreateTaskParams) (*entities.Task, error) {
			got = params
			return &entities.Task{ID: 9, Name: params.Name, Status: entities.TaskPending}, nil
		},
	})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/tasks",
		`{"name":"Task1","projectId":1,"creatorUser":"alice","status":"DONE"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/tasks",
		`{"name":"Task1","projectId":1,"creatorUser":"alice","responsableUser":"bob"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "bob", got.ResponsibleUser)
	require.Equal(t, entities.TaskStatus(""), got.Status)
}

func TestCreateTaskAcceptsStringIDs(t *testing.T) {
	var got entities.CreateTaskParams
	app := newTestApp(&usecaseStub{
		createTask: func(_ context.Context, params entities.CreateTaskParams) (*entities.Task, error) {
			got = params
			return &entities.Task{ID: 9, Name: params.Name, Status: entities.TaskPending}, nil
		},
	})

	resp := doRequest(t, app, http.MethodPost, "/api/v1/tasks", `{"name":"Task1","projectId":"1","creatorUser":"alice"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, int64(1), got.ProjectID)
	require.Empty(t, got.ResponsibleUser)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/tasks", `{"name":"Task1","projectId":"one","creatorUser":"alice"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserByNameUnescapesPath(t *testing.T) {
	var got string
	app := newTestApp(&usecaseStub{
		userByUserName: func(_ context.Context, name string) (*entities.User, error) {
			got = name
			return &entities.User{ID: 1, Username: name}, nil
		},
	})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/users/name/jos%C3%A9%20m", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "josé m", got)
}

func TestDeleteTaskNotFound(t *testing.T) {
	app := newTestApp(&usecaseStub{
		deleteTask: func(context.Context, int64) (*entities.Task, error) {
			return nil, entities.ErrTaskNotFound
		},
	})

	resp := doRequest(t, app, http.MethodDelete, "/api/v1/tasks/42", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "task not found", decodeError(t, resp).Error.Message)
}
