package mapper

import (
	"testing"

	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToAPITaskNestedRefs(t *testing.T) {
	responsible := int64(2)
	task := entities.Task{
		ID:            1,
		Name:          "Task1",
		Status:        entities.TaskInProgress,
		ProjectID:     10,
		Project:       &entities.Project{ID: 10, Name: "P1", TeamID: 3},
		CreatorID:     1,
		Creator:       &entities.User{ID: 1, Username: "alice"},
		ResponsibleID: &responsible,
		Responsible:   &entities.User{ID: 2, Username: "bob"},
		Comments:      []entities.Comment{{ID: 5, Content: "hi", TaskID: 1, User: &entities.User{ID: 1, Username: "alice"}}},
	}

	res := ToAPITask(task)
	require.Equal(t, "IN_PROGRESS", res.Status)
	require.Equal(t, &api.ProjectShort{ID: 10, Name: "P1", TeamID: 3}, res.Project)
	require.Equal(t, "alice", res.Creator.Username)
	require.Equal(t, "bob", res.Responsible.Username)
	require.Len(t, res.Comments, 1)
	require.Equal(t, "alice", res.Comments[0].User.Username)
}

func TestToAPITaskWithoutRelations(t *testing.T) {
	res := ToAPITask(entities.Task{ID: 1, Name: "bare"})
	require.Nil(t, res.Project)
	require.Nil(t, res.Creator)
	require.Nil(t, res.Responsible)
	require.NotNil(t, res.Comments)
}

func TestToAPITeamMembers(t *testing.T) {
	team := entities.Team{
		ID:       1,
		Name:     "T1",
		Users:    []entities.User{{ID: 1, Username: "alice"}},
		Projects: []entities.Project{{ID: 10, Name: "P1", TeamID: 1}},
	}

	res := ToAPITeam(team)
	require.Equal(t, []api.UserShort{{ID: 1, Username: "alice"}}, res.Users)
	require.Equal(t, []api.ProjectShort{{ID: 10, Name: "P1", TeamID: 1}}, res.Projects)
}

func TestToAPIList(t *testing.T) {
	users := []entities.User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}}
	res := ToAPIList(users, ToAPIUser)
	require.Len(t, res, 2)
	require.Equal(t, "b", res[1].Username)
	require.Empty(t, ToAPIList(nil, ToAPIUser))
}

func TestFromUpdateTaskRequestStatus(t *testing.T) {
	status := "COMPLETED"
	params := FromUpdateTaskRequest(api.UpdateTaskRequest{Status: &status})
	require.NotNil(t, params.Status)
	require.Equal(t, entities.TaskCompleted, *params.Status)
	require.Nil(t, params.Name)
}
