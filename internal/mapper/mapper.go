// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	teams := make([]api.TeamShort, 0, len(u.Teams))
	for _, t := range u.Teams {
		teams = append(teams, toTeamShort(t))
	}
	tasks := make([]api.TaskShort, 0, len(u.Tasks))
	for _, t := range u.Tasks {
		tasks = append(tasks, toTaskShort(t))
	}

	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Teams:     teams,
		Tasks:     tasks,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	users := make([]api.UserShort, 0, len(t.Users))
	for _, u := range t.Users {
		users = append(users, toUserShort(u))
	}
	projects := make([]api.ProjectShort, 0, len(t.Projects))
	for _, p := range t.Projects {
		projects = append(projects, toProjectShort(p))
	}

	return api.Team{
		ID:        t.ID,
		Name:      t.Name,
		Users:     users,
		Projects:  projects,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	tasks := make([]api.TaskShort, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, toTaskShort(t))
	}

	res := api.Project{
		ID:        p.ID,
		Name:      p.Name,
		TeamID:    p.TeamID,
		Tasks:     tasks,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Team != nil {
		team := toTeamShort(*p.Team)
		res.Team = &team
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	comments := make([]api.Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, ToAPIComment(c))
	}

	res := api.Task{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		ProjectID:   t.ProjectID,
		Comments:    comments,
		Deleted:     t.Deleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Project != nil {
		project := toProjectShort(*t.Project)
		res.Project = &project
	}
	res.Creator = toUserShortPtr(t.Creator)
	res.Responsible = toUserShortPtr(t.Responsible)
	return res
}

// ToAPIComment maps entities.Comment to transport model.
func ToAPIComment(c entities.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		User:      toUserShortPtr(c.User),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToAPIList maps a slice with fn.
func ToAPIList[E, D any](list []E, fn func(E) D) []D {
	res := make([]D, 0, len(list))
	for _, e := range list {
		res = append(res, fn(e))
	}
	return res
}

func toUserShort(u entities.User) api.UserShort {
	return api.UserShort{ID: u.ID, Username: u.Username}
}

func toUserShortPtr(u *entities.User) *api.UserShort {
	if u == nil {
		return nil
	}
	short := toUserShort(*u)
	return &short
}

func toTeamShort(t entities.Team) api.TeamShort {
	return api.TeamShort{ID: t.ID, Name: t.Name}
}

func toProjectShort(p entities.Project) api.ProjectShort {
	return api.ProjectShort{ID: p.ID, Name: p.Name, TeamID: p.TeamID}
}

func toTaskShort(t entities.Task) api.TaskShort {
	return api.TaskShort{ID: t.ID, Name: t.Name, Status: string(t.Status), Deleted: t.Deleted}
}
