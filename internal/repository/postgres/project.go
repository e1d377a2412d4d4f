package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"
)

const (
	selectProjectsQuery      = "SELECT " + projectColumns + " FROM projects p ORDER BY p.id"
	selectProjectByIDQuery   = "SELECT " + projectColumns + " FROM projects p WHERE p.id=$1"
	selectProjectByNameQuery = "SELECT " + projectColumns + " FROM projects p WHERE p.name=$1 ORDER BY p.id LIMIT 1"
	insertProjectQuery       = "INSERT INTO projects(name, team_id) VALUES($1, $2) RETURNING id, created_at, updated_at"
	updateProjectQuery       = "UPDATE projects SET name=$2, team_id=$3, updated_at=now() WHERE id=$1 RETURNING created_at, updated_at"
	deleteProjectQuery       = "DELETE FROM projects WHERE id=$1"
	selectProjectsTasksQuery = "SELECT " + taskColumns + " FROM tasks t WHERE t.project_id = ANY($1) ORDER BY t.id"
)

// ListProjects returns all projects with team and tasks.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	projects, err := queryAll(ctx, p.q(ctx), scanProject, selectProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if err := p.loadProjectRelations(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a project by id with team and tasks.
func (p *Postgres) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	return p.getProject(ctx, selectProjectByIDQuery, id)
}

// GetProjectByName returns the first project with the name, with team and tasks.
func (p *Postgres) GetProjectByName(ctx context.Context, name string) (*entities.Project, error) {
	return p.getProject(ctx, selectProjectByNameQuery, name)
}

// FindProject returns the bare project row.
func (p *Postgres) FindProject(ctx context.Context, id int64) (*entities.Project, error) {
	pr, err := queryOne(ctx, p.q(ctx), scanProject, selectProjectByIDQuery+lockClause(ctx), id)
	if err != nil {
		return nil, lookupError("find project", err, entities.ErrProjectNotFound)
	}
	return &pr, nil
}

// SaveProject inserts a new project (zero ID) or updates an existing one.
func (p *Postgres) SaveProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	var err error
	if project.ID == 0 {
		err = p.q(ctx).QueryRow(ctx, insertProjectQuery, project.Name, project.TeamID).
			Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	} else {
		err = p.q(ctx).QueryRow(ctx, updateProjectQuery, project.ID, project.Name, project.TeamID).
			Scan(&project.CreatedAt, &project.UpdatedAt)
	}
	if err != nil {
		p.log.Errorw("failed to save project", "error", err, "project", project.Name)
		return nil, lookupError("save project", err, entities.ErrProjectNotFound)
	}

	p.log.Infow("project saved", "project_id", project.ID, "team_id", project.TeamID)
	return &project, nil
}

// DeleteProject removes the project row.
func (p *Postgres) DeleteProject(ctx context.Context, id int64) error {
	tag, err := p.q(ctx).Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete project", "error", err, "project_id", id)
		return storeError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}

func (p *Postgres) getProject(ctx context.Context, query string, arg any) (*entities.Project, error) {
	pr, err := queryOne(ctx, p.q(ctx), scanProject, query, arg)
	if err != nil {
		return nil, lookupError("get project", err, entities.ErrProjectNotFound)
	}
	projects := []entities.Project{pr}
	if err := p.loadProjectRelations(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (p *Postgres) loadProjectRelations(ctx context.Context, projects []entities.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]int64, len(projects))
	teamIDs := make([]int64, 0, len(projects))
	index := make(map[int64]int, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
		index[projects[i].ID] = i
		teamIDs = append(teamIDs, projects[i].TeamID)
		projects[i].Tasks = make([]entities.Task, 0)
	}

	teams, err := teamsByIDs(ctx, p.q(ctx), teamIDs)
	if err != nil {
		return err
	}
	for i := range projects {
		projects[i].Team = teams[projects[i].TeamID]
	}

	tasks, err := queryAll(ctx, p.q(ctx), scanTask, selectProjectsTasksQuery, ids)
	if err != nil {
		return fmt.Errorf("load project tasks: %w", err)
	}
	for _, t := range tasks {
		i := index[t.ProjectID]
		projects[i].Tasks = append(projects[i].Tasks, t)
	}
	return nil
}
