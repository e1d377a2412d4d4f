package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"og-team-ms/internal/entities"
	"og-team-ms/internal/repository"

	"go.uber.org/zap"
)

// ProjectCatalog owns projects. The owning team is resolved via teams.
type ProjectCatalog struct {
	log     *zap.SugaredLogger
	repo    repository.ProjectInterface
	tx      repository.TransactorInterface
	teams   teamResolver
	timeout time.Duration
}

// NewProjectCatalog constructs the project component.
func NewProjectCatalog(
	log *zap.SugaredLogger,
	repo repository.ProjectInterface,
	tx repository.TransactorInterface,
	teams teamResolver,
	timeout time.Duration,
) *ProjectCatalog {
	return &ProjectCatalog{log: log, repo: repo, tx: tx, teams: teams, timeout: timeout}
}

// Projects lists projects with team and tasks.
func (c *ProjectCatalog) Projects(ctx context.Context) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	return c.repo.ListProjects(ctx)
}

// Project returns project by id.
func (c *ProjectCatalog) Project(ctx context.Context, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	return c.repo.GetProject(ctx, id)
}

// ProjectByName returns the first project with the name, or nil.
func (c *ProjectCatalog) ProjectByName(ctx context.Context, name string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", entities.ErrInvalidArgument)
	}

	project, err := c.repo.GetProjectByName(ctx, name)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return nil, nil
	}
	return project, err
}

// CreateProject creates a project owned by an existing team.
func (c *ProjectCatalog) CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	if params.Name == "" {
		c.log.Errorw("failed to create project: missing name")
		return nil, fmt.Errorf("%w: project name is required", entities.ErrInvalidArgument)
	}

	team, err := c.teams.Team(ctx, params.TeamID)
	if err != nil {
		return nil, err
	}

	project, err := c.repo.SaveProject(ctx, entities.Project{Name: params.Name, TeamID: team.ID})
	if err != nil {
		return nil, err
	}
	project.Team = team
	c.log.Infow("project created", "id", project.ID, "name", project.Name, "team_id", team.ID)
	return project, nil
}

// UpdateProject renames a project and/or moves it to another team.
func (c *ProjectCatalog) UpdateProject(ctx context.Context, id int64, params entities.UpdateProjectParams) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	if params.Name != nil && *params.Name == "" {
		return nil, fmt.Errorf("%w: project name must not be empty", entities.ErrInvalidArgument)
	}

	var updated *entities.Project
	err := c.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := c.repo.FindProject(ctx, id)
		if err != nil {
			return err
		}

		patch := entities.ProjectPatch{Name: params.Name}
		if params.TeamID != nil && *params.TeamID != current.TeamID {
			team, err := c.teams.Team(ctx, *params.TeamID)
			if err != nil {
				return err
			}
			patch.Team = team
		}

		merged := current.Merge(patch)
		updated, err = c.repo.SaveProject(ctx, merged)
		if err != nil {
			return err
		}
		updated.Team = merged.Team
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes a project and returns its last state.
func (c *ProjectCatalog) DeleteProject(ctx context.Context, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	var deleted *entities.Project
	err := c.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := c.repo.FindProject(ctx, id)
		if err != nil {
			return err
		}
		if err := c.repo.DeleteProject(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.log.Infow("project deleted", "id", deleted.ID, "name", deleted.Name)
	return deleted, nil
}
