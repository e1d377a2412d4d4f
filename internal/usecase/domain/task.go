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

// TaskBoard owns tasks and their filtering.
type TaskBoard struct {
	log      *zap.SugaredLogger
	repo     repository.TaskInterface
	tx       repository.TransactorInterface
	projects projectResolver
	users    userResolver
	timeout  time.Duration
}

// NewTaskBoard constructs the task component.
func NewTaskBoard(
	log *zap.SugaredLogger,
	repo repository.TaskInterface,
	tx repository.TransactorInterface,
	projects projectResolver,
	users userResolver,
	timeout time.Duration,
) *TaskBoard {
	return &TaskBoard{log: log, repo: repo, tx: tx, projects: projects, users: users, timeout: timeout}
}

// Tasks lists tasks matching every supplied filter field.
func (b *TaskBoard) Tasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	return b.repo.ListTasks(ctx, filter)
}

// Task returns task by id.
func (b *TaskBoard) Task(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	return b.repo.GetTask(ctx, id)
}

// TaskByName returns the first task with the name, or nil.
func (b *TaskBoard) TaskByName(ctx context.Context, name string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: task name is required", entities.ErrInvalidArgument)
	}

	task, err := b.repo.GetTaskByName(ctx, name)
	if errors.Is(err, entities.ErrTaskNotFound) {
		return nil, nil
	}
	return task, err
}

// CreateTask creates a task in an existing project. The creator is required,
// the responsible user only when a username is given.
func (b *TaskBoard) CreateTask(ctx context.Context, params entities.CreateTaskParams) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	if params.Name == "" {
		b.log.Errorw("failed to create task: missing name")
		return nil, fmt.Errorf("%w: task name is required", entities.ErrInvalidArgument)
	}
	if params.CreatorUser == "" {
		b.log.Errorw("failed to create task: missing creator")
		return nil, fmt.Errorf("%w: creator is required", entities.ErrInvalidArgument)
	}
	if params.Status == "" {
		params.Status = entities.TaskPending
	}
	if !params.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, params.Status)
	}

	project, err := b.projects.Project(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}
	creator, err := requireUser(ctx, b.users, params.CreatorUser)
	if err != nil {
		return nil, err
	}

	task := entities.Task{
		Name:        params.Name,
		Description: params.Description,
		Status:      params.Status,
		ProjectID:   project.ID,
		CreatorID:   creator.ID,
	}
	var responsible *entities.User
	if params.ResponsibleUser != "" {
		responsible, err = requireUser(ctx, b.users, params.ResponsibleUser)
		if err != nil {
			return nil, err
		}
		task.ResponsibleID = &responsible.ID
	}

	saved, err := b.repo.SaveTask(ctx, task)
	if err != nil {
		return nil, err
	}
	saved.Project = project
	saved.Creator = creator
	saved.Responsible = responsible
	b.log.Infow("task created", "id", saved.ID, "name", saved.Name, "project_id", project.ID)
	return saved, nil
}

// UpdateTask overlays the supplied fields. A supplied responsible username
// must resolve to an existing user. The result carries the same relations as Task.
func (b *TaskBoard) UpdateTask(ctx context.Context, id int64, params entities.UpdateTaskParams) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	if params.Name != nil && *params.Name == "" {
		return nil, fmt.Errorf("%w: task name must not be empty", entities.ErrInvalidArgument)
	}
	if params.Status != nil && !params.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *params.Status)
	}

	var updated *entities.Task
	err := b.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := b.repo.FindTask(ctx, id)
		if err != nil {
			return err
		}

		patch := entities.TaskPatch{
			Name:        params.Name,
			Description: params.Description,
			Status:      params.Status,
		}
		if params.ResponsibleUser != nil {
			patch.Responsible, err = requireUser(ctx, b.users, *params.ResponsibleUser)
			if err != nil {
				return err
			}
		}

		saved, err := b.repo.SaveTask(ctx, current.Merge(patch))
		if err != nil {
			return err
		}
		updated, err = b.repo.GetTask(ctx, saved.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask marks the task deleted and returns the updated record with its relations.
func (b *TaskBoard) DeleteTask(ctx context.Context, id int64) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	var deleted *entities.Task
	err := b.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := b.repo.FindTask(ctx, id)
		if err != nil {
			return err
		}
		current.Deleted = true
		saved, err := b.repo.SaveTask(ctx, *current)
		if err != nil {
			return err
		}
		deleted, err = b.repo.GetTask(ctx, saved.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	b.log.Infow("task deleted", "id", deleted.ID, "name", deleted.Name)
	return deleted, nil
}
