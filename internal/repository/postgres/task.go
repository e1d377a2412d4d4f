package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"
)

const (
	selectTaskByIDQuery     = "SELECT " + taskColumns + " FROM tasks t WHERE t.id=$1"
	selectTaskByNameQuery   = "SELECT " + taskColumns + " FROM tasks t WHERE t.name=$1 ORDER BY t.id LIMIT 1"
	selectTaskCommentsQuery = "SELECT " + commentColumns + " FROM comments c WHERE c.task_id = ANY($1) ORDER BY c.id"
	insertTaskQuery         = `
INSERT INTO tasks(name, description, status, project_id, creator_id, responsible_id, deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`
	updateTaskQuery = `
UPDATE tasks
SET name=$2, description=$3, status=$4, project_id=$5, creator_id=$6, responsible_id=$7, deleted=$8, updated_at=now()
WHERE id=$1
RETURNING created_at, updated_at`
)

// ListTasks returns tasks matching the filter with project, responsible,
// creator and comments.
func (p *Postgres) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	query, args := taskListQuery(filter)
	tasks, err := queryAll(ctx, p.q(ctx), scanTask, query, args...)
	if err != nil {
		p.log.Errorw("failed to list tasks", "error", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if err := p.loadTaskRelations(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a task by id with its relations.
func (p *Postgres) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	return p.getTask(ctx, selectTaskByIDQuery, id)
}

// GetTaskByName returns the first task with the name, with its relations.
func (p *Postgres) GetTaskByName(ctx context.Context, name string) (*entities.Task, error) {
	return p.getTask(ctx, selectTaskByNameQuery, name)
}

// FindTask returns the bare task row.
func (p *Postgres) FindTask(ctx context.Context, id int64) (*entities.Task, error) {
	t, err := queryOne(ctx, p.q(ctx), scanTask, selectTaskByIDQuery+lockClause(ctx), id)
	if err != nil {
		return nil, lookupError("find task", err, entities.ErrTaskNotFound)
	}
	return &t, nil
}

// SaveTask inserts a new task (zero ID) or updates an existing one,
// including the soft-delete flag.
func (p *Postgres) SaveTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	var err error
	if task.ID == 0 {
		err = p.q(ctx).QueryRow(ctx, insertTaskQuery,
			task.Name, task.Description, string(task.Status), task.ProjectID, task.CreatorID, task.ResponsibleID, task.Deleted,
		).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	} else {
		err = p.q(ctx).QueryRow(ctx, updateTaskQuery,
			task.ID, task.Name, task.Description, string(task.Status), task.ProjectID, task.CreatorID, task.ResponsibleID, task.Deleted,
		).Scan(&task.CreatedAt, &task.UpdatedAt)
	}
	if err != nil {
		p.log.Errorw("failed to save task", "error", err, "task", task.Name)
		return nil, lookupError("save task", err, entities.ErrTaskNotFound)
	}

	p.log.Infow("task saved", "task_id", task.ID, "project_id", task.ProjectID, "deleted", task.Deleted)
	return &task, nil
}

func (p *Postgres) getTask(ctx context.Context, query string, arg any) (*entities.Task, error) {
	t, err := queryOne(ctx, p.q(ctx), scanTask, query, arg)
	if err != nil {
		return nil, lookupError("get task", err, entities.ErrTaskNotFound)
	}
	tasks := []entities.Task{t}
	if err := p.loadTaskRelations(ctx, tasks); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

func (p *Postgres) loadTaskRelations(ctx context.Context, tasks []entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]int64, len(tasks))
	projectIDs := make([]int64, 0, len(tasks))
	userIDs := make([]int64, 0, 2*len(tasks))
	index := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
		projectIDs = append(projectIDs, t.ProjectID)
		userIDs = append(userIDs, t.CreatorID)
		if t.ResponsibleID != nil {
			userIDs = append(userIDs, *t.ResponsibleID)
		}
		tasks[i].Comments = make([]entities.Comment, 0)
	}

	projects, err := projectsByIDs(ctx, p.q(ctx), projectIDs)
	if err != nil {
		return err
	}
	users, err := usersByIDs(ctx, p.q(ctx), userIDs)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Project = projects[tasks[i].ProjectID]
		tasks[i].Creator = users[tasks[i].CreatorID]
		if tasks[i].ResponsibleID != nil {
			tasks[i].Responsible = users[*tasks[i].ResponsibleID]
		}
	}

	comments, err := queryAll(ctx, p.q(ctx), scanComment, selectTaskCommentsQuery, ids)
	if err != nil {
		return fmt.Errorf("load task comments: %w", err)
	}
	for _, c := range comments {
		i := index[c.TaskID]
		tasks[i].Comments = append(tasks[i].Comments, c)
	}
	return nil
}
