package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	userColumns    = "u.id, u.username, u.created_at, u.updated_at"
	teamColumns    = "t.id, t.name, t.created_at, t.updated_at"
	projectColumns = "p.id, p.name, p.team_id, p.created_at, p.updated_at"
	taskColumns    = "t.id, t.name, t.description, t.status, t.project_id, t.creator_id, t.responsible_id, t.deleted, t.created_at, t.updated_at"
	commentColumns = "c.id, c.content, c.user_id, c.task_id, c.created_at, c.updated_at"

	selectUsersByIDsQuery    = "SELECT " + userColumns + " FROM users u WHERE u.id = ANY($1)"
	selectTeamsByIDsQuery    = "SELECT " + teamColumns + " FROM teams t WHERE t.id = ANY($1)"
	selectProjectsByIDsQuery = "SELECT " + projectColumns + " FROM projects p WHERE p.id = ANY($1)"
)

func scanUser(row pgx.CollectableRow) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanTeam(row pgx.CollectableRow) (entities.Team, error) {
	var t entities.Team
	err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanProject(row pgx.CollectableRow) (entities.Project, error) {
	var p entities.Project
	err := row.Scan(&p.ID, &p.Name, &p.TeamID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanTask(row pgx.CollectableRow) (entities.Task, error) {
	var t entities.Task
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Status, &t.ProjectID,
		&t.CreatorID, &t.ResponsibleID, &t.Deleted, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func scanComment(row pgx.CollectableRow) (entities.Comment, error) {
	var c entities.Comment
	err := row.Scan(&c.ID, &c.Content, &c.UserID, &c.TaskID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// queryAll runs sql and collects every row with scan.
func queryAll[T any](ctx context.Context, q querier, scan pgx.RowToFunc[T], sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

// queryOne runs sql and returns the first row; pgx.ErrNoRows when empty.
func queryOne[T any](ctx context.Context, q querier, scan pgx.RowToFunc[T], sql string, args ...any) (T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectOneRow(rows, scan)
}

func usersByIDs(ctx context.Context, q querier, ids []int64) (map[int64]*entities.User, error) {
	users, err := queryAll(ctx, q, scanUser, selectUsersByIDsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	res := make(map[int64]*entities.User, len(users))
	for i := range users {
		res[users[i].ID] = &users[i]
	}
	return res, nil
}

func teamsByIDs(ctx context.Context, q querier, ids []int64) (map[int64]*entities.Team, error) {
	teams, err := queryAll(ctx, q, scanTeam, selectTeamsByIDsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	res := make(map[int64]*entities.Team, len(teams))
	for i := range teams {
		res[teams[i].ID] = &teams[i]
	}
	return res, nil
}

func projectsByIDs(ctx context.Context, q querier, ids []int64) (map[int64]*entities.Project, error) {
	projects, err := queryAll(ctx, q, scanProject, selectProjectsByIDsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	res := make(map[int64]*entities.Project, len(projects))
	for i := range projects {
		res[projects[i].ID] = &projects[i]
	}
	return res, nil
}
