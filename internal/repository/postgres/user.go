package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectUsersQuery          = "SELECT " + userColumns + " FROM users u ORDER BY u.id"
	selectUserByIDQuery       = "SELECT " + userColumns + " FROM users u WHERE u.id=$1"
	selectUserByUsernameQuery = "SELECT " + userColumns + " FROM users u WHERE u.username=$1"
	insertUserQuery           = "INSERT INTO users(username) VALUES($1) RETURNING id, created_at, updated_at"
	updateUserQuery           = "UPDATE users SET username=$2, updated_at=now() WHERE id=$1 RETURNING created_at, updated_at"
	deleteUserQuery           = "DELETE FROM users WHERE id=$1"
	selectUserTeamsQuery      = `
SELECT tu.user_id, t.id, t.name, t.created_at, t.updated_at
FROM team_users tu
JOIN teams t ON t.id = tu.team_id
WHERE tu.user_id = ANY($1)
ORDER BY t.id`
	selectUserTasksQuery = "SELECT " + taskColumns + " FROM tasks t WHERE t.creator_id = ANY($1) OR t.responsible_id = ANY($1) ORDER BY t.id"
)

// ListUsers returns all users with teams and tasks.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := queryAll(ctx, p.q(ctx), scanUser, selectUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if err := p.loadUserRelations(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a user by id with teams and tasks.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	return p.getUser(ctx, selectUserByIDQuery, id)
}

// GetUserByUsername returns a user by username with teams and tasks.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return p.getUser(ctx, selectUserByUsernameQuery, username)
}

// FindUserByUsername returns the bare user row.
func (p *Postgres) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := queryOne(ctx, p.q(ctx), scanUser, selectUserByUsernameQuery+lockClause(ctx), username)
	if err != nil {
		return nil, lookupError("find user", err, entities.ErrUserNotFound)
	}
	return &u, nil
}

// SaveUser inserts a new user (zero ID) or updates an existing one.
func (p *Postgres) SaveUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var err error
	if user.ID == 0 {
		err = p.q(ctx).QueryRow(ctx, insertUserQuery, user.Username).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	} else {
		err = p.q(ctx).QueryRow(ctx, updateUserQuery, user.ID, user.Username).Scan(&user.CreatedAt, &user.UpdatedAt)
	}
	if err != nil {
		p.log.Errorw("failed to save user", "error", err, "username", user.Username)
		return nil, lookupError("save user", err, entities.ErrUserNotFound)
	}

	p.log.Infow("user saved", "user_id", user.ID)
	return &user, nil
}

// DeleteUser removes the user row.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := p.q(ctx).Exec(ctx, deleteUserQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return storeError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

func (p *Postgres) getUser(ctx context.Context, query string, arg any) (*entities.User, error) {
	u, err := queryOne(ctx, p.q(ctx), scanUser, query, arg)
	if err != nil {
		return nil, lookupError("get user", err, entities.ErrUserNotFound)
	}
	users := []entities.User{u}
	if err := p.loadUserRelations(ctx, users); err != nil {
		return nil, err
	}
	return &users[0], nil
}

type userTeam struct {
	userID int64
	team   entities.Team
}

func (p *Postgres) loadUserRelations(ctx context.Context, users []entities.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]int64, len(users))
	index := make(map[int64]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		index[users[i].ID] = i
		users[i].Teams = make([]entities.Team, 0)
		users[i].Tasks = make([]entities.Task, 0)
	}

	memberships, err := queryAll(ctx, p.q(ctx), func(row pgx.CollectableRow) (userTeam, error) {
		var ut userTeam
		err := row.Scan(&ut.userID, &ut.team.ID, &ut.team.Name, &ut.team.CreatedAt, &ut.team.UpdatedAt)
		return ut, err
	}, selectUserTeamsQuery, ids)
	if err != nil {
		return fmt.Errorf("load user teams: %w", err)
	}
	for _, m := range memberships {
		i := index[m.userID]
		users[i].Teams = append(users[i].Teams, m.team)
	}

	tasks, err := queryAll(ctx, p.q(ctx), scanTask, selectUserTasksQuery, ids)
	if err != nil {
		return fmt.Errorf("load user tasks: %w", err)
	}
	for _, t := range tasks {
		if i, ok := index[t.CreatorID]; ok {
			users[i].Tasks = append(users[i].Tasks, t)
		}
		if t.ResponsibleID == nil || *t.ResponsibleID == t.CreatorID {
			continue
		}
		if i, ok := index[*t.ResponsibleID]; ok {
			users[i].Tasks = append(users[i].Tasks, t)
		}
	}
	return nil
}
