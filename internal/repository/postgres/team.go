package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"

	"github.com/jackc/pgx/v5"
)

// teamJoin enumerates the relations a team lookup eager-loads.
type teamJoin uint8

const (
	joinTeamUsers teamJoin = 1 << iota
	joinTeamProjects

	joinTeamAll = joinTeamUsers | joinTeamProjects
)

const (
	selectTeamsQuery       = "SELECT " + teamColumns + " FROM teams t ORDER BY t.id"
	selectTeamByIDQuery    = "SELECT " + teamColumns + " FROM teams t WHERE t.id=$1"
	selectTeamByNameQuery  = "SELECT " + teamColumns + " FROM teams t WHERE t.name=$1"
	insertTeamQuery        = "INSERT INTO teams(name) VALUES($1) RETURNING id, created_at, updated_at"
	updateTeamQuery        = "UPDATE teams SET name=$2, updated_at=now() WHERE id=$1 RETURNING created_at, updated_at"
	deleteTeamQuery        = "DELETE FROM teams WHERE id=$1"
	touchTeamQuery         = "UPDATE teams SET updated_at=now() WHERE id=$1"
	insertTeamMemberQuery  = "INSERT INTO team_users(team_id, user_id) VALUES ($1, $2)"
	deleteTeamMemberQuery  = "DELETE FROM team_users WHERE team_id=$1 AND user_id=$2"
	selectTeamMembersQuery = `
SELECT tu.team_id, u.id, u.username, u.created_at, u.updated_at
FROM team_users tu
JOIN users u ON u.id = tu.user_id
WHERE tu.team_id = ANY($1)
ORDER BY u.id`
	selectTeamProjectsQuery = "SELECT " + projectColumns + " FROM projects p WHERE p.team_id = ANY($1) ORDER BY p.id"
)

// ListTeams returns all teams with users and projects.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	teams, err := queryAll(ctx, p.q(ctx), scanTeam, selectTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if err := p.loadTeamRelations(ctx, teams, joinTeamAll); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam returns a team by id with users and projects.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	return p.getTeam(ctx, selectTeamByIDQuery+lockClause(ctx), id, joinTeamAll)
}

// GetTeamByName returns a team by name with users and projects.
func (p *Postgres) GetTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return p.getTeam(ctx, selectTeamByNameQuery, name, joinTeamAll)
}

// GetTeamMembers returns a team by id with users only.
func (p *Postgres) GetTeamMembers(ctx context.Context, id int64) (*entities.Team, error) {
	return p.getTeam(ctx, selectTeamByIDQuery+lockClause(ctx), id, joinTeamUsers)
}

// FindTeam returns the bare team row.
func (p *Postgres) FindTeam(ctx context.Context, id int64) (*entities.Team, error) {
	t, err := queryOne(ctx, p.q(ctx), scanTeam, selectTeamByIDQuery+lockClause(ctx), id)
	if err != nil {
		return nil, lookupError("find team", err, entities.ErrTeamNotFound)
	}
	return &t, nil
}

// SaveTeam inserts a new team (zero ID) or updates its scalar fields.
func (p *Postgres) SaveTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	var err error
	if team.ID == 0 {
		err = p.q(ctx).QueryRow(ctx, insertTeamQuery, team.Name).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
	} else {
		err = p.q(ctx).QueryRow(ctx, updateTeamQuery, team.ID, team.Name).Scan(&team.CreatedAt, &team.UpdatedAt)
	}
	if err != nil {
		p.log.Errorw("failed to save team", "error", err, "team", team.Name)
		return nil, lookupError("save team", err, entities.ErrTeamNotFound)
	}

	p.log.Infow("team saved", "team_id", team.ID, "team", team.Name)
	return &team, nil
}

// DeleteTeam removes the team row; memberships cascade.
func (p *Postgres) DeleteTeam(ctx context.Context, id int64) error {
	tag, err := p.q(ctx).Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete team", "error", err, "team_id", id)
		return storeError("delete team", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	return nil
}

// AddTeamMember links the user to the team.
func (p *Postgres) AddTeamMember(ctx context.Context, teamID, userID int64) error {
	if _, err := p.q(ctx).Exec(ctx, insertTeamMemberQuery, teamID, userID); err != nil {
		p.log.Errorw("failed to add team member", "error", err, "team_id", teamID, "user_id", userID)
		return storeError("add team member", err)
	}
	if _, err := p.q(ctx).Exec(ctx, touchTeamQuery, teamID); err != nil {
		return storeError("touch team", err)
	}
	p.log.Infow("team member added", "team_id", teamID, "user_id", userID)
	return nil
}

// RemoveTeamMember unlinks the user from the team.
func (p *Postgres) RemoveTeamMember(ctx context.Context, teamID, userID int64) error {
	tag, err := p.q(ctx).Exec(ctx, deleteTeamMemberQuery, teamID, userID)
	if err != nil {
		p.log.Errorw("failed to remove team member", "error", err, "team_id", teamID, "user_id", userID)
		return storeError("remove team member", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}
	if _, err := p.q(ctx).Exec(ctx, touchTeamQuery, teamID); err != nil {
		return storeError("touch team", err)
	}
	p.log.Infow("team member removed", "team_id", teamID, "user_id", userID)
	return nil
}

func (p *Postgres) getTeam(ctx context.Context, query string, arg any, join teamJoin) (*entities.Team, error) {
	t, err := queryOne(ctx, p.q(ctx), scanTeam, query, arg)
	if err != nil {
		return nil, lookupError("get team", err, entities.ErrTeamNotFound)
	}
	teams := []entities.Team{t}
	if err := p.loadTeamRelations(ctx, teams, join); err != nil {
		return nil, err
	}
	return &teams[0], nil
}

type teamMember struct {
	teamID int64
	user   entities.User
}

func (p *Postgres) loadTeamRelations(ctx context.Context, teams []entities.Team, join teamJoin) error {
	if len(teams) == 0 {
		return nil
	}
	ids := make([]int64, len(teams))
	index := make(map[int64]int, len(teams))
	for i := range teams {
		ids[i] = teams[i].ID
		index[teams[i].ID] = i
	}

	if join&joinTeamUsers != 0 {
		for i := range teams {
			teams[i].Users = make([]entities.User, 0)
		}
		members, err := queryAll(ctx, p.q(ctx), func(row pgx.CollectableRow) (teamMember, error) {
			var m teamMember
			err := row.Scan(&m.teamID, &m.user.ID, &m.user.Username, &m.user.CreatedAt, &m.user.UpdatedAt)
			return m, err
		}, selectTeamMembersQuery, ids)
		if err != nil {
			return fmt.Errorf("load team members: %w", err)
		}
		for _, m := range members {
			i := index[m.teamID]
			teams[i].Users = append(teams[i].Users, m.user)
		}
	}

	if join&joinTeamProjects != 0 {
		for i := range teams {
			teams[i].Projects = make([]entities.Project, 0)
		}
		projects, err := queryAll(ctx, p.q(ctx), scanProject, selectTeamProjectsQuery, ids)
		if err != nil {
			return fmt.Errorf("load team projects: %w", err)
		}
		for _, pr := range projects {
			i := index[pr.TeamID]
			teams[i].Projects = append(teams[i].Projects, pr)
		}
	}
	return nil
}
