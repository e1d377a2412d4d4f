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

// TeamRegistry owns teams and their membership.
type TeamRegistry struct {
	log     *zap.SugaredLogger
	repo    repository.TeamInterface
	tx      repository.TransactorInterface
	users   userResolver
	timeout time.Duration
}

// NewTeamRegistry constructs the team component. Members are resolved via users.
func NewTeamRegistry(
	log *zap.SugaredLogger,
	repo repository.TeamInterface,
	tx repository.TransactorInterface,
	users userResolver,
	timeout time.Duration,
) *TeamRegistry {
	return &TeamRegistry{log: log, repo: repo, tx: tx, users: users, timeout: timeout}
}

// Teams lists all teams with users and projects.
func (r *TeamRegistry) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.repo.ListTeams(ctx)
}

// Team returns team by id.
func (r *TeamRegistry) Team(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.repo.GetTeam(ctx, id)
}

// TeamByName returns team by name, or nil when there is none.
func (r *TeamRegistry) TeamByName(ctx context.Context, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	team, err := r.repo.GetTeamByName(ctx, name)
	if errors.Is(err, entities.ErrTeamNotFound) {
		return nil, nil
	}
	return team, err
}

// CreateTeam creates an empty team.
func (r *TeamRegistry) CreateTeam(ctx context.Context, params entities.CreateTeamParams) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if params.Name == "" {
		r.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	team, err := r.repo.SaveTeam(ctx, entities.Team{Name: params.Name})
	if err != nil {
		return nil, err
	}
	r.log.Infow("team created", "id", team.ID, "name", team.Name)
	return team, nil
}

// UpdateTeam overlays the patch on the stored team.
func (r *TeamRegistry) UpdateTeam(ctx context.Context, id int64, patch entities.TeamPatch) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: team name must not be empty", entities.ErrInvalidArgument)
	}

	var updated *entities.Team
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := r.repo.FindTeam(ctx, id)
		if err != nil {
			return err
		}
		updated, err = r.repo.SaveTeam(ctx, current.Merge(patch))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTeam removes a team and returns its last state.
func (r *TeamRegistry) DeleteTeam(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var deleted *entities.Team
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := r.repo.FindTeam(ctx, id)
		if err != nil {
			return err
		}
		if err := r.repo.DeleteTeam(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Infow("team deleted", "id", deleted.ID, "name", deleted.Name)
	return deleted, nil
}

// AddTeamUser makes the user a team member and returns the user.
// A user that is already a member yields ErrMemberExists.
func (r *TeamRegistry) AddTeamUser(ctx context.Context, teamID int64, userName string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var added *entities.User
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := r.repo.GetTeam(ctx, teamID)
		if err != nil {
			return err
		}
		user, err := requireUser(ctx, r.users, userName)
		if err != nil {
			return err
		}
		if team.HasMember(user.ID) {
			return memberExistsError(userName, team.Name)
		}
		if err := r.repo.AddTeamMember(ctx, team.ID, user.ID); err != nil {
			return err
		}
		added = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Infow("team member added", "team_id", teamID, "username", userName)
	return added, nil
}

// RemoveTeamUser drops the user from the team and returns the user.
// An existing user outside the team yields ErrMemberNotFound.
func (r *TeamRegistry) RemoveTeamUser(ctx context.Context, teamID int64, userName string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var removed *entities.User
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		team, err := r.repo.GetTeamMembers(ctx, teamID)
		if err != nil {
			return err
		}
		user, err := requireUser(ctx, r.users, userName)
		if err != nil {
			return err
		}
		if team.MemberIndex(user.Username) < 0 {
			return fmt.Errorf("%w: %s is not in team %s", entities.ErrMemberNotFound, userName, team.Name)
		}
		if err := r.repo.RemoveTeamMember(ctx, team.ID, user.ID); err != nil {
			return err
		}
		removed = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Infow("team member removed", "team_id", teamID, "username", userName)
	return removed, nil
}

func memberExistsError(userName, teamName string) error {
	return fmt.Errorf("%w: %s in %s", entities.ErrMemberExists, userName, teamName)
}
