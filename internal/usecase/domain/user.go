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

// UserDirectory owns user rows and resolves users by id or username.
type UserDirectory struct {
	log     *zap.SugaredLogger
	repo    repository.UserInterface
	tx      repository.TransactorInterface
	timeout time.Duration
}

// NewUserDirectory constructs the user component.
func NewUserDirectory(
	log *zap.SugaredLogger,
	repo repository.UserInterface,
	tx repository.TransactorInterface,
	timeout time.Duration,
) *UserDirectory {
	return &UserDirectory{log: log, repo: repo, tx: tx, timeout: timeout}
}

// Users lists all users with their teams and tasks.
func (d *UserDirectory) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	return d.repo.ListUsers(ctx)
}

// User returns a user by id.
func (d *UserDirectory) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	return d.repo.GetUser(ctx, id)
}

// UserByUserName returns a user by username, or nil when there is none.
func (d *UserDirectory) UserByUserName(ctx context.Context, userName string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if userName == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	user, err := d.repo.GetUserByUsername(ctx, userName)
	if errors.Is(err, entities.ErrUserNotFound) {
		return nil, nil
	}
	return user, err
}

// CreateUser persists a new user. A taken username yields ErrConflict.
func (d *UserDirectory) CreateUser(ctx context.Context, params entities.CreateUserParams) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if params.Username == "" {
		d.log.Errorw("failed to create user: missing username")
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	user, err := d.repo.SaveUser(ctx, entities.User{Username: params.Username})
	if err != nil {
		return nil, err
	}
	d.log.Infow("user created", "id", user.ID, "username", user.Username)
	return user, nil
}

// UpdateUser overlays the patch on the user found by username.
func (d *UserDirectory) UpdateUser(ctx context.Context, userName string, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	if patch.Username != nil && *patch.Username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", entities.ErrInvalidArgument)
	}

	var updated *entities.User
	err := d.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := d.repo.FindUserByUsername(ctx, userName)
		if err != nil {
			return err
		}
		updated, err = d.repo.SaveUser(ctx, current.Merge(patch))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user found by username and returns its last state.
func (d *UserDirectory) DeleteUser(ctx context.Context, userName string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()

	var deleted *entities.User
	err := d.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := d.repo.FindUserByUsername(ctx, userName)
		if err != nil {
			return err
		}
		if err := d.repo.DeleteUser(ctx, current.ID); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.log.Infow("user deleted", "id", deleted.ID, "username", deleted.Username)
	return deleted, nil
}
