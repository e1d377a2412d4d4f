package domain

import (
	"context"
	"fmt"
	"time"

	"og-team-ms/internal/entities"
	"og-team-ms/internal/repository"

	"go.uber.org/zap"
)

// CommentLog owns comments left on tasks.
type CommentLog struct {
	log     *zap.SugaredLogger
	repo    repository.CommentInterface
	tx      repository.TransactorInterface
	users   userResolver
	tasks   taskResolver
	timeout time.Duration
}

// NewCommentLog constructs the comment component.
func NewCommentLog(
	log *zap.SugaredLogger,
	repo repository.CommentInterface,
	tx repository.TransactorInterface,
	users userResolver,
	tasks taskResolver,
	timeout time.Duration,
) *CommentLog {
	return &CommentLog{log: log, repo: repo, tx: tx, users: users, tasks: tasks, timeout: timeout}
}

// Comments lists comments with their authors.
func (l *CommentLog) Comments(ctx context.Context) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	return l.repo.ListComments(ctx)
}

// Comment returns comment by id.
func (l *CommentLog) Comment(ctx context.Context, id int64) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	return l.repo.GetComment(ctx, id)
}

// CreateComment attaches a comment by an existing user to an existing task.
func (l *CommentLog) CreateComment(ctx context.Context, params entities.CreateCommentParams) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	if params.Content == "" {
		l.log.Errorw("failed to create comment: missing content")
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}
	if params.UserName == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	author, err := requireUser(ctx, l.users, params.UserName)
	if err != nil {
		return nil, err
	}
	task, err := l.tasks.Task(ctx, params.TaskID)
	if err != nil {
		return nil, err
	}

	comment, err := l.repo.SaveComment(ctx, entities.Comment{
		Content: params.Content,
		UserID:  author.ID,
		TaskID:  task.ID,
	})
	if err != nil {
		return nil, err
	}
	comment.User = author
	comment.Task = task
	l.log.Infow("comment created", "id", comment.ID, "task_id", task.ID, "username", author.Username)
	return comment, nil
}

// UpdateComment overlays content, author and task. Supplied references must resolve.
func (l *CommentLog) UpdateComment(ctx context.Context, id int64, params entities.UpdateCommentParams) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	if params.Content != nil && *params.Content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", entities.ErrInvalidArgument)
	}

	var updated *entities.Comment
	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := l.repo.FindComment(ctx, id)
		if err != nil {
			return err
		}

		patch := entities.CommentPatch{Content: params.Content}
		if params.UserName != nil {
			if patch.User, err = requireUser(ctx, l.users, *params.UserName); err != nil {
				return err
			}
		}
		if params.TaskID != nil {
			if patch.Task, err = l.tasks.Task(ctx, *params.TaskID); err != nil {
				return err
			}
		}

		merged := current.Merge(patch)
		updated, err = l.repo.SaveComment(ctx, merged)
		if err != nil {
			return err
		}
		updated.User = merged.User
		updated.Task = merged.Task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteComment removes a comment and returns its last state.
func (l *CommentLog) DeleteComment(ctx context.Context, id int64) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	var deleted *entities.Comment
	err := l.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := l.repo.FindComment(ctx, id)
		if err != nil {
			return err
		}
		if err := l.repo.DeleteComment(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.log.Infow("comment deleted", "id", deleted.ID, "task_id", deleted.TaskID)
	return deleted, nil
}
