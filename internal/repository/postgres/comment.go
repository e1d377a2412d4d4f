package postgres

import (
	"context"
	"fmt"

	"og-team-ms/internal/entities"
)

const (
	selectCommentsQuery    = "SELECT " + commentColumns + " FROM comments c ORDER BY c.id"
	selectCommentByIDQuery = "SELECT " + commentColumns + " FROM comments c WHERE c.id=$1"
	insertCommentQuery     = "INSERT INTO comments(content, user_id, task_id) VALUES($1, $2, $3) RETURNING id, created_at, updated_at"
	updateCommentQuery     = "UPDATE comments SET content=$2, user_id=$3, task_id=$4, updated_at=now() WHERE id=$1 RETURNING created_at, updated_at"
	deleteCommentQuery     = "DELETE FROM comments WHERE id=$1"
)

// ListComments returns all comments with their author.
func (p *Postgres) ListComments(ctx context.Context) ([]entities.Comment, error) {
	comments, err := queryAll(ctx, p.q(ctx), scanComment, selectCommentsQuery)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if err := p.loadCommentAuthors(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetComment returns a comment by id with its author.
func (p *Postgres) GetComment(ctx context.Context, id int64) (*entities.Comment, error) {
	c, err := queryOne(ctx, p.q(ctx), scanComment, selectCommentByIDQuery, id)
	if err != nil {
		return nil, lookupError("get comment", err, entities.ErrCommentNotFound)
	}
	comments := []entities.Comment{c}
	if err := p.loadCommentAuthors(ctx, comments); err != nil {
		return nil, err
	}
	return &comments[0], nil
}

// FindComment returns the bare comment row.
func (p *Postgres) FindComment(ctx context.Context, id int64) (*entities.Comment, error) {
	c, err := queryOne(ctx, p.q(ctx), scanComment, selectCommentByIDQuery+lockClause(ctx), id)
	if err != nil {
		return nil, lookupError("find comment", err, entities.ErrCommentNotFound)
	}
	return &c, nil
}

// SaveComment inserts a new comment (zero ID) or updates an existing one.
func (p *Postgres) SaveComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	var err error
	if comment.ID == 0 {
		err = p.q(ctx).QueryRow(ctx, insertCommentQuery, comment.Content, comment.UserID, comment.TaskID).
			Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	} else {
		err = p.q(ctx).QueryRow(ctx, updateCommentQuery, comment.ID, comment.Content, comment.UserID, comment.TaskID).
			Scan(&comment.CreatedAt, &comment.UpdatedAt)
	}
	if err != nil {
		p.log.Errorw("failed to save comment", "error", err, "task_id", comment.TaskID)
		return nil, lookupError("save comment", err, entities.ErrCommentNotFound)
	}

	p.log.Infow("comment saved", "comment_id", comment.ID, "task_id", comment.TaskID)
	return &comment, nil
}

// DeleteComment removes the comment row.
func (p *Postgres) DeleteComment(ctx context.Context, id int64) error {
	tag, err := p.q(ctx).Exec(ctx, deleteCommentQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete comment", "error", err, "comment_id", id)
		return storeError("delete comment", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCommentNotFound
	}
	return nil
}

func (p *Postgres) loadCommentAuthors(ctx context.Context, comments []entities.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	users, err := usersByIDs(ctx, p.q(ctx), ids)
	if err != nil {
		return err
	}
	for i := range comments {
		comments[i].User = users[comments[i].UserID]
	}
	return nil
}
