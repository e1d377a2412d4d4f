package postgres

import (
	"errors"
	"fmt"

	"og-team-ms/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// storeError maps constraint violations to entities.ErrConflict, keeping the
// server detail as opaque text. Other failures are wrapped with op.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation:
			detail := pgErr.Detail
			if detail == "" {
				detail = pgErr.Message
			}
			return fmt.Errorf("%w: %s", entities.ErrConflict, detail)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// lookupError is storeError with pgx.ErrNoRows mapped to notFound.
func lookupError(op string, err error, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return storeError(op, err)
}
