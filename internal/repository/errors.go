package repository

import (
	"errors"

	apperrors "lead-pipeline-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes surfaced through the pgx driver.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver-level failures onto the application taxonomy.
// A foreign-key violation during a commit means a referenced row (stage,
// user) changed concurrently; the caller must re-fetch and retry the whole
// gesture. Anything else from the store stays a StoreError.
func translateError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return apperrors.NewConflictError("referenced row changed concurrently: " + pgErr.ConstraintName)
		case pgUniqueViolation:
			return apperrors.NewConflictError("uniqueness violated: " + pgErr.ConstraintName)
		}
	}
	return apperrors.NewStoreError(op, err)
}
