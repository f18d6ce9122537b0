package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// OneCurrentIndex is the partial unique index allowing a single current,
// active state record per article/topic pair.
const OneCurrentIndex = "state_records_one_current"

// MapError translates pgx errors into domain sentinels, prefixed with the
// entity and its identifier (uuid, pair, text id). Errors without a domain
// meaning, context errors included, stay wrapped unchanged.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}
	if target := domainError(err); target != nil {
		return fmt.Errorf("%s %v: %w", entity, id, target)
	}
	return fmt.Errorf("%s %v: %w", entity, id, err)
}

func domainError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		if pgErr.ConstraintName == OneCurrentIndex {
			return domain.ErrConflict
		}
		return domain.ErrAlreadyExists
	case "23503": // foreign_key_violation
		return domain.ErrNotFound
	case "23514": // check_violation
		return domain.ErrValidation
	case "40001", "40P01", "55P03": // serialization_failure, deadlock_detected, lock_not_available
		return domain.ErrConflict
	}
	return nil
}
