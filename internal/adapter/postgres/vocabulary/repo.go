// Package vocabulary implements read access to the seeded state and decision
// vocabularies using PostgreSQL.
package vocabulary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Repo provides vocabulary lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetStateValue returns the state value with the given stable text id.
// Returns domain.ErrNotFound for an unknown text id.
func (r *Repo) GetStateValue(ctx context.Context, textID string) (*domain.StateValue, error) {
	sql, args, err := postgres.Builder().
		Select("id", "text_id", "name", "sequence").
		From("state_values").
		Where(sq.Eq{"text_id": textID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var v domain.StateValue
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).
		Scan(&v.ID, &v.TextID, &v.Name, &v.Sequence)
	if err != nil {
		return nil, postgres.MapError(err, "state_value", textID)
	}
	return &v, nil
}

// ListStateValues returns the whole state vocabulary ordered by sequence.
func (r *Repo) ListStateValues(ctx context.Context) ([]domain.StateValue, error) {
	rows, err := postgres.QueryBuilt(ctx, r.pool, postgres.Builder().
		Select("id", "text_id", "name", "sequence").
		From("state_values").
		OrderBy("sequence", "text_id"))
	if err != nil {
		return nil, fmt.Errorf("list state values: %w", err)
	}
	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StateValue, error) {
		var v domain.StateValue
		err := row.Scan(&v.ID, &v.TextID, &v.Name, &v.Sequence)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("list state values: %w", err)
	}
	return values, nil
}

// GetDecisionValuesByIDs returns the decision values that exist among ids.
func (r *Repo) GetDecisionValuesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.DecisionValue, error) {
	if len(ids) == 0 {
		return []domain.DecisionValue{}, nil
	}
	return r.listDecisionValues(ctx, postgres.Builder().
		Select("id", "name").
		From("decision_values").
		Where(sq.Eq{"id": ids}))
}

// ListDecisionValues returns the decision vocabulary ordered by name.
func (r *Repo) ListDecisionValues(ctx context.Context) ([]domain.DecisionValue, error) {
	return r.listDecisionValues(ctx, postgres.Builder().
		Select("id", "name").
		From("decision_values").
		OrderBy("name"))
}

func (r *Repo) listDecisionValues(ctx context.Context, b sq.SelectBuilder) ([]domain.DecisionValue, error) {
	rows, err := postgres.QueryBuilt(ctx, r.pool, b)
	if err != nil {
		return nil, fmt.Errorf("list decision values: %w", err)
	}
	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DecisionValue, error) {
		var v domain.DecisionValue
		err := row.Scan(&v.ID, &v.Name)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("list decision values: %w", err)
	}
	return values, nil
}
