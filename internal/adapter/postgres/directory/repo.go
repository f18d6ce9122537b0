// Package directory implements the board, topic, article and meeting
// repository using PostgreSQL. The lifecycle engine reads it to resolve the
// entities a state record refers to; the catalog service writes it.
package directory

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
)

// Repo provides directory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new directory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

func (r *Repo) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	return postgres.ExecBuilt(ctx, r.pool, b)
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) (pgx.Rows, error) {
	return postgres.QueryBuilt(ctx, r.pool, b)
}

func (r *Repo) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}
