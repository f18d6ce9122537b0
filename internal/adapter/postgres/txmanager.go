package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lockKeySQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// TxManager runs units of work in one transaction carried by the context.
// A RunInTx call made with a context that already carries a transaction
// joins it; only the outermost call commits.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption customizes the transactions a TxManager opens.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level. Read Committed is the default;
// writers of one article/topic pair are serialized with LockKey instead.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx executes fn within a transaction. An error from fn rolls back and
// is returned unchanged; a panic rolls back and is re-raised.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if HasTx(ctx) {
		return fn(ctx)
	}

	var fnErr error
	err := pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		fnErr = fn(withTx(ctx, tx))
		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return fmt.Errorf("transaction: %w", MapError(err, "transaction", ""))
	}
}

// LockKey takes a transaction-scoped advisory lock on key, blocking until
// concurrent holders commit or roll back. ctx must carry a transaction.
func LockKey(ctx context.Context, key string) error {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	if !ok {
		return fmt.Errorf("lock %q: no transaction in context", key)
	}
	if _, err := tx.Exec(ctx, lockKeySQL, key); err != nil {
		return MapError(err, "lock", key)
	}
	return nil
}
