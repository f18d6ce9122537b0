// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

var auditColumns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert("audit_log").
		Columns(auditColumns...).
		Values(record.ID, record.UserID, string(record.EntityType), record.EntityID,
			string(record.Action), changesJSON, record.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	saved, err := scanAuditRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return saved, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the review and catalog services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QueryBuilt(ctx, r.pool, postgres.Builder().
		Select(auditColumns...).
		From("audit_log").
		Where(sq.Eq{"entity_type": string(entityType)}).
		Where("entity_id = ?", entityID).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		return scanAuditRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	out := auditColumns[0]
	for _, c := range auditColumns[1:] {
		out += ", " + c
	}
	return out
}

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		record     domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&record.ID, &record.UserID, &entityType, &record.EntityID, &action, &changes, &record.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	record.EntityType = domain.EntityType(entityType)
	record.Action = domain.AuditAction(action)

	record.Changes = map[string]any{}
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &record.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", record.ID, err)
		}
	}
	return record, nil
}
