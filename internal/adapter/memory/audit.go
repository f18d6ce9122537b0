package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Create appends an audit record to the transaction in ctx, or commits it
// directly when there is none.
func (s *Store) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.timestamp()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	err := s.write(ctx, func(tx *txState) error {
		tx.audit = append(tx.audit, record)
		return nil
	})
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return record, nil
}

// Log creates an audit record without returning it.
func (s *Store) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := s.Create(ctx, record)
	return err
}

// GetByEntity returns the committed history of one entity, newest first.
func (s *Store) GetByEntity(_ context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.AuditRecord
	for i := len(s.audit) - 1; i >= 0; i-- {
		rec := s.audit[i]
		if rec.EntityType == entityType && rec.EntityID != nil && *rec.EntityID == entityID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
