package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// GetByID returns a copy of a state record.
// Returns domain.ErrNotFound if the record does not exist.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := txFromCtx(ctx)
	row, ok := s.lookupRecord(tx, id)
	if !ok {
		return nil, fmt.Errorf("state_record %s: %w", id, domain.ErrNotFound)
	}
	tx.observe(s, row.rec.Pair())

	rec := cloneRecord(row.rec)
	return &rec, nil
}

// FindCurrent returns the current active record of the pair, or nil when the
// pair has no current state.
func (s *Store) FindCurrent(ctx context.Context, articleID, topicID uuid.UUID) (*domain.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair := domain.Pair{ArticleID: articleID, TopicID: topicID}
	tx := txFromCtx(ctx)
	tx.observe(s, pair)

	for _, row := range s.pairRows(tx, pair) {
		if row.rec.Current && row.rec.Active {
			rec := cloneRecord(row.rec)
			return &rec, nil
		}
	}
	return nil, nil
}

// FindHistory returns every record of the pair, voided ones included, newest first.
func (s *Store) FindHistory(ctx context.Context, articleID, topicID uuid.UUID) ([]domain.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair := domain.Pair{ArticleID: articleID, TopicID: topicID}
	tx := txFromCtx(ctx)
	tx.observe(s, pair)

	return toRecords(s.pairRows(tx, pair)), nil
}

// ListByArticle returns the records of an article across all topics, newest first.
func (s *Store) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.filterRows(txFromCtx(ctx), func(r domain.StateRecord) bool {
		return r.ArticleID == articleID
	})
	return toRecords(rows), nil
}

// ListCurrentByBoard returns the current active records attributed to a board,
// optionally narrowed to one state text id, oldest first.
func (s *Store) ListCurrentByBoard(ctx context.Context, boardID uuid.UUID, stateTextID string) ([]domain.StateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.filterRows(txFromCtx(ctx), func(r domain.StateRecord) bool {
		return r.BoardID == boardID && r.Current && r.Active &&
			(stateTextID == "" || r.Value.TextID == stateTextID)
	})
	records := toRecords(rows)
	// toRecords sorts newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LockPair marks the pair as read by the transaction in ctx, so a concurrent
// commit touching the pair makes this transaction fail with domain.ErrConflict.
func (s *Store) LockPair(ctx context.Context, articleID, topicID uuid.UUID) error {
	tx := txFromCtx(ctx)
	if tx == nil {
		return fmt.Errorf("lock pair %s/%s: no transaction in context", articleID, topicID)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	tx.observe(s, domain.Pair{ArticleID: articleID, TopicID: topicID})
	return nil
}

// Save creates rec when its ID is uuid.Nil, otherwise updates its Active and
// Current flags. Saving a current record demotes every other current record
// of the pair in the same transaction.
func (s *Store) Save(ctx context.Context, rec *domain.StateRecord) (*domain.StateRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("save state_record: %w", domain.ErrValidation)
	}
	if rec.Current && !rec.Active {
		return nil, fmt.Errorf("state_record %s: current record must be active: %w", rec.ID, domain.ErrValidation)
	}

	var saved domain.StateRecord
	err := s.RunInTx(ctx, func(ctx context.Context) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		tx := txFromCtx(ctx)
		pair := rec.Pair()
		tx.observe(s, pair)

		var row recordRow
		if rec.ID == uuid.Nil {
			if _, ok := s.lookupArticleTopic(tx, pair); !ok {
				return fmt.Errorf("state_record pair %s: %w", pair, domain.ErrNotFound)
			}
			row = recordRow{rec: cloneRecord(*rec), seq: s.seq.Add(1)}
			row.rec.ID = uuid.New()
			if row.rec.EnteredAt.IsZero() {
				row.rec.EnteredAt = s.timestamp()
			}
			for i := range row.rec.Comments {
				row.rec.Comments[i] = newComment(row.rec.Comments[i], row.rec.UserID, row.rec.EnteredAt)
			}
		} else {
			existing, ok := s.lookupRecord(tx, rec.ID)
			if !ok {
				return fmt.Errorf("state_record %s: %w", rec.ID, domain.ErrNotFound)
			}
			if existing.rec.Pair() != pair {
				return fmt.Errorf("state_record %s: pair is immutable: %w", rec.ID, domain.ErrValidation)
			}
			row = existing
			row.rec = cloneRecord(existing.rec)
			row.rec.Active = rec.Active
			row.rec.Current = rec.Current
		}

		if row.rec.Current {
			for _, other := range s.pairRows(tx, pair) {
				if other.rec.ID != row.rec.ID && other.rec.Current {
					other.rec = cloneRecord(other.rec)
					other.rec.Current = false
					tx.records[other.rec.ID] = other
				}
			}
		}

		tx.records[row.rec.ID] = row
		saved = cloneRecord(row.rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// AddComment appends a comment to a state record.
func (s *Store) AddComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error) {
	var saved domain.Comment
	err := s.updateRecord(ctx, stateID, func(rec *domain.StateRecord) error {
		saved = newComment(c, c.UserID, s.timestamp())
		rec.Comments = append(rec.Comments, saved)
		return nil
	})
	return saved, err
}

// UpdateComment rewrites the body of a comment and stamps the modifier.
// Returns domain.ErrNotFound if the comment does not belong to stateID.
func (s *Store) UpdateComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error) {
	var saved domain.Comment
	err := s.updateRecord(ctx, stateID, func(rec *domain.StateRecord) error {
		for i := range rec.Comments {
			if rec.Comments[i].ID != c.ID {
				continue
			}
			modifiedAt := s.timestamp()
			if c.ModifiedAt != nil {
				modifiedAt = *c.ModifiedAt
			}
			rec.Comments[i].Body = c.Body
			rec.Comments[i].ModifiedBy = c.ModifiedBy
			rec.Comments[i].ModifiedAt = &modifiedAt
			saved = rec.Comments[i]
			return nil
		}
		return fmt.Errorf("state_comment %s: %w", c.ID, domain.ErrNotFound)
	})
	return saved, err
}

func (s *Store) updateRecord(ctx context.Context, id uuid.UUID, fn func(*domain.StateRecord) error) error {
	return s.RunInTx(ctx, func(ctx context.Context) error {
		s.mu.RLock()
		defer s.mu.RUnlock()

		tx := txFromCtx(ctx)
		row, ok := s.lookupRecord(tx, id)
		if !ok {
			return fmt.Errorf("state_record %s: %w", id, domain.ErrNotFound)
		}
		tx.observe(s, row.rec.Pair())

		row.rec = cloneRecord(row.rec)
		if err := fn(&row.rec); err != nil {
			return err
		}
		tx.records[id] = row
		return nil
	})
}

// ---------------------------------------------------------------------------
// Read helpers (caller holds s.mu)
// ---------------------------------------------------------------------------

func (s *Store) lookupRecord(tx *txState, id uuid.UUID) (recordRow, bool) {
	if tx != nil {
		if row, ok := tx.records[id]; ok {
			return row, true
		}
	}
	row, ok := s.records[id]
	return row, ok
}

// filterRows returns matching records as seen by tx, newest first.
func (s *Store) filterRows(tx *txState, keep func(domain.StateRecord) bool) []recordRow {
	var rows []recordRow
	for id, row := range s.records {
		if tx != nil {
			if staged, ok := tx.records[id]; ok {
				row = staged
			}
		}
		if keep(row.rec) {
			rows = append(rows, row)
		}
	}
	if tx != nil {
		for id, row := range tx.records {
			if _, committed := s.records[id]; !committed && keep(row.rec) {
				rows = append(rows, row)
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].rec.EnteredAt.Equal(rows[j].rec.EnteredAt) {
			return rows[i].rec.EnteredAt.After(rows[j].rec.EnteredAt)
		}
		return rows[i].seq > rows[j].seq
	})
	return rows
}

func (s *Store) pairRows(tx *txState, pair domain.Pair) []recordRow {
	return s.filterRows(tx, func(r domain.StateRecord) bool { return r.Pair() == pair })
}

func toRecords(rows []recordRow) []domain.StateRecord {
	out := make([]domain.StateRecord, len(rows))
	for i, row := range rows {
		out[i] = cloneRecord(row.rec)
	}
	return out
}

func cloneRecord(r domain.StateRecord) domain.StateRecord {
	r.Comments = append([]domain.Comment(nil), r.Comments...)
	r.Decisions = append([]domain.Decision(nil), r.Decisions...)
	r.DeciderIDs = append([]uuid.UUID(nil), r.DeciderIDs...)
	r.Meetings = append([]domain.Meeting(nil), r.Meetings...)
	return r
}

func newComment(c domain.Comment, userID uuid.UUID, at time.Time) domain.Comment {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.UserID == uuid.Nil {
		c.UserID = userID
	}
	if c.EnteredAt.IsZero() {
		c.EnteredAt = at
	}
	return c
}
