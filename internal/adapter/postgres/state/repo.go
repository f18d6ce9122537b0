// Package state implements the StateRecord store using PostgreSQL.
// Writers of one article/topic pair are serialized with a transaction-scoped
// advisory lock; the partial unique index state_records_one_current backs
// the single-current rule when a caller skips the lock.
package state

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Repo provides state record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
	now  func() time.Time
}

// New creates a new state record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		tx:   postgres.NewTxManager(pool),
		now:  time.Now,
	}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

var recordColumns = []string{
	"sr.id", "sr.article_id", "sr.topic_id", "sr.board_id", "sr.user_id",
	"sr.entered_at", "sr.active", "sr.current",
	"sv.id", "sv.text_id", "sv.name", "sv.sequence",
}

const demoteCurrentSQL = `
UPDATE state_records SET current = false
WHERE article_id = $1 AND topic_id = $2 AND current AND id <> $3`

const insertRecordSQL = `
INSERT INTO state_records (id, article_id, topic_id, value_id, board_id, user_id, entered_at, active, current)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateFlagsSQL = `
UPDATE state_records SET active = $2, current = $3
WHERE id = $1
RETURNING article_id, topic_id`

const insertDecisionSQL = `
INSERT INTO state_decisions (state_id, position, decision_value_id, meeting_date, discussed)
VALUES ($1, $2, $3, $4, $5)`

const insertDeciderSQL = `
INSERT INTO state_deciders (state_id, position, user_id) VALUES ($1, $2, $3)
ON CONFLICT (state_id, user_id) DO NOTHING`

const insertMeetingSQL = `
INSERT INTO state_meetings (state_id, position, meeting_id) VALUES ($1, $2, $3)
ON CONFLICT (state_id, meeting_id) DO NOTHING`

const insertCommentSQL = `
INSERT INTO state_comments (id, state_id, body, user_id, entered_at, modified_by, modified_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, body, user_id, entered_at, modified_by, modified_at`

const updateCommentSQL = `
UPDATE state_comments SET body = $3, modified_by = $4, modified_at = $5
WHERE id = $1 AND state_id = $2
RETURNING id, body, user_id, entered_at, modified_by, modified_at`

const commentsByStateIDsSQL = `
SELECT state_id, id, body, user_id, entered_at, modified_by, modified_at
FROM state_comments
WHERE state_id = ANY($1::uuid[])
ORDER BY state_id, seq`

const decisionsByStateIDsSQL = `
SELECT sd.state_id, dv.id, dv.name, sd.meeting_date, sd.discussed
FROM state_decisions sd
JOIN decision_values dv ON dv.id = sd.decision_value_id
WHERE sd.state_id = ANY($1::uuid[])
ORDER BY sd.state_id, sd.position`

const decidersByStateIDsSQL = `
SELECT state_id, user_id
FROM state_deciders
WHERE state_id = ANY($1::uuid[])
ORDER BY state_id, position`

const meetingsByStateIDsSQL = `
SELECT sm.state_id, m.id, m.name, m.meeting_date
FROM state_meetings sm
JOIN meetings m ON m.id = sm.meeting_id
WHERE sm.state_id = ANY($1::uuid[])
ORDER BY sm.state_id, sm.position`

func selectRecords() sq.SelectBuilder {
	return postgres.Builder().
		Select(recordColumns...).
		From("state_records sr").
		Join("state_values sv ON sv.id = sr.value_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a state record with its comments, decisions, deciders and meetings.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StateRecord, error) {
	records, err := r.query(ctx, selectRecords().Where("sr.id = ?", id))
	if err != nil {
		return nil, postgres.MapError(err, "state_record", id)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("state_record %s: %w", id, domain.ErrNotFound)
	}
	return &records[0], nil
}

// FindCurrent returns the current active record of the pair, or nil when the
// pair has no current state.
func (r *Repo) FindCurrent(ctx context.Context, articleID, topicID uuid.UUID) (*domain.StateRecord, error) {
	records, err := r.query(ctx, selectRecords().
		Where("sr.article_id = ? AND sr.topic_id = ?", articleID, topicID).
		Where("sr.current AND sr.active"))
	if err != nil {
		return nil, postgres.MapError(err, "state_record", domain.Pair{ArticleID: articleID, TopicID: topicID})
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// FindHistory returns every record of the pair, voided ones included, newest first.
func (r *Repo) FindHistory(ctx context.Context, articleID, topicID uuid.UUID) ([]domain.StateRecord, error) {
	records, err := r.query(ctx, selectRecords().
		Where("sr.article_id = ? AND sr.topic_id = ?", articleID, topicID).
		OrderBy("sr.entered_at DESC", "sr.seq DESC"))
	if err != nil {
		return nil, postgres.MapError(err, "state_record", domain.Pair{ArticleID: articleID, TopicID: topicID})
	}
	return records, nil
}

// ListByArticle returns the records of an article across all topics, newest first.
func (r *Repo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.StateRecord, error) {
	records, err := r.query(ctx, selectRecords().
		Where("sr.article_id = ?", articleID).
		OrderBy("sr.entered_at DESC", "sr.seq DESC"))
	if err != nil {
		return nil, postgres.MapError(err, "article", articleID)
	}
	return records, nil
}

// ListCurrentByBoard returns the current active records attributed to a board,
// optionally narrowed to one state text id, oldest first.
func (r *Repo) ListCurrentByBoard(ctx context.Context, boardID uuid.UUID, stateTextID string) ([]domain.StateRecord, error) {
	b := selectRecords().
		Where("sr.board_id = ?", boardID).
		Where("sr.current AND sr.active").
		OrderBy("sr.entered_at", "sr.seq")
	if stateTextID != "" {
		b = b.Where(sq.Eq{"sv.text_id": stateTextID})
	}

	records, err := r.query(ctx, b)
	if err != nil {
		return nil, postgres.MapError(err, "board", boardID)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// LockPair takes a transaction-scoped advisory lock on the pair. It must be
// called inside RunInTx; the lock is released on commit or rollback.
func (r *Repo) LockPair(ctx context.Context, articleID, topicID uuid.UUID) error {
	pair := domain.Pair{ArticleID: articleID, TopicID: topicID}
	if err := postgres.LockKey(ctx, "state_records:"+pair.String()); err != nil {
		return fmt.Errorf("lock pair %s: %w", pair, err)
	}
	return nil
}

// Save creates rec when its ID is uuid.Nil, otherwise updates its Active and
// Current flags. Saving a current record demotes every other current record
// of the pair in the same transaction. Without a transaction in ctx Save
// opens its own.
func (r *Repo) Save(ctx context.Context, rec *domain.StateRecord) (*domain.StateRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("save state_record: %w", domain.ErrValidation)
	}

	var saved *domain.StateRecord
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if rec.ID == uuid.Nil {
			saved, err = r.create(ctx, *rec)
		} else {
			saved, err = r.update(ctx, *rec)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *Repo) create(ctx context.Context, rec domain.StateRecord) (*domain.StateRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec.ID = uuid.New()
	if rec.EnteredAt.IsZero() {
		rec.EnteredAt = r.now()
	}
	if rec.Current && !rec.Active {
		return nil, fmt.Errorf("state_record %s: current record must be active: %w", rec.ID, domain.ErrValidation)
	}

	if rec.Current {
		if _, err := q.Exec(ctx, demoteCurrentSQL, rec.ArticleID, rec.TopicID, rec.ID); err != nil {
			return nil, postgres.MapError(err, "state_record", rec.ID)
		}
	}

	_, err := q.Exec(ctx, insertRecordSQL,
		rec.ID, rec.ArticleID, rec.TopicID, rec.Value.ID, rec.BoardID, rec.UserID,
		rec.EnteredAt.UTC(), rec.Active, rec.Current,
	)
	if err != nil {
		return nil, postgres.MapError(err, "state_record", rec.ID)
	}

	batch := &pgx.Batch{}
	for i, d := range rec.Decisions {
		batch.Queue(insertDecisionSQL, rec.ID, i, d.Value.ID, d.MeetingDate, d.Discussed)
	}
	for i, userID := range rec.DeciderIDs {
		batch.Queue(insertDeciderSQL, rec.ID, i, userID)
	}
	for i, m := range rec.Meetings {
		batch.Queue(insertMeetingSQL, rec.ID, i, m.ID)
	}
	for _, c := range rec.Comments {
		c = newComment(c, rec.UserID, rec.EnteredAt)
		batch.Queue(insertCommentSQL, c.ID, rec.ID, c.Body, c.UserID, c.EnteredAt, c.ModifiedBy, c.ModifiedAt)
	}
	if batch.Len() > 0 {
		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return nil, postgres.MapError(err, "state_record", rec.ID)
		}
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *Repo) update(ctx context.Context, rec domain.StateRecord) (*domain.StateRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if rec.Current && !rec.Active {
		return nil, fmt.Errorf("state_record %s: current record must be active: %w", rec.ID, domain.ErrValidation)
	}

	if rec.Current {
		if _, err := q.Exec(ctx, demoteCurrentSQL, rec.ArticleID, rec.TopicID, rec.ID); err != nil {
			return nil, postgres.MapError(err, "state_record", rec.ID)
		}
	}

	var articleID, topicID uuid.UUID
	if err := q.QueryRow(ctx, updateFlagsSQL, rec.ID, rec.Active, rec.Current).Scan(&articleID, &topicID); err != nil {
		return nil, postgres.MapError(err, "state_record", rec.ID)
	}
	if articleID != rec.ArticleID || topicID != rec.TopicID {
		return nil, fmt.Errorf("state_record %s: pair is immutable: %w", rec.ID, domain.ErrValidation)
	}

	return r.GetByID(ctx, rec.ID)
}

// AddComment appends a comment to a state record.
func (r *Repo) AddComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error) {
	c = newComment(c, c.UserID, r.now())

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, insertCommentSQL,
		c.ID, stateID, c.Body, c.UserID, c.EnteredAt, c.ModifiedBy, c.ModifiedAt)
	saved, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "state_record", stateID)
	}
	return saved, nil
}

// UpdateComment rewrites the body of a comment and stamps the modifier.
// Returns domain.ErrNotFound if the comment does not belong to stateID.
func (r *Repo) UpdateComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error) {
	if c.ModifiedAt == nil {
		now := r.now().UTC()
		c.ModifiedAt = &now
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateCommentSQL,
		c.ID, stateID, c.Body, c.ModifiedBy, c.ModifiedAt)
	saved, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "state_comment", c.ID)
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.StateRecord, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	if err := loadChildren(ctx, q, records); err != nil {
		return nil, err
	}
	return records, nil
}

// loadChildren fills the collections of records with one batch round trip.
func loadChildren(ctx context.Context, q postgres.Querier, records []domain.StateRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(records))
	index := make(map[uuid.UUID]*domain.StateRecord, len(records))
	for i := range records {
		ids[i] = records[i].ID
		index[records[i].ID] = &records[i]
	}

	batch := &pgx.Batch{}
	batch.Queue(commentsByStateIDsSQL, ids)
	batch.Queue(decisionsByStateIDsSQL, ids)
	batch.Queue(decidersByStateIDsSQL, ids)
	batch.Queue(meetingsByStateIDsSQL, ids)

	br := q.SendBatch(ctx, batch)
	if err := readChildren(br, index); err != nil {
		_ = br.Close()
		return err
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("load children: %w", err)
	}
	return nil
}

// readChildren consumes the four result sets queued by loadChildren, in order.
func readChildren(br pgx.BatchResults, index map[uuid.UUID]*domain.StateRecord) error {
	// comments
	rows, err := br.Query()
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}
	err = forEachRow(rows, func(row pgx.Rows) error {
		var stateID uuid.UUID
		var c domain.Comment
		if err := row.Scan(&stateID, &c.ID, &c.Body, &c.UserID, &c.EnteredAt, &c.ModifiedBy, &c.ModifiedAt); err != nil {
			return err
		}
		rec := index[stateID]
		rec.Comments = append(rec.Comments, c)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load comments: %w", err)
	}

	// decisions
	rows, err = br.Query()
	if err != nil {
		return fmt.Errorf("load decisions: %w", err)
	}
	err = forEachRow(rows, func(row pgx.Rows) error {
		var stateID uuid.UUID
		var d domain.Decision
		if err := row.Scan(&stateID, &d.Value.ID, &d.Value.Name, &d.MeetingDate, &d.Discussed); err != nil {
			return err
		}
		rec := index[stateID]
		rec.Decisions = append(rec.Decisions, d)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load decisions: %w", err)
	}

	// deciders
	rows, err = br.Query()
	if err != nil {
		return fmt.Errorf("load deciders: %w", err)
	}
	err = forEachRow(rows, func(row pgx.Rows) error {
		var stateID, userID uuid.UUID
		if err := row.Scan(&stateID, &userID); err != nil {
			return err
		}
		rec := index[stateID]
		rec.DeciderIDs = append(rec.DeciderIDs, userID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load deciders: %w", err)
	}

	// meetings
	rows, err = br.Query()
	if err != nil {
		return fmt.Errorf("load meetings: %w", err)
	}
	err = forEachRow(rows, func(row pgx.Rows) error {
		var stateID uuid.UUID
		var m domain.Meeting
		if err := row.Scan(&stateID, &m.ID, &m.Name, &m.Date); err != nil {
			return err
		}
		rec := index[stateID]
		rec.Meetings = append(rec.Meetings, m)
		return nil
	})
	if err != nil {
		return fmt.Errorf("load meetings: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanRecords(rows pgx.Rows) ([]domain.StateRecord, error) {
	records := []domain.StateRecord{}
	err := forEachRow(rows, func(row pgx.Rows) error {
		var rec domain.StateRecord
		if err := row.Scan(
			&rec.ID, &rec.ArticleID, &rec.TopicID, &rec.BoardID, &rec.UserID,
			&rec.EnteredAt, &rec.Active, &rec.Current,
			&rec.Value.ID, &rec.Value.TextID, &rec.Value.Name, &rec.Value.Sequence,
		); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.EnteredAt, &c.ModifiedBy, &c.ModifiedAt)
	return c, err
}

func forEachRow(rows pgx.Rows, fn func(pgx.Rows) error) error {
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// newComment fills the identity fields a new comment needs.
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
	c.EnteredAt = c.EnteredAt.UTC()
	return c
}
