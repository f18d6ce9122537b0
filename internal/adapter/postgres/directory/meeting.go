package directory

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// CreateMeeting inserts a meeting. Only the calendar day of Date is kept.
func (r *Repo) CreateMeeting(ctx context.Context, m domain.Meeting) (*domain.Meeting, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	var saved domain.Meeting
	sql, args, err := postgres.Builder().
		Insert("meetings").
		Columns("id", "name", "meeting_date").
		Values(m.ID, m.Name, m.Date.Format("2006-01-02")).
		Suffix("RETURNING id, name, meeting_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&saved.ID, &saved.Name, &saved.Date)
	if err != nil {
		return nil, postgres.MapError(err, "meeting", m.ID)
	}
	return &saved, nil
}

// GetMeetingsByIDs returns the meetings that exist among ids, ordered as ids.
func (r *Repo) GetMeetingsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meeting, error) {
	if len(ids) == 0 {
		return []domain.Meeting{}, nil
	}
	rows, err := r.query(ctx, postgres.Builder().
		Select("id", "name", "meeting_date").
		From("meetings").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("get meetings by ids: %w", err)
	}
	found, err := postgres.Collect(rows, func(row pgx.Rows) (domain.Meeting, error) {
		var m domain.Meeting
		err := row.Scan(&m.ID, &m.Name, &m.Date)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("get meetings by ids: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Meeting, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}
	ordered := make([]domain.Meeting, 0, len(found))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
			delete(byID, id)
		}
	}
	return ordered, nil
}
