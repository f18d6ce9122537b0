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

var topicColumns = []string{
	"id", "name", "board_id", "default_reviewer_id", "active", "topic_group", "created_at", "updated_at",
}

// CreateTopic inserts a topic. Returns domain.ErrNotFound if the board does
// not exist and domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) CreateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := r.timestamp()
	t.CreatedAt, t.UpdatedAt = now, now

	_, err := r.exec(ctx, postgres.Builder().
		Insert("topics").
		Columns(topicColumns...).
		Values(t.ID, t.Name, t.BoardID, t.DefaultReviewerID, t.Active, t.TopicGroup, t.CreatedAt, t.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	return &t, nil
}

// UpdateTopic overwrites the mutable topic fields.
// Returns domain.ErrNotFound if the topic or its new board does not exist.
func (r *Repo) UpdateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	t.UpdatedAt = r.timestamp()

	n, err := r.exec(ctx, postgres.Builder().
		Update("topics").
		Set("name", t.Name).
		Set("board_id", t.BoardID).
		Set("default_reviewer_id", t.DefaultReviewerID).
		Set("active", t.Active).
		Set("topic_group", t.TopicGroup).
		Set("updated_at", t.UpdatedAt).
		Where("id = ?", t.ID))
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}
	if n == 0 {
		return nil, fmt.Errorf("topic %s: %w", t.ID, domain.ErrNotFound)
	}
	return r.GetTopic(ctx, t.ID)
}

// GetTopic returns a topic by primary key.
func (r *Repo) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	topics, err := r.GetTopicsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return &topics[0], nil
}

// GetTopicsByIDs returns the topics that exist among ids, in no particular order.
func (r *Repo) GetTopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Topic, error) {
	if len(ids) == 0 {
		return []domain.Topic{}, nil
	}
	rows, err := r.query(ctx, postgres.Builder().
		Select(topicColumns...).
		From("topics").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("get topics by ids: %w", err)
	}
	topics, err := postgres.Collect(rows, scanTopic)
	if err != nil {
		return nil, fmt.Errorf("get topics by ids: %w", err)
	}
	return topics, nil
}

// ListTopics returns topics ordered by name, limited to one board when
// boardID is non-nil.
func (r *Repo) ListTopics(ctx context.Context, boardID *uuid.UUID) ([]domain.Topic, error) {
	b := postgres.Builder().
		Select(topicColumns...).
		From("topics").
		OrderBy("name")
	if boardID != nil {
		b = b.Where("board_id = ?", *boardID)
	}

	rows, err := r.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	topics, err := postgres.Collect(rows, scanTopic)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func scanTopic(row pgx.Rows) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.Name, &t.BoardID, &t.DefaultReviewerID, &t.Active, &t.TopicGroup, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
