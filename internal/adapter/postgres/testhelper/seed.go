package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBoard creates an active board with a random manager.
func SeedBoard(t *testing.T, pool *pgxpool.Pool) domain.Board {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	board := domain.Board{
		ID:        uuid.New(),
		Name:      "Board " + uniqueSuffix(),
		ManagerID: uuid.New(),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO boards (id, name, manager_id, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		board.ID, board.Name, board.ManagerID, board.Active, board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBoard: %v", err)
	}

	return board
}

// SeedTopic creates an active topic owned by boardID.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, boardID uuid.UUID) domain.Topic {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:                uuid.New(),
		Name:              "Topic " + uniqueSuffix(),
		BoardID:           boardID,
		DefaultReviewerID: uuid.New(),
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, name, board_id, default_reviewer_id, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		topic.ID, topic.Name, topic.BoardID, topic.DefaultReviewerID, topic.Active, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedArticle creates an article linked to the given topics.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, topicIDs ...uuid.UUID) domain.Article {
	t.Helper()
	ctx := context.Background()

	article := domain.Article{
		ID:        uuid.New(),
		SourceID:  uniqueSuffix(),
		TopicIDs:  topicIDs,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, source_id, created_at) VALUES ($1, $2, $3)`,
		article.ID, article.SourceID, article.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}

	for _, topicID := range topicIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO article_topics (article_id, topic_id) VALUES ($1, $2)`,
			article.ID, topicID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedArticle link topic: %v", err)
		}
	}

	return article
}

// SeedMeeting creates a meeting on the given day.
func SeedMeeting(t *testing.T, pool *pgxpool.Pool, name string, date time.Time) domain.Meeting {
	t.Helper()

	meeting := domain.Meeting{
		ID:   uuid.New(),
		Name: name,
		Date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meetings (id, name, meeting_date) VALUES ($1, $2, $3)`,
		meeting.ID, meeting.Name, meeting.Date,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeeting: %v", err)
	}

	return meeting
}

// StateValue returns the seeded vocabulary entry with the given text id.
func StateValue(t *testing.T, pool *pgxpool.Pool, textID string) domain.StateValue {
	t.Helper()

	var v domain.StateValue
	err := pool.QueryRow(context.Background(),
		`SELECT id, text_id, name, sequence FROM state_values WHERE text_id = $1`, textID,
	).Scan(&v.ID, &v.TextID, &v.Name, &v.Sequence)
	if err != nil {
		t.Fatalf("testhelper: StateValue %q: %v", textID, err)
	}

	return v
}

// DecisionValue returns the seeded decision vocabulary entry with the given name.
func DecisionValue(t *testing.T, pool *pgxpool.Pool, name string) domain.DecisionValue {
	t.Helper()

	var v domain.DecisionValue
	err := pool.QueryRow(context.Background(),
		`SELECT id, name FROM decision_values WHERE name = $1`, name,
	).Scan(&v.ID, &v.Name)
	if err != nil {
		t.Fatalf("testhelper: DecisionValue %q: %v", name, err)
	}

	return v
}
