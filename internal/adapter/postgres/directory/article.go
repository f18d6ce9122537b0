package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

const getArticleSQL = `
SELECT a.id, a.source_id, a.created_at,
       coalesce(array_agg(at.topic_id ORDER BY at.created_at, at.topic_id)
                FILTER (WHERE at.topic_id IS NOT NULL), '{}')
FROM articles a
LEFT JOIN article_topics at ON at.article_id = a.id
WHERE %s
GROUP BY a.id`

const linkArticleTopicSQL = `
INSERT INTO article_topics (article_id, topic_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (article_id, topic_id) DO NOTHING`

// CreateArticle inserts an article and links its topics.
// Returns domain.ErrAlreadyExists on a duplicate source id and
// domain.ErrNotFound if a topic does not exist.
func (r *Repo) CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.timestamp()

	_, err := r.exec(ctx, postgres.Builder().
		Insert("articles").
		Columns("id", "source_id", "created_at").
		Values(a.ID, a.SourceID, a.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}

	for _, topicID := range a.TopicIDs {
		if err := r.LinkArticleTopic(ctx, a.ID, topicID); err != nil {
			return nil, err
		}
	}
	return r.GetArticle(ctx, a.ID)
}

// LinkArticleTopic associates an article with a topic. Linking twice is a no-op.
func (r *Repo) LinkArticleTopic(ctx context.Context, articleID, topicID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, linkArticleTopicSQL, articleID, topicID, r.timestamp()); err != nil {
		return postgres.MapError(err, "article_topic", domain.Pair{ArticleID: articleID, TopicID: topicID})
	}
	return nil
}

// GetArticle returns an article with its topic ids in link order.
func (r *Repo) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return r.getArticle(ctx, "a.id = $1", id)
}

// GetArticleBySourceID returns the article registered under sourceID.
func (r *Repo) GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error) {
	return r.getArticle(ctx, "a.source_id = $1", sourceID)
}

func (r *Repo) getArticle(ctx context.Context, where string, arg any) (*domain.Article, error) {
	var a domain.Article
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, fmt.Sprintf(getArticleSQL, where), arg).
		Scan(&a.ID, &a.SourceID, &a.CreatedAt, &a.TopicIDs)
	if err != nil {
		return nil, postgres.MapError(err, "article", arg)
	}
	return &a, nil
}

// GetArticlesByIDs returns the articles that exist among ids, in no particular order.
func (r *Repo) GetArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Article, error) {
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).
		Query(ctx, fmt.Sprintf(getArticleSQL, "a.id = ANY($1)"), ids)
	if err != nil {
		return nil, fmt.Errorf("get articles by ids: %w", err)
	}
	articles, err := postgres.Collect(rows, func(row pgx.Rows) (domain.Article, error) {
		var a domain.Article
		err := row.Scan(&a.ID, &a.SourceID, &a.CreatedAt, &a.TopicIDs)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("get articles by ids: %w", err)
	}
	return articles, nil
}
