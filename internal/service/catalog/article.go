package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// RegisterArticle stores an article under its normalized source id and links
// it to the given topics. A source id that is already registered yields
// domain.ErrAlreadyExists.
func (s *Service) RegisterArticle(ctx context.Context, input RegisterArticleInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sourceID := domain.NormalizeSourceID(input.SourceID)

	var article *domain.Article
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		article, err = s.dir.CreateArticle(txCtx, domain.Article{
			SourceID: sourceID,
			TopicIDs: input.TopicIDs,
		})
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}

		topics := make([]string, len(article.TopicIDs))
		for i, id := range article.TopicIDs {
			topics[i] = id.String()
		}
		if err := s.logAudit(txCtx, userID, domain.EntityTypeArticle, article.ID, domain.AuditActionCreate, map[string]any{
			"source_id": map[string]any{"new": sourceID},
			"topic_ids": map[string]any{"new": topics},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article registered",
		slog.String("user_id", userID.String()),
		slog.String("article_id", article.ID.String()),
		slog.String("source_id", sourceID),
		slog.Int("topics", len(article.TopicIDs)),
	)
	return article, nil
}

// LinkArticleTopic associates an article with a topic. Linking a pair that
// is already linked succeeds without an audit entry.
func (s *Service) LinkArticleTopic(ctx context.Context, input LinkArticleInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	linked := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		article, err := s.dir.GetArticle(txCtx, input.ArticleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if article.HasTopic(input.TopicID) {
			return nil
		}
		if err := s.dir.LinkArticleTopic(txCtx, input.ArticleID, input.TopicID); err != nil {
			return fmt.Errorf("link article topic: %w", err)
		}
		linked = true

		return s.logAudit(txCtx, userID, domain.EntityTypeArticle, input.ArticleID, domain.AuditActionUpdate, map[string]any{
			"topic_linked": map[string]any{"new": input.TopicID.String()},
		})
	})
	if err != nil {
		return err
	}

	if linked {
		s.log.InfoContext(ctx, "article linked",
			slog.String("user_id", userID.String()),
			slog.String("article_id", input.ArticleID.String()),
			slog.String("topic_id", input.TopicID.String()),
		)
	}
	return nil
}

// GetArticle returns an article by id.
func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}
	return s.dir.GetArticle(ctx, id)
}
