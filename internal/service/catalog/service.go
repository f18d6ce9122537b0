// Package catalog manages the organizational entities state records refer
// to: boards, topics, articles and meetings.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

type directory interface {
	CreateBoard(ctx context.Context, b domain.Board) (*domain.Board, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)

	CreateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context, boardID *uuid.UUID) ([]domain.Topic, error)

	CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error)
	LinkArticleTopic(ctx context.Context, articleID, topicID uuid.UUID) error

	CreateMeeting(ctx context.Context, m domain.Meeting) (*domain.Meeting, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	maxNameLength     = 255
	maxSourceIDLength = 32
	maxTopicsPerLink  = 50
)

// Service provides board, topic, article and meeting management.
type Service struct {
	dir   directory
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, dir directory, audit auditLogger, tx txManager) *Service {
	return &Service{
		dir:   dir,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "catalog"),
	}
}

// ListBoards returns every board ordered by name.
func (s *Service) ListBoards(ctx context.Context) ([]domain.Board, error) {
	return s.dir.ListBoards(ctx)
}

// ListTopics returns topics ordered by name, optionally limited to one board.
func (s *Service) ListTopics(ctx context.Context, boardID *uuid.UUID) ([]domain.Topic, error) {
	if boardID != nil && *boardID == uuid.Nil {
		return nil, domain.NewValidationError("board_id", "invalid")
	}
	return s.dir.ListTopics(ctx, boardID)
}

// GetArticleBySourceID looks an article up by its normalized source id.
func (s *Service) GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error) {
	id := domain.NormalizeSourceID(sourceID)
	if id == "" {
		return nil, domain.NewValidationError("source_id", "required")
	}
	return s.dir.GetArticleBySourceID(ctx, id)
}

func (s *Service) logAudit(ctx context.Context, userID uuid.UUID, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: entity,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	})
}
