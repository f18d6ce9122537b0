package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/ebms-backend/internal/adapter/memory"
	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/ebms-backend/internal/adapter/postgres/audit"
	directoryrepo "github.com/heartmarshall/ebms-backend/internal/adapter/postgres/directory"
	staterepo "github.com/heartmarshall/ebms-backend/internal/adapter/postgres/state"
	vocabularyrepo "github.com/heartmarshall/ebms-backend/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/ebms-backend/internal/adapter/redis/events"
	"github.com/heartmarshall/ebms-backend/internal/config"
	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/internal/metrics"
	"github.com/heartmarshall/ebms-backend/internal/service/catalog"
	"github.com/heartmarshall/ebms-backend/internal/service/report"
	"github.com/heartmarshall/ebms-backend/internal/service/review"
)

type stateStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StateRecord, error)
	FindCurrent(ctx context.Context, articleID, topicID uuid.UUID) (*domain.StateRecord, error)
	FindHistory(ctx context.Context, articleID, topicID uuid.UUID) ([]domain.StateRecord, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.StateRecord, error)
	ListCurrentByBoard(ctx context.Context, boardID uuid.UUID, stateTextID string) ([]domain.StateRecord, error)
	LockPair(ctx context.Context, articleID, topicID uuid.UUID) error
	Save(ctx context.Context, rec *domain.StateRecord) (*domain.StateRecord, error)
	AddComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error)
	UpdateComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error)
}

type directoryStore interface {
	CreateBoard(ctx context.Context, b domain.Board) (*domain.Board, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	GetBoardsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	CreateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetTopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Topic, error)
	ListTopics(ctx context.Context, boardID *uuid.UUID) ([]domain.Topic, error)
	CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Article, error)
	GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error)
	LinkArticleTopic(ctx context.Context, articleID, topicID uuid.UUID) error
	CreateMeeting(ctx context.Context, m domain.Meeting) (*domain.Meeting, error)
	GetMeetingsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meeting, error)
}

// Vocabulary lists the controlled vocabularies.
type Vocabulary interface {
	GetStateValue(ctx context.Context, textID string) (*domain.StateValue, error)
	ListStateValues(ctx context.Context) ([]domain.StateValue, error)
	GetDecisionValuesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.DecisionValue, error)
	ListDecisionValues(ctx context.Context) ([]domain.DecisionValue, error)
}

// AuditTrail reads the audit log.
type AuditTrail interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// App holds the wired services of one process.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Reviews *review.Service
	Reports *report.Service
	Catalog *catalog.Service
	Vocab   Vocabulary
	Audit   AuditTrail

	// Events is nil unless redis is enabled.
	Events   *events.Publisher
	Registry *prometheus.Registry

	pool *pgxpool.Pool
}

// New connects the configured storage, event publisher and metrics and
// builds the services on top of them. Close releases what New opened.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		Config:   cfg,
		Log:      logger,
		Registry: prometheus.NewRegistry(),
	}

	var (
		states stateStore
		dir    directoryStore
		tx     txManager
	)
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.New()
		states, dir, a.Vocab, a.Audit, tx = store, store, store, store, store
	default:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.pool = pool
		states = staterepo.New(pool)
		dir = directoryrepo.New(pool)
		a.Vocab = vocabularyrepo.New(pool)
		a.Audit = auditrepo.New(pool)
		tx = postgres.NewTxManager(pool)
	}

	opts := []review.Option{
		review.WithMetrics(metrics.NewCollector(a.Registry, cfg.Metrics.Namespace)),
	}
	if cfg.Redis.Enabled {
		pub, err := events.NewPublisher(ctx, cfg.Redis, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.Events = pub
		opts = append(opts, review.WithPublisher(pub))
	}

	a.Reviews = review.NewService(logger, states, dir, a.Vocab, a.Audit, tx, cfg.Review, opts...)
	a.Reports = report.NewService(logger, states, dir, a.Vocab, cfg.Review.LaterStateThreshold)
	a.Catalog = catalog.NewService(logger, dir, a.Audit, tx)

	logger.InfoContext(ctx, "application initialized",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage),
		slog.Bool("events", a.Events != nil),
	)
	return a, nil
}

// Close flushes metrics and releases connections.
func (a *App) Close() {
	if path := a.Config.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path, a.Registry); err != nil {
			a.Log.Warn("write metrics textfile", slog.String("path", path), slog.String("error", err.Error()))
		}
	}
	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			a.Log.Warn("close event publisher", slog.String("error", err.Error()))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
