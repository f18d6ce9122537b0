// Package review implements the article/topic review-state lifecycle:
// entering and voiding state records, comments, and current/history lookups.
package review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/config"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

type stateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StateRecord, error)
	FindCurrent(ctx context.Context, articleID, topicID uuid.UUID) (*domain.StateRecord, error)
	FindHistory(ctx context.Context, articleID, topicID uuid.UUID) ([]domain.StateRecord, error)
	LockPair(ctx context.Context, articleID, topicID uuid.UUID) error
	Save(ctx context.Context, rec *domain.StateRecord) (*domain.StateRecord, error)
	AddComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error)
	UpdateComment(ctx context.Context, stateID uuid.UUID, c domain.Comment) (domain.Comment, error)
}

type directory interface {
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetMeetingsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meeting, error)
	LinkArticleTopic(ctx context.Context, articleID, topicID uuid.UUID) error
}

type vocabulary interface {
	GetStateValue(ctx context.Context, textID string) (*domain.StateValue, error)
	GetDecisionValuesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.DecisionValue, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.StateEvent) error
}

type metricsRecorder interface {
	RecordTransition(stateTextID string)
	RecordVoid(promoted bool)
	RecordConflict(operation string, retried bool)
	ObserveDuration(operation string, d time.Duration)
}

// Operation names used in logs and metrics.
const (
	opEnterState  = "enter_state"
	opVoidState   = "void_state"
	opAddComment  = "add_comment"
	opEditComment = "edit_comment"
)

// Service enforces the single-current-state rules.
type Service struct {
	states  stateRepo
	dir     directory
	vocab   vocabulary
	audit   auditLogger
	tx      txManager
	events  eventPublisher
	metrics metricsRecorder
	cfg     config.ReviewConfig
	now     func() time.Time
	log     *slog.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithPublisher sends a domain.StateEvent after every committed transition.
func WithPublisher(p eventPublisher) Option {
	return func(s *Service) { s.events = p }
}

// WithMetrics records transitions, voids and conflicts.
func WithMetrics(m metricsRecorder) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	states stateRepo,
	dir directory,
	vocab vocabulary,
	audit auditLogger,
	tx txManager,
	cfg config.ReviewConfig,
	opts ...Option,
) *Service {
	s := &Service{
		states:  states,
		dir:     dir,
		vocab:   vocab,
		audit:   audit,
		tx:      tx,
		metrics: noopMetrics{},
		cfg:     cfg,
		now:     time.Now,
		log:     log.With("service", "review"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// runInTxRetry runs fn in a transaction and, if it loses a concurrent
// update race, runs it once more. fn must not keep state between attempts.
func (s *Service) runInTxRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.tx.RunInTx(ctx, fn)
	if !errors.Is(err, domain.ErrConflict) {
		return err
	}

	s.metrics.RecordConflict(op, true)
	s.log.WarnContext(ctx, "concurrent update, retrying", slog.String("operation", op))

	err = s.tx.RunInTx(ctx, fn)
	if errors.Is(err, domain.ErrConflict) {
		s.metrics.RecordConflict(op, false)
	}
	return err
}

// publish is best-effort: the transition is already committed.
func (s *Service) publish(ctx context.Context, event domain.StateEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.WarnContext(ctx, "publish state event",
			slog.String("kind", event.Kind.String()),
			slog.String("record_id", event.RecordID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

type noopMetrics struct{}

func (noopMetrics) RecordTransition(string)               {}
func (noopMetrics) RecordVoid(bool)                       {}
func (noopMetrics) RecordConflict(string, bool)           {}
func (noopMetrics) ObserveDuration(string, time.Duration) {}
