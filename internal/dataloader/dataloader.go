// Package dataloader provides per-report DataLoaders that batch topic, board
// and article lookups made while rendering state records into single
// repository calls.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type topicRepo interface {
	GetTopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Topic, error)
}

type boardRepo interface {
	GetBoardsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Board, error)
}

type articleRepo interface {
	GetArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Article, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Topic   topicRepo
	Board   boardRepo
	Article articleRepo
}

// Loaders contains the DataLoaders of one report. Loaders cache results,
// so a set must not outlive the report it was created for.
type Loaders struct {
	TopicByID   *dataloader.Loader[uuid.UUID, domain.Topic]
	BoardByID   *dataloader.Loader[uuid.UUID, domain.Board]
	ArticleByID *dataloader.Loader[uuid.UUID, domain.Article]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TopicByID:   newLoader(newTopicsBatchFn(repos.Topic)),
		BoardByID:   newLoader(newBoardsBatchFn(repos.Board)),
		ArticleByID: newLoader(newArticlesBatchFn(repos.Article)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
