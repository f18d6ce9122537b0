package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

func newTopicsBatchFn(repo topicRepo) dataloader.BatchFunc[uuid.UUID, domain.Topic] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Topic] {
		topics, err := repo.GetTopicsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Topic](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Topic, len(topics))
		for _, t := range topics {
			byID[t.ID] = t
		}
		return mapResults(keys, byID, "topic")
	}
}

func newBoardsBatchFn(repo boardRepo) dataloader.BatchFunc[uuid.UUID, domain.Board] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Board] {
		boards, err := repo.GetBoardsByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Board](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Board, len(boards))
		for _, b := range boards {
			byID[b.ID] = b
		}
		return mapResults(keys, byID, "board")
	}
}

func newArticlesBatchFn(repo articleRepo) dataloader.BatchFunc[uuid.UUID, domain.Article] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Article] {
		articles, err := repo.GetArticlesByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Article](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Article, len(articles))
		for _, a := range articles {
			byID[a.ID] = a
		}
		return mapResults(keys, byID, "article")
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order; a missing key is domain.ErrNotFound.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V, entity string) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Error: fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)}
		}
	}
	return results
}
