// Package report builds read-only projections of state history for display:
// an article's records across topics, per-topic later state summaries and a
// board's work queue.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/dataloader"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

type stateRepo interface {
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.StateRecord, error)
	ListCurrentByBoard(ctx context.Context, boardID uuid.UUID, stateTextID string) ([]domain.StateRecord, error)
}

type directory interface {
	GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	GetTopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Topic, error)
	GetBoardsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Board, error)
	GetArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Article, error)
}

type vocabulary interface {
	GetStateValue(ctx context.Context, textID string) (*domain.StateValue, error)
}

// Service renders state history for display layers.
type Service struct {
	states    stateRepo
	dir       directory
	vocab     vocabulary
	threshold int
	log       *slog.Logger
}

// NewService creates a new report service. threshold is the default
// sequence a state must exceed to get a later state description.
func NewService(log *slog.Logger, states stateRepo, dir directory, vocab vocabulary, threshold int) *Service {
	return &Service{
		states:    states,
		dir:       dir,
		vocab:     vocab,
		threshold: threshold,
		log:       log.With("service", "report"),
	}
}

// StateRow is a state record with the names of its topic and board.
type StateRow struct {
	Record    domain.StateRecord
	TopicName string
	BoardName string
}

// TopicSummary is the current state of one article/topic pair.
type TopicSummary struct {
	TopicID     uuid.UUID
	TopicName   string
	BoardName   string
	RecordID    uuid.UUID
	StateName   string
	EnteredAt   time.Time
	Description string
}

// QueueRow is one article waiting in a board's queue.
type QueueRow struct {
	Record    domain.StateRecord
	SourceID  string
	TopicName string
}

// ArticleStatesInput filters ArticleStates.
type ArticleStatesInput struct {
	ArticleID       uuid.UUID
	BoardID         *uuid.UUID
	IncludeInactive bool
	CurrentOnly     bool
}

// Validate checks all fields and collects all errors.
func (i ArticleStatesInput) Validate() error {
	if i.ArticleID == uuid.Nil {
		return domain.NewValidationError("article_id", "required")
	}
	return nil
}

// ArticleStates lists an article's records across topics, newest first.
// BoardID filters on the board captured when each record was entered.
func (s *Service) ArticleStates(ctx context.Context, input ArticleStatesInput) ([]StateRow, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.dir.GetArticle(ctx, input.ArticleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	records, err := s.states.ListByArticle(ctx, input.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}

	ctx = s.withLoaders(ctx)
	rows := make([]StateRow, 0, len(records))
	for _, rec := range records {
		if !rec.Active && !input.IncludeInactive {
			continue
		}
		if input.CurrentOnly && !(rec.Current && rec.Active) {
			continue
		}
		if input.BoardID != nil && rec.BoardID != *input.BoardID {
			continue
		}
		rows = append(rows, StateRow{Record: rec})
	}

	names, err := s.resolveNames(ctx, rows)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TopicName = names.topics[rows[i].Record.TopicID]
		rows[i].BoardName = names.boards[rows[i].Record.BoardID]
	}

	s.log.DebugContext(ctx, "article states",
		slog.String("article_id", input.ArticleID.String()),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}

// TopicSummaries returns one summary per topic of the article that has a
// current state, ordered by topic name. A nil threshold uses the default.
func (s *Service) TopicSummaries(ctx context.Context, articleID uuid.UUID, threshold *int) ([]TopicSummary, error) {
	limit := s.threshold
	if threshold != nil {
		limit = *threshold
	}
	rows, err := s.ArticleStates(ctx, ArticleStatesInput{ArticleID: articleID, CurrentOnly: true})
	if err != nil {
		return nil, err
	}

	out := make([]TopicSummary, 0, len(rows))
	for _, row := range rows {
		rec := row.Record
		out = append(out, TopicSummary{
			TopicID:     rec.TopicID,
			TopicName:   row.TopicName,
			BoardName:   row.BoardName,
			RecordID:    rec.ID,
			StateName:   rec.Value.Name,
			EnteredAt:   rec.EnteredAt,
			Description: rec.LaterStateDescription(limit),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TopicName < out[j].TopicName })
	return out, nil
}

// BoardQueue lists the current records attributed to a board, oldest first.
// An empty stateTextID lists every state.
func (s *Service) BoardQueue(ctx context.Context, boardID uuid.UUID, stateTextID string) ([]QueueRow, error) {
	if boardID == uuid.Nil {
		return nil, domain.NewValidationError("board_id", "required")
	}
	if _, err := s.dir.GetBoard(ctx, boardID); err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if stateTextID != "" {
		if _, err := s.vocab.GetStateValue(ctx, stateTextID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("state %q: %w", stateTextID, domain.ErrInvalidState)
			}
			return nil, fmt.Errorf("get state value: %w", err)
		}
	}

	records, err := s.states.ListCurrentByBoard(ctx, boardID, stateTextID)
	if err != nil {
		return nil, fmt.Errorf("list board queue: %w", err)
	}

	ctx = s.withLoaders(ctx)
	loaders, _ := dataloader.FromContext(ctx)

	topicThunks := make([]func() (domain.Topic, error), len(records))
	articleThunks := make([]func() (domain.Article, error), len(records))
	for i, rec := range records {
		topicThunks[i] = loaders.TopicByID.Load(ctx, rec.TopicID)
		articleThunks[i] = loaders.ArticleByID.Load(ctx, rec.ArticleID)
	}

	out := make([]QueueRow, len(records))
	for i, rec := range records {
		topic, err := topicThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load topic: %w", err)
		}
		article, err := articleThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load article: %w", err)
		}
		out[i] = QueueRow{Record: rec, SourceID: article.SourceID, TopicName: topic.Name}
	}
	return out, nil
}

// withLoaders attaches a fresh set of loaders unless ctx already carries one.
func (s *Service) withLoaders(ctx context.Context) context.Context {
	if _, ok := dataloader.FromContext(ctx); ok {
		return ctx
	}
	return dataloader.WithLoaders(ctx, dataloader.NewLoaders(&dataloader.Repos{
		Topic:   s.dir,
		Board:   s.dir,
		Article: s.dir,
	}))
}

type nameIndex struct {
	topics map[uuid.UUID]string
	boards map[uuid.UUID]string
}

// resolveNames loads every topic and board referenced by rows in batches.
func (s *Service) resolveNames(ctx context.Context, rows []StateRow) (nameIndex, error) {
	loaders, _ := dataloader.FromContext(ctx)
	idx := nameIndex{topics: map[uuid.UUID]string{}, boards: map[uuid.UUID]string{}}

	topicThunks := map[uuid.UUID]func() (domain.Topic, error){}
	boardThunks := map[uuid.UUID]func() (domain.Board, error){}
	for _, row := range rows {
		if _, ok := topicThunks[row.Record.TopicID]; !ok {
			topicThunks[row.Record.TopicID] = loaders.TopicByID.Load(ctx, row.Record.TopicID)
		}
		if _, ok := boardThunks[row.Record.BoardID]; !ok {
			boardThunks[row.Record.BoardID] = loaders.BoardByID.Load(ctx, row.Record.BoardID)
		}
	}

	for id, thunk := range topicThunks {
		t, err := thunk()
		if err != nil {
			return idx, fmt.Errorf("load topic: %w", err)
		}
		idx.topics[id] = t.Name
	}
	for id, thunk := range boardThunks {
		b, err := thunk()
		if err != nil {
			return idx, fmt.Errorf("load board: %w", err)
		}
		idx.boards[id] = b.Name
	}
	return idx, nil
}
