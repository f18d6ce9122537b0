package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// write runs fn inside a transaction while holding the read lock, so fn may
// inspect committed data and stage writes on tx.
func (s *Store) write(ctx context.Context, fn func(tx *txState) error) error {
	return s.RunInTx(ctx, func(ctx context.Context) error {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return fn(txFromCtx(ctx))
	})
}

// ---------------------------------------------------------------------------
// Boards
// ---------------------------------------------------------------------------

// CreateBoard stores a board. Returns domain.ErrAlreadyExists on a duplicate name.
func (s *Store) CreateBoard(ctx context.Context, b domain.Board) (*domain.Board, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	err := s.write(ctx, func(tx *txState) error {
		for _, other := range s.boardView(tx) {
			if other.Name == b.Name || other.ID == b.ID {
				return fmt.Errorf("board %s: %w", b.Name, domain.ErrAlreadyExists)
			}
		}
		now := s.timestamp()
		b.CreatedAt, b.UpdatedAt = now, now
		tx.boards[b.ID] = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBoard returns a board by id.
func (s *Store) GetBoard(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	boards, err := s.GetBoardsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return &boards[0], nil
}

// GetBoardsByIDs returns the boards that exist among ids.
func (s *Store) GetBoardsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.boardView(txFromCtx(ctx))
	out := make([]domain.Board, 0, len(ids))
	for _, id := range ids {
		if b, ok := view[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListBoards returns every board ordered by name.
func (s *Store) ListBoards(ctx context.Context) ([]domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := values(s.boardView(txFromCtx(ctx)))
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---------------------------------------------------------------------------
// Topics
// ---------------------------------------------------------------------------

// CreateTopic stores a topic. Returns domain.ErrNotFound if the board does
// not exist and domain.ErrAlreadyExists on a duplicate name.
func (s *Store) CreateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	err := s.write(ctx, func(tx *txState) error {
		if _, ok := s.boardView(tx)[t.BoardID]; !ok {
			return fmt.Errorf("board %s: %w", t.BoardID, domain.ErrNotFound)
		}
		for _, other := range s.topicView(tx) {
			if other.Name == t.Name || other.ID == t.ID {
				return fmt.Errorf("topic %s: %w", t.Name, domain.ErrAlreadyExists)
			}
		}
		now := s.timestamp()
		t.CreatedAt, t.UpdatedAt = now, now
		tx.topics[t.ID] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTopic overwrites the mutable topic fields.
func (s *Store) UpdateTopic(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	err := s.write(ctx, func(tx *txState) error {
		topics := s.topicView(tx)
		existing, ok := topics[t.ID]
		if !ok {
			return fmt.Errorf("topic %s: %w", t.ID, domain.ErrNotFound)
		}
		if _, ok := s.boardView(tx)[t.BoardID]; !ok {
			return fmt.Errorf("board %s: %w", t.BoardID, domain.ErrNotFound)
		}
		for _, other := range topics {
			if other.ID != t.ID && other.Name == t.Name {
				return fmt.Errorf("topic %s: %w", t.Name, domain.ErrAlreadyExists)
			}
		}
		t.CreatedAt = existing.CreatedAt
		t.UpdatedAt = s.timestamp()
		tx.topics[t.ID] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTopic returns a topic by id.
func (s *Store) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	topics, err := s.GetTopicsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return &topics[0], nil
}

// GetTopicsByIDs returns the topics that exist among ids.
func (s *Store) GetTopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.topicView(txFromCtx(ctx))
	out := make([]domain.Topic, 0, len(ids))
	for _, id := range ids {
		if t, ok := view[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListTopics returns topics ordered by name, limited to one board when
// boardID is non-nil.
func (s *Store) ListTopics(ctx context.Context, boardID *uuid.UUID) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Topic, 0)
	for _, t := range s.topicView(txFromCtx(ctx)) {
		if boardID == nil || t.BoardID == *boardID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---------------------------------------------------------------------------
// Articles
// ---------------------------------------------------------------------------

// CreateArticle stores an article with its topic links.
// Returns domain.ErrAlreadyExists on a duplicate source id and
// domain.ErrNotFound if a topic does not exist.
func (s *Store) CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	err := s.write(ctx, func(tx *txState) error {
		for _, other := range s.articleView(tx) {
			if other.SourceID == a.SourceID || other.ID == a.ID {
				return fmt.Errorf("article %s: %w", a.SourceID, domain.ErrAlreadyExists)
			}
		}
		topics := s.topicView(tx)
		linked := make([]uuid.UUID, 0, len(a.TopicIDs))
		for _, id := range a.TopicIDs {
			if _, ok := topics[id]; !ok {
				return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
			}
			if !containsID(linked, id) {
				linked = append(linked, id)
			}
		}
		a.TopicIDs = linked
		a.CreatedAt = s.timestamp()
		tx.articles[a.ID] = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := cloneArticle(a)
	return &out, nil
}

// LinkArticleTopic associates an article with a topic. Linking twice is a no-op.
func (s *Store) LinkArticleTopic(ctx context.Context, articleID, topicID uuid.UUID) error {
	return s.write(ctx, func(tx *txState) error {
		a, ok := s.articleView(tx)[articleID]
		if !ok {
			return fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
		}
		if _, ok := s.topicView(tx)[topicID]; !ok {
			return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
		}
		if a.HasTopic(topicID) {
			return nil
		}
		a = cloneArticle(a)
		a.TopicIDs = append(a.TopicIDs, topicID)
		tx.articles[articleID] = a
		return nil
	})
}

// GetArticle returns an article with its topic ids in link order.
func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articleView(txFromCtx(ctx))[id]
	if !ok {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	out := cloneArticle(a)
	return &out, nil
}

// GetArticlesByIDs returns the articles that exist among ids.
func (s *Store) GetArticlesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.articleView(txFromCtx(ctx))
	out := make([]domain.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := view[id]; ok {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}

// GetArticleBySourceID returns the article registered under sourceID.
func (s *Store) GetArticleBySourceID(ctx context.Context, sourceID string) (*domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articleView(txFromCtx(ctx)) {
		if a.SourceID == sourceID {
			out := cloneArticle(a)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("article %s: %w", sourceID, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Meetings
// ---------------------------------------------------------------------------

// CreateMeeting stores a meeting. Only the calendar day of Date is kept.
func (s *Store) CreateMeeting(ctx context.Context, m domain.Meeting) (*domain.Meeting, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	y, mo, d := m.Date.Date()
	m.Date = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)

	err := s.write(ctx, func(tx *txState) error {
		if _, ok := s.meetingView(tx)[m.ID]; ok {
			return fmt.Errorf("meeting %s: %w", m.ID, domain.ErrAlreadyExists)
		}
		tx.meetings[m.ID] = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMeetingsByIDs returns the meetings that exist among ids, ordered as ids.
func (s *Store) GetMeetingsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.meetingView(txFromCtx(ctx))
	out := make([]domain.Meeting, 0, len(ids))
	for _, id := range ids {
		if m, ok := view[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Views (caller holds s.mu)
// ---------------------------------------------------------------------------

func (s *Store) boardView(tx *txState) map[uuid.UUID]domain.Board {
	if tx == nil {
		return s.boards
	}
	return overlay(s.boards, tx.boards)
}

func (s *Store) topicView(tx *txState) map[uuid.UUID]domain.Topic {
	if tx == nil {
		return s.topics
	}
	return overlay(s.topics, tx.topics)
}

func (s *Store) articleView(tx *txState) map[uuid.UUID]domain.Article {
	if tx == nil {
		return s.articles
	}
	return overlay(s.articles, tx.articles)
}

func (s *Store) meetingView(tx *txState) map[uuid.UUID]domain.Meeting {
	if tx == nil {
		return s.meetings
	}
	return overlay(s.meetings, tx.meetings)
}

// lookupArticleTopic returns the article of pair if it is linked to the pair's topic.
func (s *Store) lookupArticleTopic(tx *txState, pair domain.Pair) (domain.Article, bool) {
	a, ok := s.articleView(tx)[pair.ArticleID]
	if !ok || !a.HasTopic(pair.TopicID) {
		return domain.Article{}, false
	}
	return a, true
}

func overlay[T any](base, staged map[uuid.UUID]T) map[uuid.UUID]T {
	if len(staged) == 0 {
		return base
	}
	out := make(map[uuid.UUID]T, len(base)+len(staged))
	for id, v := range base {
		out[id] = v
	}
	for id, v := range staged {
		out[id] = v
	}
	return out
}

func values[T any](m map[uuid.UUID]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func cloneArticle(a domain.Article) domain.Article {
	a.TopicIDs = append([]uuid.UUID{}, a.TopicIDs...)
	return a
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
