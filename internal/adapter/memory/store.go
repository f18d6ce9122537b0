// Package memory is an in-process implementation of every repository the
// services depend on. Transactions are optimistic: each one remembers the
// version of every article/topic pair it read, and commit fails with
// domain.ErrConflict when any of those pairs changed in the meantime.
package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Store holds committed data. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex

	records  map[uuid.UUID]recordRow
	versions map[domain.Pair]uint64
	seq      atomic.Uint64

	boards   map[uuid.UUID]domain.Board
	topics   map[uuid.UUID]domain.Topic
	articles map[uuid.UUID]domain.Article
	meetings map[uuid.UUID]domain.Meeting
	audit    []domain.AuditRecord

	stateValues    map[string]domain.StateValue
	decisionValues map[uuid.UUID]domain.DecisionValue

	now func() time.Time
}

type recordRow struct {
	rec domain.StateRecord
	seq uint64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store with the seeded state and decision vocabularies.
func New(opts ...Option) *Store {
	s := &Store{
		records:        make(map[uuid.UUID]recordRow),
		versions:       make(map[domain.Pair]uint64),
		boards:         make(map[uuid.UUID]domain.Board),
		topics:         make(map[uuid.UUID]domain.Topic),
		articles:       make(map[uuid.UUID]domain.Article),
		meetings:       make(map[uuid.UUID]domain.Meeting),
		stateValues:    make(map[string]domain.StateValue),
		decisionValues: make(map[uuid.UUID]domain.DecisionValue),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seedVocabulary()
	return s
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

type txCtxKey struct{}

// txState is the private view of one transaction: the pair versions it read
// and the writes it staged.
type txState struct {
	reads map[domain.Pair]uint64

	records  map[uuid.UUID]recordRow
	boards   map[uuid.UUID]domain.Board
	topics   map[uuid.UUID]domain.Topic
	articles map[uuid.UUID]domain.Article
	meetings map[uuid.UUID]domain.Meeting
	audit    []domain.AuditRecord
}

func newTxState() *txState {
	return &txState{
		reads:    make(map[domain.Pair]uint64),
		records:  make(map[uuid.UUID]recordRow),
		boards:   make(map[uuid.UUID]domain.Board),
		topics:   make(map[uuid.UUID]domain.Topic),
		articles: make(map[uuid.UUID]domain.Article),
		meetings: make(map[uuid.UUID]domain.Meeting),
	}
}

func txFromCtx(ctx context.Context) *txState {
	tx, _ := ctx.Value(txCtxKey{}).(*txState)
	return tx
}

// RunInTx executes fn against a private view of the store and commits its
// writes if fn succeeds. A call made inside another RunInTx joins the outer
// transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromCtx(ctx) != nil {
		return fn(ctx)
	}

	tx := newTxState()
	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(tx)
}

// commit applies tx if none of the pairs it read changed since.
func (s *Store) commit(tx *txState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pair, v := range tx.reads {
		if s.versions[pair] != v {
			return fmt.Errorf("commit pair %s: %w", pair, domain.ErrConflict)
		}
	}

	touched := make(map[domain.Pair]struct{})
	for id, row := range tx.records {
		s.records[id] = row
		touched[row.rec.Pair()] = struct{}{}
	}
	for pair := range touched {
		s.versions[pair]++
	}

	for id, b := range tx.boards {
		s.boards[id] = b
	}
	for id, t := range tx.topics {
		s.topics[id] = t
	}
	for id, a := range tx.articles {
		s.articles[id] = a
	}
	for id, m := range tx.meetings {
		s.meetings[id] = m
	}
	s.audit = append(s.audit, tx.audit...)

	return nil
}

// observe records the committed version of pair as read by tx, once.
// The caller must hold s.mu.
func (tx *txState) observe(s *Store, pair domain.Pair) {
	if tx == nil {
		return
	}
	if _, ok := tx.reads[pair]; !ok {
		tx.reads[pair] = s.versions[pair]
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}
