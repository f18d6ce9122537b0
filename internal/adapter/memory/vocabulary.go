package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// Same rows as the vocabulary migration.
var seedStates = []struct {
	textID   string
	name     string
	sequence int
}{
	{"ready_init_review", "Ready for initial review", 10},
	{"reject_journal_title", "Rejected by NOT list", 20},
	{"reject_init_review", "Rejected in initial review", 20},
	{"passed_init_review", "Passed initial review", 20},
	{"published", "Published", 30},
	{"reject_bm_review", "Rejected by Board Manager", 40},
	{"passed_bm_review", "Passed Board Manager", 40},
	{"reject_full_review", "Rejected after full text review", 50},
	{"passed_full_review", "Passed full text review", 50},
	{"not_for_agenda", "Not for agenda", 60},
	{"agenda_future_change", "Flagged as FYI", 60},
	{domain.StateTextOnAgenda, "On agenda", 60},
	{domain.StateTextFinalBoardDecision, "Editorial Board decision", 70},
	{"full_end", "Full-text processing complete", 80},
}

var seedDecisions = []string{
	"Cited (citation only)",
	"Cited (legacy)",
	"Not cited",
	"Text approved",
	"Text needs to be written",
	"Text needs to be revised",
	"Approved",
	"No Changes",
	"Hold",
}

func (s *Store) seedVocabulary() {
	for _, v := range seedStates {
		s.stateValues[v.textID] = domain.StateValue{
			ID:       uuid.New(),
			TextID:   v.textID,
			Name:     v.name,
			Sequence: v.sequence,
		}
	}
	for _, name := range seedDecisions {
		id := uuid.New()
		s.decisionValues[id] = domain.DecisionValue{ID: id, Name: name}
	}
}

// GetStateValue returns the state value with the given stable text id.
// Returns domain.ErrNotFound for an unknown text id.
func (s *Store) GetStateValue(_ context.Context, textID string) (*domain.StateValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.stateValues[textID]
	if !ok {
		return nil, fmt.Errorf("state_value %s: %w", textID, domain.ErrNotFound)
	}
	return &v, nil
}

// ListStateValues returns the whole state vocabulary ordered by sequence.
func (s *Store) ListStateValues(_ context.Context) ([]domain.StateValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StateValue, 0, len(s.stateValues))
	for _, v := range s.stateValues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].TextID < out[j].TextID
	})
	return out, nil
}

// GetDecisionValuesByIDs returns the decision values that exist among ids.
func (s *Store) GetDecisionValuesByIDs(_ context.Context, ids []uuid.UUID) ([]domain.DecisionValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DecisionValue, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.decisionValues[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// ListDecisionValues returns the decision vocabulary ordered by name.
func (s *Store) ListDecisionValues(_ context.Context) ([]domain.DecisionValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := values(s.decisionValues)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
