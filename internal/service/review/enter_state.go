package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// EnterState records that an article/topic pair has moved into a new state.
// The previous current record, if any, is demoted in the same transaction,
// and the new record captures the topic's board as it is at this moment.
func (s *Service) EnterState(ctx context.Context, input EnterStateInput) (*domain.StateRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxCommentLength); err != nil {
		return nil, err
	}

	started := s.now()
	textID := strings.TrimSpace(input.StateTextID)

	value, err := s.vocab.GetStateValue(ctx, textID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("state %q: %w", textID, domain.ErrInvalidState)
		}
		return nil, fmt.Errorf("get state value: %w", err)
	}

	decisions, err := s.resolveDecisions(ctx, *value, input.Decisions)
	if err != nil {
		return nil, err
	}
	if len(input.MeetingIDs) > 0 && !value.AcceptsMeetings() {
		return nil, fmt.Errorf("meetings not accepted for state %q: %w", value.TextID, domain.ErrInvalidState)
	}

	var (
		saved    *domain.StateRecord
		previous *domain.StateRecord
	)
	err = s.runInTxRetry(ctx, opEnterState, func(txCtx context.Context) error {
		if lockErr := s.states.LockPair(txCtx, input.ArticleID, input.TopicID); lockErr != nil {
			return fmt.Errorf("lock pair: %w", lockErr)
		}

		article, getErr := s.dir.GetArticle(txCtx, input.ArticleID)
		if getErr != nil {
			return fmt.Errorf("get article: %w", getErr)
		}
		topic, getErr := s.dir.GetTopic(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}
		if !article.HasTopic(topic.ID) {
			if linkErr := s.dir.LinkArticleTopic(txCtx, article.ID, topic.ID); linkErr != nil {
				return fmt.Errorf("link article topic: %w", linkErr)
			}
		}

		meetings, meetErr := s.loadMeetings(txCtx, input.MeetingIDs)
		if meetErr != nil {
			return meetErr
		}

		var findErr error
		previous, findErr = s.states.FindCurrent(txCtx, article.ID, topic.ID)
		if findErr != nil {
			return fmt.Errorf("find current: %w", findErr)
		}

		enteredAt := s.timestamp()
		rec := &domain.StateRecord{
			ArticleID:  article.ID,
			TopicID:    topic.ID,
			Value:      *value,
			BoardID:    topic.BoardID,
			UserID:     userID,
			EnteredAt:  enteredAt,
			Active:     true,
			Current:    true,
			Decisions:  decisions,
			DeciderIDs: input.DeciderIDs,
			Meetings:   meetings,
		}
		if input.Comment != nil {
			rec.Comments = []domain.Comment{{
				Body:      strings.TrimSpace(*input.Comment),
				UserID:    userID,
				EnteredAt: enteredAt,
			}}
		}

		var saveErr error
		saved, saveErr = s.states.Save(txCtx, rec)
		if saveErr != nil {
			return fmt.Errorf("save state record: %w", saveErr)
		}

		changes := map[string]any{
			"state":    map[string]any{"new": value.TextID},
			"board_id": map[string]any{"new": topic.BoardID.String()},
		}
		if previous != nil {
			changes["state"] = map[string]any{"old": previous.Value.TextID, "new": value.TextID}
			changes["superseded_id"] = previous.ID.String()
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStateRecord,
			EntityID:   &saved.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordTransition(saved.Value.TextID)
	s.metrics.ObserveDuration(opEnterState, s.now().Sub(started))
	s.publish(ctx, domain.StateEvent{
		Kind:       domain.StateEventEntered,
		RecordID:   saved.ID,
		ArticleID:  saved.ArticleID,
		TopicID:    saved.TopicID,
		BoardID:    saved.BoardID,
		State:      saved.Value.TextID,
		UserID:     userID,
		OccurredAt: saved.EnteredAt,
	})

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("record_id", saved.ID.String()),
		slog.String("pair", saved.Pair().String()),
		slog.String("state", saved.Value.TextID),
	}
	if previous != nil {
		attrs = append(attrs, slog.String("superseded_id", previous.ID.String()))
	}
	s.log.InfoContext(ctx, "state entered", attrs...)

	return saved, nil
}

// resolveDecisions maps decision inputs to vocabulary terms, keeping input order.
func (s *Service) resolveDecisions(ctx context.Context, value domain.StateValue, in []DecisionInput) ([]domain.Decision, error) {
	if len(in) == 0 {
		return nil, nil
	}
	if !value.AcceptsDecisions() {
		return nil, fmt.Errorf("decisions not accepted for state %q: %w", value.TextID, domain.ErrInvalidState)
	}

	ids := make([]uuid.UUID, len(in))
	for i, d := range in {
		ids[i] = d.DecisionValueID
	}
	found, err := s.vocab.GetDecisionValuesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get decision values: %w", err)
	}
	byID := make(map[uuid.UUID]domain.DecisionValue, len(found))
	for _, v := range found {
		byID[v.ID] = v
	}

	out := make([]domain.Decision, len(in))
	for i, d := range in {
		v, ok := byID[d.DecisionValueID]
		if !ok {
			return nil, fmt.Errorf("decision value %s: %w", d.DecisionValueID, domain.ErrInvalidState)
		}
		out[i] = domain.Decision{
			Value:       v,
			MeetingDate: strings.TrimSpace(d.MeetingDate),
			Discussed:   d.Discussed,
		}
	}
	return out, nil
}

// loadMeetings returns the meetings in ids order; any missing id is ErrNotFound.
func (s *Service) loadMeetings(ctx context.Context, ids []uuid.UUID) ([]domain.Meeting, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	meetings, err := s.dir.GetMeetingsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get meetings: %w", err)
	}
	if len(meetings) != len(ids) {
		for _, id := range ids {
			if !containsMeeting(meetings, id) {
				return nil, fmt.Errorf("meeting %s: %w", id, domain.ErrNotFound)
			}
		}
	}
	return meetings, nil
}

func containsMeeting(meetings []domain.Meeting, id uuid.UUID) bool {
	for _, m := range meetings {
		if m.ID == id {
			return true
		}
	}
	return false
}
