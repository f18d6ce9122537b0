package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// VoidResult is the outcome of VoidState.
type VoidResult struct {
	Voided *domain.StateRecord
	// Promoted is the earlier record that became current, if any.
	Promoted *domain.StateRecord
}

// VoidState marks a record as entered in error. When the record was current,
// the newest remaining active record of the pair becomes current; if none is
// left the pair has no current state. Voiding a voided record changes nothing.
func (s *Service) VoidState(ctx context.Context, input VoidStateInput) (*VoidResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	started := s.now()

	var (
		result  *VoidResult
		changed bool
	)
	err := s.runInTxRetry(ctx, opVoidState, func(txCtx context.Context) error {
		result, changed = nil, false

		rec, getErr := s.states.GetByID(txCtx, input.RecordID)
		if getErr != nil {
			return fmt.Errorf("get state record: %w", getErr)
		}
		if lockErr := s.states.LockPair(txCtx, rec.ArticleID, rec.TopicID); lockErr != nil {
			return fmt.Errorf("lock pair: %w", lockErr)
		}
		// Re-read under the lock; a concurrent writer may have moved the flags.
		rec, getErr = s.states.GetByID(txCtx, input.RecordID)
		if getErr != nil {
			return fmt.Errorf("get state record: %w", getErr)
		}

		if !rec.Active {
			result = &VoidResult{Voided: rec}
			return nil
		}

		wasCurrent := rec.Current
		rec.Active, rec.Current = false, false
		voided, saveErr := s.states.Save(txCtx, rec)
		if saveErr != nil {
			return fmt.Errorf("save voided record: %w", saveErr)
		}
		result = &VoidResult{Voided: voided}
		changed = true

		if wasCurrent {
			history, histErr := s.states.FindHistory(txCtx, rec.ArticleID, rec.TopicID)
			if histErr != nil {
				return fmt.Errorf("find history: %w", histErr)
			}
			if next, found := domain.LatestActive(history, rec.ID); found {
				next.Current = true
				promoted, promoteErr := s.states.Save(txCtx, &next)
				if promoteErr != nil {
					return fmt.Errorf("promote record: %w", promoteErr)
				}
				result.Promoted = promoted
			}
		}

		changes := map[string]any{
			"active": map[string]any{"old": true, "new": false},
		}
		if wasCurrent {
			changes["current"] = map[string]any{"old": true, "new": false}
		}
		if result.Promoted != nil {
			changes["promoted_id"] = result.Promoted.ID.String()
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStateRecord,
			EntityID:   &voided.ID,
			Action:     domain.AuditActionVoid,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		s.log.InfoContext(ctx, "state already voided",
			slog.String("user_id", userID.String()),
			slog.String("record_id", input.RecordID.String()),
		)
		return result, nil
	}

	s.metrics.RecordVoid(result.Promoted != nil)
	s.metrics.ObserveDuration(opVoidState, s.now().Sub(started))

	event := domain.StateEvent{
		Kind:       domain.StateEventVoided,
		RecordID:   result.Voided.ID,
		ArticleID:  result.Voided.ArticleID,
		TopicID:    result.Voided.TopicID,
		BoardID:    result.Voided.BoardID,
		State:      result.Voided.Value.TextID,
		UserID:     userID,
		OccurredAt: s.timestamp(),
	}
	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("record_id", result.Voided.ID.String()),
		slog.String("pair", result.Voided.Pair().String()),
	}
	if result.Promoted != nil {
		event.PromotedID = &result.Promoted.ID
		attrs = append(attrs, slog.String("promoted_id", result.Promoted.ID.String()))
	}
	s.publish(ctx, event)
	s.log.InfoContext(ctx, "state voided", attrs...)

	return result, nil
}
