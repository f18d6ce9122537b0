package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// CreateTopic creates an active topic under an existing board.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)
	group := normalizeOrNil(input.TopicGroup)

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.dir.GetBoard(txCtx, input.BoardID); err != nil {
			return fmt.Errorf("get board: %w", err)
		}

		var err error
		topic, err = s.dir.CreateTopic(txCtx, domain.Topic{
			Name:              name,
			BoardID:           input.BoardID,
			DefaultReviewerID: input.DefaultReviewerID,
			Active:            true,
			TopicGroup:        group,
		})
		if err != nil {
			return fmt.Errorf("create topic: %w", err)
		}

		if err := s.logAudit(txCtx, userID, domain.EntityTypeTopic, topic.ID, domain.AuditActionCreate, map[string]any{
			"name":     map[string]any{"new": name},
			"board_id": map[string]any{"new": input.BoardID.String()},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.String("board_id", input.BoardID.String()),
	)
	return topic, nil
}

// ReassignTopic moves a topic to another board. State records entered
// before the move stay attributed to the old board.
func (s *Service) ReassignTopic(ctx context.Context, input ReassignTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.updateTopic(ctx, input.TopicID, func(txCtx context.Context, t *domain.Topic) (bool, error) {
		if t.BoardID == input.BoardID {
			return false, nil
		}
		if _, err := s.dir.GetBoard(txCtx, input.BoardID); err != nil {
			return false, fmt.Errorf("get board: %w", err)
		}
		t.BoardID = input.BoardID
		return true, nil
	})
}

// SetTopicActive flips a topic's active flag.
func (s *Service) SetTopicActive(ctx context.Context, topicID uuid.UUID, active bool) (*domain.Topic, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	return s.updateTopic(ctx, topicID, func(_ context.Context, t *domain.Topic) (bool, error) {
		if t.Active == active {
			return false, nil
		}
		t.Active = active
		return true, nil
	})
}

// updateTopic applies mutate to the stored topic inside a transaction and
// audits the diff. Nothing is written when mutate reports no change.
func (s *Service) updateTopic(ctx context.Context, topicID uuid.UUID, mutate func(context.Context, *domain.Topic) (bool, error)) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		updated *domain.Topic
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.dir.GetTopic(txCtx, topicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		next := *old
		changed, err = mutate(txCtx, &next)
		if err != nil {
			return err
		}
		if !changed {
			updated = old
			return nil
		}

		updated, err = s.dir.UpdateTopic(txCtx, next)
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}

		if err := s.logAudit(txCtx, userID, domain.EntityTypeTopic, topicID, domain.AuditActionUpdate, buildTopicChanges(old, updated)); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "topic updated",
			slog.String("user_id", userID.String()),
			slog.String("topic_id", topicID.String()),
			slog.String("board_id", updated.BoardID.String()),
			slog.Bool("active", updated.Active),
		)
	}
	return updated, nil
}

// buildTopicChanges returns only changed fields for audit.
func buildTopicChanges(old, updated *domain.Topic) map[string]any {
	changes := make(map[string]any)
	if old.BoardID != updated.BoardID {
		changes["board_id"] = map[string]any{"old": old.BoardID.String(), "new": updated.BoardID.String()}
	}
	if old.Active != updated.Active {
		changes["active"] = map[string]any{"old": old.Active, "new": updated.Active}
	}
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	return changes
}

// normalizeOrNil normalizes s. Returns nil if the result is empty.
func normalizeOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := domain.NormalizeName(*s)
	if v == "" {
		return nil
	}
	return &v
}
