package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// AddComment appends a note to a state record.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxCommentLength); err != nil {
		return nil, err
	}

	var saved domain.Comment
	err := s.runInTxRetry(ctx, opAddComment, func(txCtx context.Context) error {
		if _, getErr := s.states.GetByID(txCtx, input.RecordID); getErr != nil {
			return fmt.Errorf("get state record: %w", getErr)
		}

		var addErr error
		saved, addErr = s.states.AddComment(txCtx, input.RecordID, domain.Comment{
			Body:      strings.TrimSpace(input.Body),
			UserID:    userID,
			EnteredAt: s.timestamp(),
		})
		if addErr != nil {
			return fmt.Errorf("add comment: %w", addErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStateRecord,
			EntityID:   &input.RecordID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"comment_added": saved.ID.String(),
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("record_id", input.RecordID.String()),
		slog.String("comment_id", saved.ID.String()),
	)

	return &saved, nil
}

// EditComment rewrites a comment body and records who changed it.
func (s *Service) EditComment(ctx context.Context, input EditCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxCommentLength); err != nil {
		return nil, err
	}

	body := strings.TrimSpace(input.Body)

	var updated domain.Comment
	err := s.runInTxRetry(ctx, opEditComment, func(txCtx context.Context) error {
		rec, getErr := s.states.GetByID(txCtx, input.RecordID)
		if getErr != nil {
			return fmt.Errorf("get state record: %w", getErr)
		}

		var old *domain.Comment
		for i := range rec.Comments {
			if rec.Comments[i].ID == input.CommentID {
				old = &rec.Comments[i]
				break
			}
		}
		if old == nil {
			return fmt.Errorf("comment %s: %w", input.CommentID, domain.ErrNotFound)
		}

		modifiedAt := s.timestamp()
		var updErr error
		updated, updErr = s.states.UpdateComment(txCtx, input.RecordID, domain.Comment{
			ID:         input.CommentID,
			Body:       body,
			ModifiedBy: &userID,
			ModifiedAt: &modifiedAt,
		})
		if updErr != nil {
			return fmt.Errorf("update comment: %w", updErr)
		}

		if old.Body == body {
			return nil
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeStateRecord,
			EntityID:   &input.RecordID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"comment_id": input.CommentID.String(),
				"body":       map[string]any{"old": old.Body, "new": body},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment edited",
		slog.String("user_id", userID.String()),
		slog.String("record_id", input.RecordID.String()),
		slog.String("comment_id", input.CommentID.String()),
	)

	return &updated, nil
}
