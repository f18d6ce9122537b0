package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// CreateMeeting schedules a board meeting. Only the calendar date is kept.
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)

	var meeting *domain.Meeting
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		meeting, err = s.dir.CreateMeeting(txCtx, domain.Meeting{Name: name, Date: input.Date})
		if err != nil {
			return fmt.Errorf("create meeting: %w", err)
		}

		if err := s.logAudit(txCtx, userID, domain.EntityTypeMeeting, meeting.ID, domain.AuditActionCreate, map[string]any{
			"name": map[string]any{"new": name},
			"date": map[string]any{"new": meeting.Date.Format("2006-01-02")},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "meeting created",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", meeting.ID.String()),
		slog.String("date", meeting.Date.Format("2006-01-02")),
	)
	return meeting, nil
}
