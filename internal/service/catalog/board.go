package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ebms-backend/internal/domain"
	"github.com/heartmarshall/ebms-backend/pkg/ctxutil"
)

// CreateBoard creates an active board managed by input.ManagerID.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)

	var board *domain.Board
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		board, err = s.dir.CreateBoard(txCtx, domain.Board{
			Name:      name,
			ManagerID: input.ManagerID,
			Active:    true,
		})
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}

		if err := s.logAudit(txCtx, userID, domain.EntityTypeBoard, board.ID, domain.AuditActionCreate, map[string]any{
			"name":       map[string]any{"new": name},
			"manager_id": map[string]any{"new": input.ManagerID.String()},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", board.ID.String()),
		slog.String("name", name),
	)
	return board, nil
}
