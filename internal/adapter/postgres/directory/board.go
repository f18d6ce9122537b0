package directory

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ebms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ebms-backend/internal/domain"
)

var boardColumns = []string{"id", "name", "manager_id", "active", "created_at", "updated_at"}

// CreateBoard inserts a board. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) CreateBoard(ctx context.Context, b domain.Board) (*domain.Board, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := r.timestamp()
	b.CreatedAt, b.UpdatedAt = now, now

	_, err := r.exec(ctx, postgres.Builder().
		Insert("boards").
		Columns(boardColumns...).
		Values(b.ID, b.Name, b.ManagerID, b.Active, b.CreatedAt, b.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "board", b.ID)
	}
	return &b, nil
}

// GetBoard returns a board by primary key.
func (r *Repo) GetBoard(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	boards, err := r.GetBoardsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return &boards[0], nil
}

// GetBoardsByIDs returns the boards that exist among ids, in no particular order.
func (r *Repo) GetBoardsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Board, error) {
	if len(ids) == 0 {
		return []domain.Board{}, nil
	}
	rows, err := r.query(ctx, postgres.Builder().
		Select(boardColumns...).
		From("boards").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("get boards by ids: %w", err)
	}
	boards, err := postgres.Collect(rows, scanBoard)
	if err != nil {
		return nil, fmt.Errorf("get boards by ids: %w", err)
	}
	return boards, nil
}

// ListBoards returns every board ordered by name.
func (r *Repo) ListBoards(ctx context.Context) ([]domain.Board, error) {
	rows, err := r.query(ctx, postgres.Builder().
		Select(boardColumns...).
		From("boards").
		OrderBy("name"))
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	boards, err := postgres.Collect(rows, scanBoard)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func scanBoard(row pgx.Rows) (domain.Board, error) {
	var b domain.Board
	err := row.Scan(&b.ID, &b.Name, &b.ManagerID, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
