package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// FindCurrent returns the current record of the pair, or nil if it has none.
func (s *Service) FindCurrent(ctx context.Context, articleID, topicID uuid.UUID) (*domain.StateRecord, error) {
	if err := validatePair(articleID, topicID); err != nil {
		return nil, err
	}
	rec, err := s.states.FindCurrent(ctx, articleID, topicID)
	if err != nil {
		return nil, fmt.Errorf("find current: %w", err)
	}
	return rec, nil
}

// FindHistory returns every record of the pair, voided ones included, newest first.
func (s *Service) FindHistory(ctx context.Context, articleID, topicID uuid.UUID) ([]domain.StateRecord, error) {
	if err := validatePair(articleID, topicID); err != nil {
		return nil, err
	}
	history, err := s.states.FindHistory(ctx, articleID, topicID)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	return history, nil
}

// DescribeLaterState loads a record and returns its later state description.
// A nil threshold uses the configured default.
func (s *Service) DescribeLaterState(ctx context.Context, recordID uuid.UUID, threshold *int) (string, error) {
	if recordID == uuid.Nil {
		return "", domain.NewValidationError("record_id", "required")
	}
	limit := s.cfg.LaterStateThreshold
	if threshold != nil {
		limit = *threshold
	}
	rec, err := s.states.GetByID(ctx, recordID)
	if err != nil {
		return "", fmt.Errorf("get state record: %w", err)
	}
	return rec.LaterStateDescription(limit), nil
}

func validatePair(articleID, topicID uuid.UUID) error {
	var errs []domain.FieldError
	if articleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if topicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
