package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Name      string
	ManagerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "name", i.Name)
	if i.ManagerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "manager_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name              string
	BoardID           uuid.UUID
	DefaultReviewerID uuid.UUID
	TopicGroup        *string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "name", i.Name)
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.TopicGroup != nil && len(domain.NormalizeName(*i.TopicGroup)) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "topic_group", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReassignTopicInput moves a topic to another board.
type ReassignTopicInput struct {
	TopicID uuid.UUID
	BoardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReassignTopicInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterArticleInput holds the parameters for registering an article.
type RegisterArticleInput struct {
	SourceID string
	TopicIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RegisterArticleInput) Validate() error {
	var errs []domain.FieldError
	src := domain.NormalizeSourceID(i.SourceID)
	if src == "" {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "required"})
	}
	if len(src) > maxSourceIDLength {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "too long"})
	}
	if len(i.TopicIDs) > maxTopicsPerLink {
		errs = append(errs, domain.FieldError{Field: "topic_ids", Message: "max 50 topics"})
	}
	for _, id := range i.TopicIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "topic_ids", Message: "invalid id"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LinkArticleInput associates an existing article with a topic.
type LinkArticleInput struct {
	ArticleID uuid.UUID
	TopicID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i LinkArticleInput) Validate() error {
	var errs []domain.FieldError
	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMeetingInput holds the parameters for scheduling a meeting.
type CreateMeetingInput struct {
	Name string
	Date time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateMeetingInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "name", i.Name)
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	name = domain.NormalizeName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
