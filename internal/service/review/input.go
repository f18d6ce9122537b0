package review

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

// DecisionInput is one board decision for a final_board_decision entry.
type DecisionInput struct {
	DecisionValueID uuid.UUID
	MeetingDate     string
	Discussed       bool
}

// EnterStateInput holds the parameters for moving an article/topic pair into a state.
type EnterStateInput struct {
	ArticleID   uuid.UUID
	TopicID     uuid.UUID
	StateTextID string
	Decisions   []DecisionInput
	MeetingIDs  []uuid.UUID
	DeciderIDs  []uuid.UUID
	Comment     *string
}

// Validate checks all fields and collects all errors.
func (i EnterStateInput) Validate(maxComment int) error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if strings.TrimSpace(i.StateTextID) == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	}
	for _, d := range i.Decisions {
		if d.DecisionValueID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "decisions", Message: "decision value required"})
			break
		}
	}
	if hasDuplicates(i.MeetingIDs) {
		errs = append(errs, domain.FieldError{Field: "meeting_ids", Message: "duplicate meeting"})
	}
	if i.Comment != nil {
		errs = append(errs, validateBody("comment", *i.Comment, maxComment)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VoidStateInput holds the parameters for marking a record as entered in error.
type VoidStateInput struct {
	RecordID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i VoidStateInput) Validate() error {
	if i.RecordID == uuid.Nil {
		return domain.NewValidationError("record_id", "required")
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on a record.
type AddCommentInput struct {
	RecordID uuid.UUID
	Body     string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate(maxComment int) error {
	var errs []domain.FieldError
	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	errs = append(errs, validateBody("body", i.Body, maxComment)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditCommentInput holds the parameters for rewriting a comment.
type EditCommentInput struct {
	RecordID  uuid.UUID
	CommentID uuid.UUID
	Body      string
}

// Validate checks all fields and collects all errors.
func (i EditCommentInput) Validate(maxComment int) error {
	var errs []domain.FieldError
	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = append(errs, validateBody("body", i.Body, maxComment)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateBody(field, body string, max int) []domain.FieldError {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if max > 0 && utf8.RuneCountInString(trimmed) > max {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
