package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board is a PDQ editorial board. Boards own topics.
type Board struct {
	ID        uuid.UUID
	Name      string
	ManagerID uuid.UUID
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Topic is a review subject assigned to exactly one board.
type Topic struct {
	ID                uuid.UUID
	Name              string
	BoardID           uuid.UUID
	DefaultReviewerID uuid.UUID
	Active            bool
	TopicGroup        *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Article is a journal article reviewed against one or more topics.
type Article struct {
	ID        uuid.UUID
	SourceID  string
	TopicIDs  []uuid.UUID
	CreatedAt time.Time
}

// HasTopic reports whether the article is associated with topicID.
func (a Article) HasTopic(topicID uuid.UUID) bool {
	for _, id := range a.TopicIDs {
		if id == topicID {
			return true
		}
	}
	return false
}

// Meeting is a scheduled board meeting with an agenda.
type Meeting struct {
	ID   uuid.UUID
	Name string
	Date time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
