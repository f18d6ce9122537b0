package domain

import (
	"time"

	"github.com/google/uuid"
)

// StateValue is a controlled-vocabulary step of the review workflow.
// Sequence orders the values by how far review has progressed.
type StateValue struct {
	ID       uuid.UUID
	TextID   string
	Name     string
	Sequence int
}

// AcceptsDecisions reports whether board decisions may be recorded for the value.
func (v StateValue) AcceptsDecisions() bool {
	return v.TextID == StateTextFinalBoardDecision
}

// AcceptsMeetings reports whether meetings may be linked for the value.
func (v StateValue) AcceptsMeetings() bool {
	return v.TextID == StateTextOnAgenda
}

// DecisionValue is a board decision vocabulary term.
type DecisionValue struct {
	ID   uuid.UUID
	Name string
}

// Decision is a board's ruling recorded on a final_board_decision record.
type Decision struct {
	Value DecisionValue
	// MeetingDate is the review cycle label. Nothing reads it; it is kept so
	// stored decisions round-trip unchanged.
	MeetingDate string
	Discussed   bool
}

// Comment is a free-text note on a state record. ModifiedBy and ModifiedAt
// are set once the comment has been edited.
type Comment struct {
	ID         uuid.UUID
	Body       string
	UserID     uuid.UUID
	EnteredAt  time.Time
	ModifiedBy *uuid.UUID
	ModifiedAt *time.Time
}

// StateRecord is one append-only history entry of an article/topic pair
// passing into a state value.
//
// BoardID is the topic's board at the moment the record was entered. It is
// never re-derived from the topic, so reassigning the topic later leaves the
// history attributed to the original board.
type StateRecord struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	TopicID    uuid.UUID
	Value      StateValue
	BoardID    uuid.UUID
	UserID     uuid.UUID
	EnteredAt  time.Time
	Active     bool
	Current    bool
	Comments   []Comment
	Decisions  []Decision
	DeciderIDs []uuid.UUID
	Meetings   []Meeting
}

// Pair returns the article/topic key the record belongs to.
func (r StateRecord) Pair() Pair {
	return Pair{ArticleID: r.ArticleID, TopicID: r.TopicID}
}

// Pair identifies the article/topic combination a state history belongs to.
type Pair struct {
	ArticleID uuid.UUID
	TopicID   uuid.UUID
}

func (p Pair) String() string {
	return p.ArticleID.String() + "/" + p.TopicID.String()
}

// LatestActive returns the newest active record in history other than skip.
// history must be ordered newest first.
func LatestActive(history []StateRecord, skip uuid.UUID) (StateRecord, bool) {
	for _, rec := range history {
		if rec.Active && rec.ID != skip {
			return rec, true
		}
	}
	return StateRecord{}, false
}

// CountCurrent returns how many active records in records are flagged current.
func CountCurrent(records []StateRecord) int {
	n := 0
	for _, rec := range records {
		if rec.Active && rec.Current {
			n++
		}
	}
	return n
}

// StateEvent is published after a lifecycle transition commits.
type StateEvent struct {
	Kind       StateEventKind `json:"kind"`
	RecordID   uuid.UUID      `json:"record_id"`
	ArticleID  uuid.UUID      `json:"article_id"`
	TopicID    uuid.UUID      `json:"topic_id"`
	BoardID    uuid.UUID      `json:"board_id"`
	State      string         `json:"state"`
	UserID     uuid.UUID      `json:"user_id"`
	PromotedID *uuid.UUID     `json:"promoted_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
