package domain

// Stable text ids of the state values the lifecycle rules depend on.
const (
	StateTextOnAgenda           = "on_agenda"
	StateTextFinalBoardDecision = "final_board_decision"
)

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeBoard       EntityType = "BOARD"
	EntityTypeTopic       EntityType = "TOPIC"
	EntityTypeArticle     EntityType = "ARTICLE"
	EntityTypeMeeting     EntityType = "MEETING"
	EntityTypeStateRecord EntityType = "STATE_RECORD"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeBoard, EntityTypeTopic, EntityTypeArticle,
		EntityTypeMeeting, EntityTypeStateRecord:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionVoid   AuditAction = "VOID"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionVoid:
		return true
	}
	return false
}

// StateEventKind distinguishes lifecycle notifications.
type StateEventKind string

const (
	StateEventEntered StateEventKind = "STATE_ENTERED"
	StateEventVoided  StateEventKind = "STATE_VOIDED"
)

func (k StateEventKind) String() string { return string(k) }
