package domain

import (
	"sort"
	"strings"
)

// Markers rendered when a later-stage record has nothing attached.
const (
	NoDecisionsMarker = "NO DECISIONS RECORDED"
	NoMeetingsMarker  = "NO MEETINGS RECORDED"
)

const dateLayout = "2006-01-02"

// SummaryKind classifies which later-stage summary a record produces.
type SummaryKind int

const (
	SummaryBoardManagerAction SummaryKind = iota
	SummaryBoardDecision
	SummaryOnAgenda
)

// StateSummary is the display-independent data behind a later state
// description. Items are already ordered for rendering.
type StateSummary struct {
	Kind      SummaryKind
	StateName string
	Items     []string
}

// Summarize computes the summary of r. It returns false when the record's
// sequence does not exceed threshold.
func (r *StateRecord) Summarize(threshold int) (StateSummary, bool) {
	if r == nil || r.Value.Sequence <= threshold {
		return StateSummary{}, false
	}

	switch r.Value.TextID {
	case StateTextFinalBoardDecision:
		names := make([]string, 0, len(r.Decisions))
		for _, d := range r.Decisions {
			names = append(names, d.Value.Name)
		}
		sort.Strings(names)
		return StateSummary{Kind: SummaryBoardDecision, StateName: r.Value.Name, Items: names}, true

	case StateTextOnAgenda:
		// Meetings keep the order they were linked in.
		items := make([]string, 0, len(r.Meetings))
		for _, m := range r.Meetings {
			items = append(items, m.Name+" - "+m.Date.Format(dateLayout))
		}
		return StateSummary{Kind: SummaryOnAgenda, StateName: r.Value.Name, Items: items}, true

	default:
		return StateSummary{Kind: SummaryBoardManagerAction, StateName: r.Value.Name}, true
	}
}

func (s StateSummary) String() string {
	switch s.Kind {
	case SummaryBoardDecision:
		if len(s.Items) == 0 {
			return NoDecisionsMarker
		}
		return "Editorial Board Decision (" + strings.Join(s.Items, "; ") + ")"
	case SummaryOnAgenda:
		if len(s.Items) == 0 {
			return NoMeetingsMarker
		}
		return "On Agenda (" + strings.Join(s.Items, "; ") + ")"
	default:
		return "Board Manager Action (" + s.StateName + ")"
	}
}

// LaterStateDescription returns the human-readable summary of a record that
// has progressed past threshold, or "" otherwise.
func (r *StateRecord) LaterStateDescription(threshold int) string {
	s, ok := r.Summarize(threshold)
	if !ok {
		return ""
	}
	return s.String()
}
