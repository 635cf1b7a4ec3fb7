package domain

import "time"

type EntryStatus string

const (
	EntryStatusWaiting  EntryStatus = "waiting"
	EntryStatusSelected EntryStatus = "selected"
	EntryStatusAccepted EntryStatus = "accepted"
	EntryStatusEnrolled EntryStatus = "enrolled"
	EntryStatusDeclined EntryStatus = "declined"
	EntryStatusCanceled EntryStatus = "canceled"
)

// AllEntryStatuses lists every status in lifecycle order.
var AllEntryStatuses = []EntryStatus{
	EntryStatusWaiting,
	EntryStatusSelected,
	EntryStatusAccepted,
	EntryStatusEnrolled,
	EntryStatusDeclined,
	EntryStatusCanceled,
}

// ActiveStatuses hold a slot counted against the event's draw capacity.
var ActiveStatuses = []EntryStatus{EntryStatusSelected, EntryStatusAccepted, EntryStatusEnrolled}

var legalTransitions = map[EntryStatus][]EntryStatus{
	EntryStatusWaiting:  {EntryStatusSelected, EntryStatusCanceled},
	EntryStatusSelected: {EntryStatusAccepted, EntryStatusDeclined},
	EntryStatusAccepted: {EntryStatusEnrolled, EntryStatusDeclined},
}

func (s EntryStatus) Valid() bool {
	for _, st := range AllEntryStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s EntryStatus) IsActive() bool {
	for _, st := range ActiveStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s EntryStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// CanTransition reports whether from -> to is in the legal status graph.
func CanTransition(from, to EntryStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Vacates reports whether from -> to frees a slot that was counted against capacity.
func Vacates(from, to EntryStatus) bool {
	return from.IsActive() && (to == EntryStatusDeclined || to == EntryStatusCanceled)
}

// ActiveCount sums the active statuses of a status histogram.
func ActiveCount(counts map[EntryStatus]int) int {
	n := 0
	for _, st := range ActiveStatuses {
		n += counts[st]
	}
	return n
}

type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Entry struct {
	EventID   string       `json:"event_id"`
	EntrantID string       `json:"entrant_id"`
	Status    EntryStatus  `json:"status"`
	JoinedAt  time.Time    `json:"joined_at"`
	DecidedAt *time.Time   `json:"decided_at,omitempty"`
	Location  *Geolocation `json:"location,omitempty"`
	Version   int64        `json:"version"`
}

// StatusChange is a conditional status update: it applies only while the
// stored entry still has ExpectedVersion and ExpectedStatus.
type StatusChange struct {
	EventID         string
	EntrantID       string
	ExpectedVersion int64
	ExpectedStatus  EntryStatus
	NewStatus       EntryStatus
	DecidedAt       *time.Time
	// ActiveCap bounds the event's active entries; 0 means unchecked.
	ActiveCap int
}

// EntersActive reports whether the change moves an entry into the active set.
func (c StatusChange) EntersActive() bool {
	return !c.ExpectedStatus.IsActive() && c.NewStatus.IsActive()
}

type JoinInput struct {
	EventID   string
	EntrantID string
	Location  *Geolocation
}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// Target returns the entry status a decision moves to.
func (d Decision) Target() (EntryStatus, bool) {
	switch d {
	case DecisionAccept:
		return EntryStatusAccepted, true
	case DecisionDecline:
		return EntryStatusDeclined, true
	default:
		return "", false
	}
}

// Vacancy is emitted when a decline or cancellation frees an active slot.
type Vacancy struct {
	EventID   string
	EntrantID string
	DecidedAt time.Time
	Count     int
}
