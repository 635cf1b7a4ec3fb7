package domain

import "time"

type EventStatus string

const (
	EventStatusDraft  EventStatus = "draft"
	EventStatusOpen   EventStatus = "open"
	EventStatusClosed EventStatus = "closed"
)

type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Status               EventStatus `json:"status"`
	DrawCapacity         int         `json:"draw_capacity"`
	WaitingListCapacity  int         `json:"waiting_list_capacity"` // 0 means unlimited
	RequiresGeolocation  bool        `json:"requires_geolocation"`
	RegistrationClosesAt *time.Time  `json:"registration_closes_at,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// HasWaitingListCap reports whether the event limits its waiting pool.
func (e *Event) HasWaitingListCap() bool {
	return e.WaitingListCapacity > 0
}

type EventDetails struct {
	Event          Event               `json:"event"`
	Counts         map[EntryStatus]int `json:"counts"`
	AvailableSlots int                 `json:"available_slots"`
}

type CreateEventInput struct {
	Title                string
	Description          string
	DrawCapacity         int
	WaitingListCapacity  int
	RequiresGeolocation  bool
	RegistrationClosesAt *time.Time
	Open                 bool
}
