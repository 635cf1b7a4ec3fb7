package dto

import (
	"time"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type EventResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Status               string  `json:"status"`
	DrawCapacity         int     `json:"draw_capacity"`
	WaitingListCapacity  int     `json:"waiting_list_capacity"`
	RequiresGeolocation  bool    `json:"requires_geolocation"`
	RegistrationClosesAt *string `json:"registration_closes_at,omitempty"`
	CreatedAt            string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse  `json:"event"`
	Counts         map[string]int `json:"counts"`
	AvailableSlots int            `json:"available_slots"`
}

type EntryResponse struct {
	EventID   string   `json:"event_id"`
	EntrantID string   `json:"entrant_id"`
	Status    string   `json:"status"`
	JoinedAt  string   `json:"joined_at"`
	DecidedAt *string  `json:"decided_at,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type DrawResponse struct {
	EventID  string   `json:"event_id"`
	RoundID  string   `json:"round_id"`
	Selected []string `json:"selected"`
}

type EntrantResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Status:               string(e.Status),
		DrawCapacity:         e.DrawCapacity,
		WaitingListCapacity:  e.WaitingListCapacity,
		RequiresGeolocation:  e.RequiresGeolocation,
		RegistrationClosesAt: formatOptional(e.RegistrationClosesAt),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		Counts:         ToCountsResponse(d.Counts),
		AvailableSlots: d.AvailableSlots,
	}
}

func ToCountsResponse(counts map[domain.EntryStatus]int) map[string]int {
	res := make(map[string]int, len(domain.AllEntryStatuses))
	for _, st := range domain.AllEntryStatuses {
		res[string(st)] = counts[st]
	}
	return res
}

func ToEntryResponse(e *domain.Entry) EntryResponse {
	resp := EntryResponse{
		EventID:   e.EventID,
		EntrantID: e.EntrantID,
		Status:    string(e.Status),
		JoinedAt:  e.JoinedAt.Format(time.RFC3339),
		DecidedAt: formatOptional(e.DecidedAt),
	}
	if e.Location != nil {
		lat, lon := e.Location.Latitude, e.Location.Longitude
		resp.Latitude, resp.Longitude = &lat, &lon
	}
	return resp
}

func ToEntrantResponse(e *domain.Entrant) EntrantResponse {
	return EntrantResponse{
		ID:             e.ID,
		Name:           e.Name,
		TelegramChatID: e.TelegramChatID,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.NotificationRecord) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		EventID:   n.EventID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
