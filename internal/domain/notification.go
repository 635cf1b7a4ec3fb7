package domain

import "time"

type NotificationType string

const (
	NotificationChosen   NotificationType = "chosen"
	NotificationAccepted NotificationType = "accepted"
	NotificationDeclined NotificationType = "declined"
	NotificationCanceled NotificationType = "canceled"
	NotificationEnrolled NotificationType = "enrolled"
)

type NotificationRecord struct {
	ID        string           `json:"id"`
	EntrantID string           `json:"entrant_id"`
	EventID   string           `json:"event_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
}
