package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type notificationTemplate struct {
	kind  domain.NotificationType
	title string
	body  string
}

var notificationTemplates = map[domain.EntryStatus]notificationTemplate{
	domain.EntryStatusSelected: {
		kind:  domain.NotificationChosen,
		title: "You have been selected",
		body:  "You were chosen in the lottery. Accept or decline your invitation to keep the spot.",
	},
	domain.EntryStatusAccepted: {
		kind:  domain.NotificationAccepted,
		title: "Invitation accepted",
		body:  "Your spot is reserved. The organizer will confirm your enrollment.",
	},
	domain.EntryStatusDeclined: {
		kind:  domain.NotificationDeclined,
		title: "Invitation declined",
		body:  "You declined your invitation. Your spot has been released to the waiting list.",
	},
	domain.EntryStatusCanceled: {
		kind:  domain.NotificationCanceled,
		title: "Left the waiting list",
		body:  "You are no longer on the waiting list for this event.",
	},
	domain.EntryStatusEnrolled: {
		kind:  domain.NotificationEnrolled,
		title: "Enrollment confirmed",
		body:  "You are enrolled. See you at the event!",
	},
}

func newNotification(eventID, entrantID string, to domain.EntryStatus, now time.Time) (domain.NotificationRecord, bool) {
	tpl, ok := notificationTemplates[to]
	if !ok {
		return domain.NotificationRecord{}, false
	}

	return domain.NotificationRecord{
		ID:        uuid.New().String(),
		EntrantID: entrantID,
		EventID:   eventID,
		Type:      tpl.kind,
		Title:     tpl.title,
		Body:      tpl.body,
		CreatedAt: now,
	}, true
}
