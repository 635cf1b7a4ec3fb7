package ports

import (
	"context"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// NotificationPort accepts notification records. Its error is only ever
// logged by callers; a failed dispatch never undoes a status change.
type NotificationPort interface {
	Dispatch(ctx context.Context, rec domain.NotificationRecord) error
}

type NotificationInbox interface {
	NotificationPort
	ListByEntrant(ctx context.Context, entrantID string) ([]*domain.NotificationRecord, error)
}
