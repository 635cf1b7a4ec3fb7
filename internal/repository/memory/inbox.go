package memory

import (
	"context"
	"sync"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var _ ports.NotificationInbox = (*Inbox)(nil)

// Inbox records dispatched notifications. It doubles as a recording
// NotificationPort in tests.
type Inbox struct {
	mu      sync.RWMutex
	records []domain.NotificationRecord
}

func NewInbox() *Inbox {
	return &Inbox{}
}

func (i *Inbox) Dispatch(_ context.Context, rec domain.NotificationRecord) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.records = append(i.records, rec)
	return nil
}

// ListByEntrant returns the entrant's notifications, newest first.
func (i *Inbox) ListByEntrant(_ context.Context, entrantID string) ([]*domain.NotificationRecord, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	res := make([]*domain.NotificationRecord, 0)
	for idx := len(i.records) - 1; idx >= 0; idx-- {
		if i.records[idx].EntrantID == entrantID {
			rec := i.records[idx]
			res = append(res, &rec)
		}
	}
	return res, nil
}

// All returns every record in dispatch order.
func (i *Inbox) All() []domain.NotificationRecord {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return append([]domain.NotificationRecord(nil), i.records...)
}
