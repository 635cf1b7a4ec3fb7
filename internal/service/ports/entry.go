package ports

import (
	"context"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// EntryStore is the durable per-event collection of waitlist entries.
//
// Insert fails with ErrDuplicateEntry when the entrant is already on the
// event's list, and with ErrWaitlistFull when waitingCap > 0 and the event
// already has waitingCap waiting entries. Both checks and the write are one
// atomic step.
//
// CompareAndSwapStatus is the only mutation of an existing entry; it
// returns ok=false without an error when the stored version or status no
// longer match the change's expectations. A change with ActiveCap > 0 that
// moves the entry into the active set fails with ErrCapacityExceeded when
// the event already holds ActiveCap active entries.
type EntryStore interface {
	Get(ctx context.Context, eventID, entrantID string) (*domain.Entry, error)
	ListByStatus(ctx context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error)
	CountByStatus(ctx context.Context, eventID string) (map[domain.EntryStatus]int, error)
	Insert(ctx context.Context, e *domain.Entry, waitingCap int) error
	CompareAndSwapStatus(ctx context.Context, change domain.StatusChange) (bool, error)
}
