// Package repository implements the storage ports on PostgreSQL.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

const uniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// storeErr marks a driver failure as ErrStoreUnavailable while keeping the
// cause reachable through errors.Is / errors.As.
func storeErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var (
	_ ports.EventRepo         = (*EventRepository)(nil)
	_ ports.EntryStore        = (*EntryRepository)(nil)
	_ ports.RoundStore        = (*RoundRepository)(nil)
	_ ports.EntrantRepo       = (*EntrantRepository)(nil)
	_ ports.NotificationInbox = (*NotificationRepository)(nil)
)
