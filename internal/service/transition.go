package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

// VacancyObserver is told about every committed transition that frees an
// active slot. OnVacancy must not block.
type VacancyObserver interface {
	OnVacancy(ctx context.Context, v domain.Vacancy)
}

type eventGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}

// TransitionManager is the single writer of entry statuses. It enforces the
// legal status graph and applies each change with a versioned
// compare-and-swap.
type TransitionManager struct {
	entries   ports.EntryStore
	events    eventGetter
	notifier  ports.NotificationPort
	clock     Clock
	logger    logger.Logger
	vacancies VacancyObserver
}

func NewTransitionManager(
	entries ports.EntryStore,
	events eventGetter,
	notifier ports.NotificationPort,
	clock Clock,
	logger logger.Logger,
) *TransitionManager {
	return &TransitionManager{
		entries:  entries,
		events:   events,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// SetVacancyObserver registers the component that backfills vacated slots.
// It must be called before the manager is shared between goroutines.
func (m *TransitionManager) SetVacancyObserver(o VacancyObserver) {
	m.vacancies = o
}

// Transition moves an entry from one status to another.
//
// It fails with ErrInvalidTransition when from -> to is not a legal edge,
// with ErrStaleState when the stored entry is no longer in from, and with
// ErrConflict when a concurrent writer won the compare-and-swap. Once the
// swap commits, notification failures are only logged.
func (m *TransitionManager) Transition(ctx context.Context, eventID, entrantID string, from, to domain.EntryStatus) error {
	if !domain.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}

	entry, err := m.entries.Get(ctx, eventID, entrantID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry.Status != from {
		return fmt.Errorf("%w: expected %s, found %s", domain.ErrStaleState, from, entry.Status)
	}

	change := domain.StatusChange{
		EventID:         eventID,
		EntrantID:       entrantID,
		ExpectedVersion: entry.Version,
		ExpectedStatus:  from,
		NewStatus:       to,
	}
	if change.EntersActive() {
		// the store re-checks the cap atomically with the swap
		if change.ActiveCap, err = m.checkCapacity(ctx, eventID); err != nil {
			return err
		}
	}

	now := m.clock.Now()
	if to != domain.EntryStatusSelected {
		change.DecidedAt = &now
	}

	ok, err := m.entries.CompareAndSwapStatus(ctx, change)
	if err != nil {
		return fmt.Errorf("swap status: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s -> %s lost to another writer", domain.ErrConflict, from, to)
	}

	m.logger.Info("entry transitioned",
		logger.String("event_id", eventID),
		logger.String("entrant_id", entrantID),
		logger.String("from", string(from)),
		logger.String("to", string(to)),
	)

	m.notify(ctx, eventID, entrantID, to, now)

	if domain.Vacates(from, to) && m.vacancies != nil {
		m.vacancies.OnVacancy(ctx, domain.Vacancy{
			EventID:   eventID,
			EntrantID: entrantID,
			DecidedAt: now,
			Count:     1,
		})
	}

	return nil
}

// checkCapacity returns the event's draw capacity, failing early when it
// is already used up.
func (m *TransitionManager) checkCapacity(ctx context.Context, eventID string) (int, error) {
	event, err := m.events.GetByID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("get event: %w", err)
	}

	counts, err := m.entries.CountByStatus(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	if active := domain.ActiveCount(counts); active >= event.DrawCapacity {
		m.logger.Error("draw capacity invariant violated",
			logger.String("event_id", eventID),
			logger.Int("active", active),
			logger.Int("draw_capacity", event.DrawCapacity),
		)
		return 0, fmt.Errorf("%w: %d of %d slots active", domain.ErrCapacityExceeded, active, event.DrawCapacity)
	}

	return event.DrawCapacity, nil
}

func (m *TransitionManager) notify(ctx context.Context, eventID, entrantID string, to domain.EntryStatus, now time.Time) {
	rec, ok := newNotification(eventID, entrantID, to, now)
	if !ok {
		return
	}

	if err := m.notifier.Dispatch(context.WithoutCancel(ctx), rec); err != nil {
		m.logger.Warn("notification dispatch failed",
			logger.String("event_id", eventID),
			logger.String("entrant_id", entrantID),
			logger.String("type", string(rec.Type)),
			logger.String("error", err.Error()),
		)
	}
}
