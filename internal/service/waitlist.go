package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

const (
	transitionAttempts = 3
	reconcileBucket    = time.Minute
)

// WaitlistService is the entry point used by handlers and the scheduler.
type WaitlistService struct {
	events      ports.EventRepo
	entries     ports.EntryStore
	transitions transitioner
	lottery     drawer
	seeds       SeedSource
	clock       Clock
	drawTimeout time.Duration
	logger      logger.Logger
}

func NewWaitlistService(
	events ports.EventRepo,
	entries ports.EntryStore,
	transitions transitioner,
	lottery drawer,
	seeds SeedSource,
	clock Clock,
	drawTimeout time.Duration,
	logger logger.Logger,
) *WaitlistService {
	return &WaitlistService{
		events:      events,
		entries:     entries,
		transitions: transitions,
		lottery:     lottery,
		seeds:       seeds,
		clock:       clock,
		drawTimeout: drawTimeout,
		logger:      logger,
	}
}

func (s *WaitlistService) JoinWaitlist(ctx context.Context, input domain.JoinInput) (*domain.Entry, error) {
	if input.EntrantID == "" {
		return nil, fmt.Errorf("%w: entrant_id is required", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusOpen {
		return nil, domain.ErrEventNotOpen
	}

	if err = validateLocation(event, input.Location); err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		EventID:   event.ID,
		EntrantID: input.EntrantID,
		Status:    domain.EntryStatusWaiting,
		JoinedAt:  s.clock.Now(),
		Location:  input.Location,
		Version:   1,
	}
	// The store checks duplicates before the waiting cap, in one step.
	waitingCap := 0
	if event.HasWaitingListCap() {
		waitingCap = event.WaitingListCapacity
	}
	if err = s.entries.Insert(ctx, entry, waitingCap); err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	s.logger.Info("entrant joined waiting list",
		logger.String("event_id", event.ID),
		logger.String("entrant_id", input.EntrantID),
	)

	return entry, nil
}

func validateLocation(event *domain.Event, loc *domain.Geolocation) error {
	if loc == nil {
		if event.RequiresGeolocation {
			return fmt.Errorf("%w: this event requires geolocation", domain.ErrValidation)
		}
		return nil
	}
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	return nil
}

// Draw runs a lottery round. A zero needed count asks for the event's full
// draw capacity; the engine still caps it by what is left.
func (s *WaitlistService) Draw(ctx context.Context, eventID, roundID string, needed int) ([]string, error) {
	if needed < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", domain.ErrValidation)
	}
	if needed == 0 {
		event, err := s.events.GetByID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		needed = event.DrawCapacity
	}

	if s.drawTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.drawTimeout)
		defer cancel()
	}

	return s.lottery.Draw(ctx, eventID, roundID, needed, s.seeds.Seed())
}

func (s *WaitlistService) Decide(ctx context.Context, eventID, entrantID string, decision domain.Decision) error {
	to, ok := decision.Target()
	if !ok {
		return fmt.Errorf("%w: unknown decision %q", domain.ErrValidation, decision)
	}
	return s.moveTo(ctx, eventID, entrantID, to)
}

// Cancel withdraws a waiting entrant from the pool.
func (s *WaitlistService) Cancel(ctx context.Context, eventID, entrantID string) error {
	return s.moveTo(ctx, eventID, entrantID, domain.EntryStatusCanceled)
}

// Enroll finalises an accepted entrant.
func (s *WaitlistService) Enroll(ctx context.Context, eventID, entrantID string) error {
	return s.moveTo(ctx, eventID, entrantID, domain.EntryStatusEnrolled)
}

// moveTo re-reads the entry and retries the transition when it lost a race,
// so a second concurrent request observes the first one's outcome.
func (s *WaitlistService) moveTo(ctx context.Context, eventID, entrantID string, to domain.EntryStatus) error {
	var lastErr error
	for attempt := 0; attempt < transitionAttempts; attempt++ {
		entry, err := s.entries.Get(ctx, eventID, entrantID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}
		if !domain.CanTransition(entry.Status, to) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, entry.Status, to)
		}

		err = s.transitions.Transition(ctx, eventID, entrantID, entry.Status, to)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrStaleState) && !errors.Is(err, domain.ErrConflict) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (s *WaitlistService) GetStatusCounts(ctx context.Context, eventID string) (map[domain.EntryStatus]int, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	counts, err := s.entries.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	res := make(map[domain.EntryStatus]int, len(domain.AllEntryStatuses))
	for _, st := range domain.AllEntryStatuses {
		res[st] = counts[st]
	}

	return res, nil
}

func (s *WaitlistService) ListEntries(ctx context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.entries.ListByStatus(ctx, eventID, status)
}

// CloseDue closes open events whose registration deadline passed and runs
// their initial draw.
func (s *WaitlistService) CloseDue(ctx context.Context) ([]domain.DrawSummary, error) {
	due, err := s.events.ListDueForClose(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}

	var res []domain.DrawSummary
	for _, e := range due {
		err = s.events.UpdateStatus(ctx, e.ID, domain.EventStatusOpen, domain.EventStatusClosed)
		if err != nil {
			if !errors.Is(err, domain.ErrEventStatus) {
				s.logger.Error("failed to close event",
					logger.String("event_id", e.ID),
					logger.String("error", err.Error()),
				)
			}
			continue
		}

		s.logger.Info("registration closed", logger.String("event_id", e.ID))

		roundID := "close:" + e.ID
		selected, err := s.Draw(ctx, e.ID, roundID, e.DrawCapacity)
		if err != nil {
			s.logger.Error("initial draw failed",
				logger.String("event_id", e.ID),
				logger.String("round_id", roundID),
				logger.String("error", err.Error()),
			)
			continue
		}
		res = append(res, domain.DrawSummary{EventID: e.ID, RoundID: roundID, Selected: selected})
	}

	return res, nil
}

// Reconcile refills closed events whose active count dropped below capacity
// while entrants are still waiting, e.g. after a failed replacement draw.
// Round ids are bucketed by time so overlapping sweeps share a round.
func (s *WaitlistService) Reconcile(ctx context.Context) ([]domain.DrawSummary, error) {
	closed, err := s.events.ListByStatus(ctx, domain.EventStatusClosed)
	if err != nil {
		return nil, fmt.Errorf("list closed events: %w", err)
	}

	bucket := s.clock.Now().Truncate(reconcileBucket).Unix()

	var res []domain.DrawSummary
	for _, e := range closed {
		counts, err := s.entries.CountByStatus(ctx, e.ID)
		if err != nil {
			s.logger.Error("failed to count entries",
				logger.String("event_id", e.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		deficit := e.DrawCapacity - domain.ActiveCount(counts)
		if deficit <= 0 || counts[domain.EntryStatusWaiting] == 0 {
			continue
		}

		roundID := fmt.Sprintf("reconcile:%s:%d", e.ID, bucket)
		selected, err := s.Draw(ctx, e.ID, roundID, deficit)
		if err != nil {
			s.logger.Error("reconciliation draw failed",
				logger.String("event_id", e.ID),
				logger.String("round_id", roundID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if len(selected) > 0 {
			res = append(res, domain.DrawSummary{EventID: e.ID, RoundID: roundID, Selected: selected})
		}
	}

	return res, nil
}
