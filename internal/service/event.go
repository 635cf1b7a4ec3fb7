package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

type EventService struct {
	repo    ports.EventRepo
	entries ports.EntryStore
	clock   Clock
}

func NewEventService(repo ports.EventRepo, entries ports.EntryStore, clock Clock) *EventService {
	return &EventService{
		repo:    repo,
		entries: entries,
		clock:   clock,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.DrawCapacity <= 0 {
		return nil, fmt.Errorf("%w: draw_capacity must be positive", domain.ErrValidation)
	}
	if input.WaitingListCapacity < 0 {
		return nil, fmt.Errorf("%w: waiting_list_capacity must not be negative", domain.ErrValidation)
	}

	now := s.clock.Now()
	if input.RegistrationClosesAt != nil && !input.RegistrationClosesAt.After(now) {
		return nil, fmt.Errorf("%w: registration_closes_at must be in the future", domain.ErrValidation)
	}

	status := domain.EventStatusDraft
	if input.Open {
		status = domain.EventStatusOpen
	}

	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                input.Title,
		Description:          input.Description,
		Status:               status,
		DrawCapacity:         input.DrawCapacity,
		WaitingListCapacity:  input.WaitingListCapacity,
		RequiresGeolocation:  input.RequiresGeolocation,
		RegistrationClosesAt: input.RegistrationClosesAt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.entries.CountByStatus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	details := &domain.EventDetails{
		Event:          *event,
		Counts:         make(map[domain.EntryStatus]int, len(domain.AllEntryStatuses)),
		AvailableSlots: max(event.DrawCapacity-domain.ActiveCount(counts), 0),
	}
	for _, st := range domain.AllEntryStatuses {
		details.Counts[st] = counts[st]
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// Open publishes a draft event so entrants can join.
func (s *EventService) Open(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, domain.EventStatusDraft, domain.EventStatusOpen)
}

// Close ends registration. Closed events take part in reconciliation draws.
func (s *EventService) Close(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, domain.EventStatusOpen, domain.EventStatusClosed)
}
