package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var _ ports.EventRepo = (*EventRepo)(nil)

type EventRepo struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
}

func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[string]*domain.Event)}
}

func (r *EventRepo) Create(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[e.ID] = copyEvent(e)
	return nil
}

func (r *EventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return copyEvent(e), nil
}

func (r *EventRepo) List(_ context.Context) ([]*domain.Event, error) {
	return r.filter(func(*domain.Event) bool { return true }), nil
}

func (r *EventRepo) ListByStatus(_ context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.Status == status }), nil
}

func (r *EventRepo) ListDueForClose(_ context.Context, now time.Time) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool {
		return e.Status == domain.EventStatusOpen &&
			e.RegistrationClosesAt != nil &&
			!e.RegistrationClosesAt.After(now)
	}), nil
}

func (r *EventRepo) UpdateStatus(_ context.Context, id string, from, to domain.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.Status != from {
		return domain.ErrEventStatus
	}
	e.Status = to
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *EventRepo) filter(keep func(*domain.Event) bool) []*domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if keep(e) {
			res = append(res, copyEvent(e))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res
}
