package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports/mocks"
)

func TestEventService_CreateEvent(t *testing.T) {
	clock := newFakeClock()
	svc := NewEventService(memory.NewEventRepo(), memory.NewEntryStore(), clock)
	closesAt := clock.Now().Add(24 * time.Hour)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:                "Pottery for beginners",
		DrawCapacity:         10,
		WaitingListCapacity:  50,
		RegistrationClosesAt: &closesAt,
		Open:                 true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusOpen, event.Status)
	assert.Equal(t, clock.Now(), event.CreatedAt)

	stored, err := svc.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pottery for beginners", stored.Title)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	clock := newFakeClock()
	past := clock.Now().Add(-time.Hour)

	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing title", domain.CreateEventInput{DrawCapacity: 1}},
		{"zero capacity", domain.CreateEventInput{Title: "x"}},
		{"negative waiting list", domain.CreateEventInput{Title: "x", DrawCapacity: 1, WaitingListCapacity: -1}},
		{"deadline in the past", domain.CreateEventInput{Title: "x", DrawCapacity: 1, RegistrationClosesAt: &past}},
	}

	svc := NewEventService(mocks.NewMockEventRepo(t), memory.NewEntryStore(), clock)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_StartsAsDraft(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, memory.NewEntryStore(), newFakeClock())

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Status == domain.EventStatusDraft
	})).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{Title: "x", DrawCapacity: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
}

func TestEventService_Lifecycle(t *testing.T) {
	svc := NewEventService(memory.NewEventRepo(), memory.NewEntryStore(), newFakeClock())
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.CreateEventInput{Title: "x", DrawCapacity: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Close(ctx, event.ID), domain.ErrEventStatus)
	require.NoError(t, svc.Open(ctx, event.ID))
	assert.ErrorIs(t, svc.Open(ctx, event.ID), domain.ErrEventStatus)
	require.NoError(t, svc.Close(ctx, event.ID))

	got, err := svc.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusClosed, got.Status)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEventService_GetDetails(t *testing.T) {
	h := newHarness(t, 3)
	svc := NewEventService(h.events, h.entries, h.clock)
	event := h.addEvent(t, 2)
	h.join(t, event.ID, "u1", "u2", "u3")
	_, err := h.svc.Draw(context.Background(), event.ID, "r1", 1)
	require.NoError(t, err)

	details, err := svc.GetDetails(context.Background(), event.ID)

	require.NoError(t, err)
	assert.Equal(t, event.ID, details.Event.ID)
	assert.Equal(t, 1, details.AvailableSlots)
	assert.Equal(t, 2, details.Counts[domain.EntryStatusWaiting])
	assert.Equal(t, 1, details.Counts[domain.EntryStatusSelected])
	assert.Len(t, details.Counts, len(domain.AllEntryStatuses))

	_, err = svc.GetDetails(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
