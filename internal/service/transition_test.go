package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports/mocks"
)

type recordingObserver struct {
	mu        sync.Mutex
	vacancies []domain.Vacancy
}

func (o *recordingObserver) OnVacancy(_ context.Context, v domain.Vacancy) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.vacancies = append(o.vacancies, v)
}

type transitionFixture struct {
	events   *memory.EventRepo
	entries  *memory.EntryStore
	inbox    *memory.Inbox
	clock    *fakeClock
	observer *recordingObserver
	tm       *TransitionManager
}

func newTransitionFixture(t *testing.T, capacity int, entries map[string]domain.EntryStatus) *transitionFixture {
	t.Helper()
	f := &transitionFixture{
		events:   memory.NewEventRepo(),
		entries:  memory.NewEntryStore(),
		inbox:    memory.NewInbox(),
		clock:    newFakeClock(),
		observer: &recordingObserver{},
	}
	f.tm = NewTransitionManager(f.entries, f.events, f.inbox, f.clock, newTestLogger(t))
	f.tm.SetVacancyObserver(f.observer)

	ctx := context.Background()
	require.NoError(t, f.events.Create(ctx, &domain.Event{ID: "e1", Status: domain.EventStatusOpen, DrawCapacity: capacity}))
	for id, st := range entries {
		require.NoError(t, f.entries.Insert(ctx, &domain.Entry{
			EventID:   "e1",
			EntrantID: id,
			Status:    st,
			JoinedAt:  testEpoch,
			Version:   1,
		}, 0))
	}
	return f
}

func TestTransition_LegalMove(t *testing.T) {
	f := newTransitionFixture(t, 2, map[string]domain.EntryStatus{"u1": domain.EntryStatusWaiting})

	err := f.tm.Transition(context.Background(), "e1", "u1", domain.EntryStatusWaiting, domain.EntryStatusSelected)

	require.NoError(t, err)
	e, err := f.entries.Get(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusSelected, e.Status)
	assert.Equal(t, int64(2), e.Version)
	assert.Nil(t, e.DecidedAt)

	recs := f.inbox.All()
	require.Len(t, recs, 1)
	assert.Equal(t, domain.NotificationChosen, recs[0].Type)
	assert.Equal(t, "u1", recs[0].EntrantID)
	assert.Equal(t, "e1", recs[0].EventID)
	assert.Equal(t, testEpoch, recs[0].CreatedAt)
	assert.Empty(t, f.observer.vacancies)
}

func TestTransition_IllegalEdges(t *testing.T) {
	entries := mocks.NewMockEntryStore(t)
	notifier := mocks.NewMockNotificationPort(t)
	tm := NewTransitionManager(entries, memory.NewEventRepo(), notifier, newFakeClock(), newTestLogger(t))

	illegal := [][2]domain.EntryStatus{
		{domain.EntryStatusWaiting, domain.EntryStatusAccepted},
		{domain.EntryStatusWaiting, domain.EntryStatusDeclined},
		{domain.EntryStatusSelected, domain.EntryStatusEnrolled},
		{domain.EntryStatusSelected, domain.EntryStatusCanceled},
		{domain.EntryStatusDeclined, domain.EntryStatusSelected},
		{domain.EntryStatusCanceled, domain.EntryStatusWaiting},
		{domain.EntryStatusEnrolled, domain.EntryStatusDeclined},
	}

	for _, edge := range illegal {
		err := tm.Transition(context.Background(), "e1", "u1", edge[0], edge[1])
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", edge[0], edge[1])
	}
}

func TestTransition_Stale(t *testing.T) {
	f := newTransitionFixture(t, 2, map[string]domain.EntryStatus{"u1": domain.EntryStatusSelected})

	err := f.tm.Transition(context.Background(), "e1", "u1", domain.EntryStatusWaiting, domain.EntryStatusSelected)

	assert.ErrorIs(t, err, domain.ErrStaleState)
	assert.Empty(t, f.inbox.All())
}

func TestTransition_MissingEntry(t *testing.T) {
	f := newTransitionFixture(t, 2, nil)

	err := f.tm.Transition(context.Background(), "e1", "ghost", domain.EntryStatusWaiting, domain.EntryStatusSelected)

	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestTransition_LostCompareAndSwap(t *testing.T) {
	entries := mocks.NewMockEntryStore(t)
	notifier := mocks.NewMockNotificationPort(t)
	tm := NewTransitionManager(entries, memory.NewEventRepo(), notifier, newFakeClock(), newTestLogger(t))

	entries.EXPECT().Get(mock.Anything, "e1", "u1").
		Return(&domain.Entry{EventID: "e1", EntrantID: "u1", Status: domain.EntryStatusSelected, Version: 4}, nil)
	entries.EXPECT().CompareAndSwapStatus(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.ExpectedVersion == 4 &&
			c.ExpectedStatus == domain.EntryStatusSelected &&
			c.NewStatus == domain.EntryStatusAccepted &&
			c.DecidedAt != nil &&
			c.ActiveCap == 0
	})).Return(false, nil)

	err := tm.Transition(context.Background(), "e1", "u1", domain.EntryStatusSelected, domain.EntryStatusAccepted)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTransition_StoreFailure(t *testing.T) {
	entries := mocks.NewMockEntryStore(t)
	notifier := mocks.NewMockNotificationPort(t)
	tm := NewTransitionManager(entries, memory.NewEventRepo(), notifier, newFakeClock(), newTestLogger(t))

	entries.EXPECT().Get(mock.Anything, "e1", "u1").
		Return(&domain.Entry{EventID: "e1", EntrantID: "u1", Status: domain.EntryStatusSelected, Version: 1}, nil)
	entries.EXPECT().CompareAndSwapStatus(mock.Anything, mock.Anything).Return(false, domain.ErrStoreUnavailable)

	err := tm.Transition(context.Background(), "e1", "u1", domain.EntryStatusSelected, domain.EntryStatusDeclined)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestTransition_CapacityGuard(t *testing.T) {
	f := newTransitionFixture(t, 1, map[string]domain.EntryStatus{
		"u1": domain.EntryStatusAccepted,
		"u2": domain.EntryStatusWaiting,
	})

	err := f.tm.Transition(context.Background(), "e1", "u2", domain.EntryStatusWaiting, domain.EntryStatusSelected)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	e, err := f.entries.Get(context.Background(), "e1", "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusWaiting, e.Status)
}

func TestTransition_StoreEnforcesActiveCap(t *testing.T) {
	entries := mocks.NewMockEntryStore(t)
	notifier := mocks.NewMockNotificationPort(t)
	events := memory.NewEventRepo()
	require.NoError(t, events.Create(context.Background(), &domain.Event{ID: "e1", Status: domain.EventStatusOpen, DrawCapacity: 2}))
	tm := NewTransitionManager(entries, events, notifier, newFakeClock(), newTestLogger(t))

	entries.EXPECT().Get(mock.Anything, "e1", "u2").
		Return(&domain.Entry{EventID: "e1", EntrantID: "u2", Status: domain.EntryStatusWaiting, Version: 1}, nil)
	// another instance fills the last slot between the count and the swap
	entries.EXPECT().CountByStatus(mock.Anything, "e1").
		Return(map[domain.EntryStatus]int{domain.EntryStatusSelected: 1}, nil)
	entries.EXPECT().CompareAndSwapStatus(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
		return c.ActiveCap == 2 && c.NewStatus == domain.EntryStatusSelected && c.DecidedAt == nil
	})).Return(false, domain.ErrCapacityExceeded)

	err := tm.Transition(context.Background(), "e1", "u2", domain.EntryStatusWaiting, domain.EntryStatusSelected)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTransition_DispatchFailureIsIgnored(t *testing.T) {
	entries := memory.NewEntryStore()
	notifier := mocks.NewMockNotificationPort(t)
	tm := NewTransitionManager(entries, memory.NewEventRepo(), notifier, newFakeClock(), newTestLogger(t))

	require.NoError(t, entries.Insert(context.Background(), &domain.Entry{
		EventID:   "e1",
		EntrantID: "u1",
		Status:    domain.EntryStatusSelected,
		Version:   1,
	}, 0))
	notifier.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(rec domain.NotificationRecord) bool {
		return rec.Type == domain.NotificationAccepted
	})).Return(errors.New("smtp down"))

	err := tm.Transition(context.Background(), "e1", "u1", domain.EntryStatusSelected, domain.EntryStatusAccepted)

	require.NoError(t, err)
	e, err := entries.Get(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusAccepted, e.Status)
}

func TestTransition_DispatchSurvivesCancel(t *testing.T) {
	entries := memory.NewEntryStore()
	notifier := mocks.NewMockNotificationPort(t)
	tm := NewTransitionManager(entries, memory.NewEventRepo(), notifier, newFakeClock(), newTestLogger(t))

	require.NoError(t, entries.Insert(context.Background(), &domain.Entry{
		EventID:   "e1",
		EntrantID: "u1",
		Status:    domain.EntryStatusSelected,
		Version:   1,
	}, 0))

	ctx, cancel := context.WithCancel(context.Background())
	var dispatchCtxErr error
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything).RunAndReturn(
		func(dctx context.Context, _ domain.NotificationRecord) error {
			cancel()
			dispatchCtxErr = dctx.Err()
			return nil
		})

	require.NoError(t, tm.Transition(ctx, "e1", "u1", domain.EntryStatusSelected, domain.EntryStatusDeclined))
	assert.NoError(t, dispatchCtxErr)
}

func TestTransition_VacancyOnlyWhenSlotFreed(t *testing.T) {
	f := newTransitionFixture(t, 3, map[string]domain.EntryStatus{
		"waiting":  domain.EntryStatusWaiting,
		"selected": domain.EntryStatusSelected,
		"accepted": domain.EntryStatusAccepted,
	})
	ctx := context.Background()

	require.NoError(t, f.tm.Transition(ctx, "e1", "waiting", domain.EntryStatusWaiting, domain.EntryStatusCanceled))
	assert.Empty(t, f.observer.vacancies)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.tm.Transition(ctx, "e1", "selected", domain.EntryStatusSelected, domain.EntryStatusDeclined))
	require.NoError(t, f.tm.Transition(ctx, "e1", "accepted", domain.EntryStatusAccepted, domain.EntryStatusDeclined))

	require.Len(t, f.observer.vacancies, 2)
	v := f.observer.vacancies[0]
	assert.Equal(t, "e1", v.EventID)
	assert.Equal(t, "selected", v.EntrantID)
	assert.Equal(t, 1, v.Count)
	assert.Equal(t, testEpoch.Add(time.Minute), v.DecidedAt)

	e, err := f.entries.Get(ctx, "e1", "selected")
	require.NoError(t, err)
	require.NotNil(t, e.DecidedAt)
	assert.Equal(t, v.DecidedAt, *e.DecidedAt)
}
