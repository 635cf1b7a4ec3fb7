package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: testEpoch} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixedSeeds int64

func (s fixedSeeds) Seed() int64 { return int64(s) }

// harness wires the waitlist components over the in-memory stores and
// records every vacancy before handing it to the coordinator.
type harness struct {
	events      *memory.EventRepo
	entries     *memory.EntryStore
	inbox       *memory.Inbox
	clock       *fakeClock
	tm          *TransitionManager
	lottery     *LotteryEngine
	coordinator *ReplacementCoordinator
	svc         *WaitlistService

	mu        sync.Mutex
	vacancies []domain.Vacancy
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	log := newTestLogger(t)

	h := &harness{
		events:  memory.NewEventRepo(),
		entries: memory.NewEntryStore(),
		inbox:   memory.NewInbox(),
		clock:   newFakeClock(),
	}

	h.tm = NewTransitionManager(h.entries, h.events, h.inbox, h.clock, log)
	h.lottery = NewLotteryEngine(h.events, h.entries, h.entries, h.tm, h.clock, log, 3)
	h.coordinator = NewReplacementCoordinator(h.lottery, fixedSeeds(seed+1), time.Second, log)
	h.tm.SetVacancyObserver(h)
	h.svc = NewWaitlistService(h.events, h.entries, h.tm, h.lottery, fixedSeeds(seed), h.clock, time.Second, log)

	t.Cleanup(h.coordinator.Wait)

	return h
}

func (h *harness) OnVacancy(ctx context.Context, v domain.Vacancy) {
	h.mu.Lock()
	h.vacancies = append(h.vacancies, v)
	h.mu.Unlock()

	h.coordinator.OnVacancy(ctx, v)
}

func (h *harness) vacancyCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.vacancies)
}

func (h *harness) addEvent(t *testing.T, drawCapacity int) *domain.Event {
	t.Helper()
	now := h.clock.Now()
	e := &domain.Event{
		ID:           uuid.New().String(),
		Title:        "Swimming lessons",
		Status:       domain.EventStatusOpen,
		DrawCapacity: drawCapacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, h.events.Create(context.Background(), e))
	return e
}

// join adds entrants in order, one second apart.
func (h *harness) join(t *testing.T, eventID string, entrantIDs ...string) {
	t.Helper()
	for _, id := range entrantIDs {
		h.clock.Advance(time.Second)
		_, err := h.svc.JoinWaitlist(context.Background(), domain.JoinInput{EventID: eventID, EntrantID: id})
		require.NoError(t, err)
	}
}

func (h *harness) counts(t *testing.T, eventID string) map[domain.EntryStatus]int {
	t.Helper()
	counts, err := h.svc.GetStatusCounts(context.Background(), eventID)
	require.NoError(t, err)
	return counts
}

func (h *harness) status(t *testing.T, eventID, entrantID string) domain.EntryStatus {
	t.Helper()
	e, err := h.entries.Get(context.Background(), eventID, entrantID)
	require.NoError(t, err)
	return e.Status
}

func (h *harness) notificationsOf(entrantID string, kind domain.NotificationType) int {
	n := 0
	for _, rec := range h.inbox.All() {
		if rec.EntrantID == entrantID && rec.Type == kind {
			n++
		}
	}
	return n
}
