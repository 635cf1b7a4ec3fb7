// Package storetest holds behaviour checks shared by every entry store
// implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

// Store is an entry store that also keeps lottery rounds.
type Store interface {
	ports.EntryStore
	ports.RoundStore
}

// Event ids used by the checks. Stores with referential integrity must
// have both events present before Run.
const (
	EventA = "0b6f2a8e-5a4d-4f7e-9a1c-3d2e8f6b7c10"
	EventB = "5c9d1e3f-7b2a-4c8d-8e6f-1a2b3c4d5e6f"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func entry(eventID, entrantID string, joinedAfter time.Duration) *domain.Entry {
	return &domain.Entry{
		EventID:   eventID,
		EntrantID: entrantID,
		Status:    domain.EntryStatusWaiting,
		JoinedAt:  base.Add(joinedAfter),
		Version:   1,
	}
}

func change(entrantID string, version int64, from, to domain.EntryStatus, decidedAt *time.Time) domain.StatusChange {
	return domain.StatusChange{
		EventID:         EventA,
		EntrantID:       entrantID,
		ExpectedVersion: version,
		ExpectedStatus:  from,
		NewStatus:       to,
		DecidedAt:       decidedAt,
	}
}

// Run exercises the entry and round contract against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("InsertAndGet", func(t *testing.T) { testInsertAndGet(t, newStore(t)) })
	t.Run("DuplicateInsert", func(t *testing.T) { testDuplicateInsert(t, newStore(t)) })
	t.Run("GetMissing", func(t *testing.T) { testGetMissing(t, newStore(t)) })
	t.Run("ListOrderAndCounts", func(t *testing.T) { testListOrderAndCounts(t, newStore(t)) })
	t.Run("CompareAndSwap", func(t *testing.T) { testCompareAndSwap(t, newStore(t)) })
	t.Run("CompareAndSwapMismatch", func(t *testing.T) { testCompareAndSwapMismatch(t, newStore(t)) })
	t.Run("CompareAndSwapMissing", func(t *testing.T) { testCompareAndSwapMissing(t, newStore(t)) })
	t.Run("WaitingCap", func(t *testing.T) { testWaitingCap(t, newStore(t)) })
	t.Run("ActiveCap", func(t *testing.T) { testActiveCap(t, newStore(t)) })
	t.Run("Rounds", func(t *testing.T) { testRounds(t, newStore(t)) })
}

func testInsertAndGet(t *testing.T, s Store) {
	ctx := context.Background()
	e := entry(EventA, "u1", 0)
	e.Location = &domain.Geolocation{Latitude: 53.5461, Longitude: -113.4938}

	require.NoError(t, s.Insert(ctx, e, 0))

	got, err := s.Get(ctx, EventA, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusWaiting, got.Status)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, got.JoinedAt.Equal(e.JoinedAt))
	assert.Nil(t, got.DecidedAt)
	require.NotNil(t, got.Location)
	assert.InDelta(t, 53.5461, got.Location.Latitude, 1e-9)
	assert.InDelta(t, -113.4938, got.Location.Longitude, 1e-9)
}

func testDuplicateInsert(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", 0), 0))

	err := s.Insert(ctx, entry(EventA, "u1", time.Minute), 0)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	// same entrant on another event is fine
	assert.NoError(t, s.Insert(ctx, entry(EventB, "u1", 0), 0))
}

func testGetMissing(t *testing.T, s Store) {
	_, err := s.Get(context.Background(), EventA, "nobody")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func testListOrderAndCounts(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u3", 2*time.Second), 0))
	require.NoError(t, s.Insert(ctx, entry(EventA, "u2", time.Second), 0))
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", time.Second), 0))
	require.NoError(t, s.Insert(ctx, entry(EventB, "u9", 0), 0))

	waiting, err := s.ListByStatus(ctx, EventA, domain.EntryStatusWaiting)
	require.NoError(t, err)
	ids := make([]string, 0, len(waiting))
	for _, e := range waiting {
		ids = append(ids, e.EntrantID)
	}
	assert.Equal(t, []string{"u1", "u2", "u3"}, ids)

	selected, err := s.ListByStatus(ctx, EventA, domain.EntryStatusSelected)
	require.NoError(t, err)
	assert.Empty(t, selected)

	counts, err := s.CountByStatus(ctx, EventA)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[domain.EntryStatusWaiting])
	assert.Equal(t, 0, counts[domain.EntryStatusSelected])
}

func testCompareAndSwap(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", 0), 0))

	ok, err := s.CompareAndSwapStatus(ctx, change("u1", 1, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil))
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.Get(ctx, EventA, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusSelected, got.Status)
	assert.Equal(t, int64(2), got.Version)
	assert.Nil(t, got.DecidedAt)

	decided := base.Add(time.Hour)
	ok, err = s.CompareAndSwapStatus(ctx, change("u1", 2, domain.EntryStatusSelected, domain.EntryStatusDeclined, &decided))
	require.NoError(t, err)
	require.True(t, ok)

	got, err = s.Get(ctx, EventA, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusDeclined, got.Status)
	assert.Equal(t, int64(3), got.Version)
	require.NotNil(t, got.DecidedAt)
	assert.True(t, got.DecidedAt.Equal(decided))

	counts, err := s.CountByStatus(ctx, EventA)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.EntryStatusDeclined])
	assert.Equal(t, 0, counts[domain.EntryStatusWaiting])
	assert.Equal(t, 0, counts[domain.EntryStatusSelected])

	declined, err := s.ListByStatus(ctx, EventA, domain.EntryStatusDeclined)
	require.NoError(t, err)
	require.Len(t, declined, 1)
	assert.Equal(t, "u1", declined[0].EntrantID)
}

func testCompareAndSwapMismatch(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", 0), 0))

	ok, err := s.CompareAndSwapStatus(ctx, change("u1", 7, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CompareAndSwapStatus(ctx, change("u1", 1, domain.EntryStatusSelected, domain.EntryStatusAccepted, nil))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := s.Get(ctx, EventA, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusWaiting, got.Status)
	assert.Equal(t, int64(1), got.Version)
}

func testCompareAndSwapMissing(t *testing.T, s Store) {
	_, err := s.CompareAndSwapStatus(context.Background(), change("ghost", 1, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil))
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func testWaitingCap(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", 0), 2))
	require.NoError(t, s.Insert(ctx, entry(EventA, "u2", time.Second), 2))

	err := s.Insert(ctx, entry(EventA, "u3", 2*time.Second), 2)
	assert.ErrorIs(t, err, domain.ErrWaitlistFull)

	// duplicate wins over a full list
	err = s.Insert(ctx, entry(EventA, "u1", 3*time.Second), 2)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	// the cap only counts waiting entries
	ok, err := s.CompareAndSwapStatus(ctx, change("u1", 1, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil))
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, s.Insert(ctx, entry(EventA, "u3", 4*time.Second), 2))

	counts, err := s.CountByStatus(ctx, EventA)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.EntryStatusWaiting])
	assert.Equal(t, 1, counts[domain.EntryStatusSelected])
}

func testActiveCap(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, entry(EventA, "u1", 0), 0))
	require.NoError(t, s.Insert(ctx, entry(EventA, "u2", time.Second), 0))

	first := change("u1", 1, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil)
	first.ActiveCap = 1
	ok, err := s.CompareAndSwapStatus(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)

	second := change("u2", 1, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil)
	second.ActiveCap = 1
	ok, err = s.CompareAndSwapStatus(ctx, second)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.False(t, ok)

	got, err := s.Get(ctx, EventA, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusWaiting, got.Status)
	assert.Equal(t, int64(1), got.Version)

	// moves inside the active set are not bounded
	accept := change("u1", 2, domain.EntryStatusSelected, domain.EntryStatusAccepted, nil)
	accept.ActiveCap = 1
	ok, err = s.CompareAndSwapStatus(ctx, accept)
	require.NoError(t, err)
	assert.True(t, ok)

	// a stale change still reports a mismatch on a full event
	stale := change("u2", 5, domain.EntryStatusWaiting, domain.EntryStatusSelected, nil)
	stale.ActiveCap = 1
	ok, err = s.CompareAndSwapStatus(ctx, stale)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testRounds(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.GetRound(ctx, EventA, "r1")
	require.ErrorIs(t, err, domain.ErrRoundNotFound)

	partial := &domain.LotteryRound{
		EventID:   EventA,
		RoundID:   "r1",
		Requested: 3,
		Attempted: 1,
		Selected:  []string{"u1"},
		Outcome:   domain.RoundPartial,
		Seed:      42,
		CreatedAt: base,
		UpdatedAt: base,
	}
	require.NoError(t, s.SaveRound(ctx, partial))

	got, err := s.GetRound(ctx, EventA, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoundPartial, got.Outcome)
	assert.Equal(t, []string{"u1"}, got.Selected)
	assert.Equal(t, int64(42), got.Seed)

	completed := *partial
	completed.Selected = []string{"u1", "u2", "u3"}
	completed.Attempted = 3
	completed.Outcome = domain.RoundCompleted
	require.NoError(t, s.SaveRound(ctx, &completed))

	overwrite := completed
	overwrite.Selected = []string{"u9"}
	overwrite.Outcome = domain.RoundPartial
	require.NoError(t, s.SaveRound(ctx, &overwrite))

	got, err = s.GetRound(ctx, EventA, "r1")
	require.NoError(t, err)
	assert.True(t, got.Completed())
	assert.Equal(t, []string{"u1", "u2", "u3"}, got.Selected)
	assert.Equal(t, 3, got.Attempted)
}
