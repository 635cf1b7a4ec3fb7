package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var (
	_ ports.EntryStore = (*EntryStore)(nil)
	_ ports.RoundStore = (*EntryStore)(nil)
)

type entryKey struct {
	eventID   string
	entrantID string
}

type roundKey struct {
	eventID string
	roundID string
}

// EntryStore keeps waitlist entries and lottery rounds.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[entryKey]*domain.Entry
	rounds  map[roundKey]*domain.LotteryRound
}

func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[entryKey]*domain.Entry),
		rounds:  make(map[roundKey]*domain.LotteryRound),
	}
}

func (s *EntryStore) Get(_ context.Context, eventID, entrantID string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[entryKey{eventID, entrantID}]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return copyEntry(e), nil
}

// ListByStatus returns matching entries ordered by join time.
func (s *EntryStore) ListByStatus(_ context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Entry, 0)
	for k, e := range s.entries {
		if k.eventID == eventID && e.Status == status {
			res = append(res, copyEntry(e))
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].JoinedAt.Equal(res[j].JoinedAt) {
			return res[i].JoinedAt.Before(res[j].JoinedAt)
		}
		return res[i].EntrantID < res[j].EntrantID
	})

	return res, nil
}

func (s *EntryStore) CountByStatus(_ context.Context, eventID string) (map[domain.EntryStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.EntryStatus]int)
	for k, e := range s.entries {
		if k.eventID == eventID {
			counts[e.Status]++
		}
	}
	return counts, nil
}

func (s *EntryStore) Insert(_ context.Context, e *domain.Entry, waitingCap int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entryKey{e.EventID, e.EntrantID}
	if _, exists := s.entries[key]; exists {
		return domain.ErrDuplicateEntry
	}
	if waitingCap > 0 && s.countLocked(e.EventID, domain.EntryStatusWaiting) >= waitingCap {
		return domain.ErrWaitlistFull
	}

	cp := copyEntry(e)
	if cp.Version == 0 {
		cp.Version = 1
	}
	s.entries[key] = cp
	return nil
}

func (s *EntryStore) CompareAndSwapStatus(_ context.Context, c domain.StatusChange) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[entryKey{c.EventID, c.EntrantID}]
	if !ok {
		return false, domain.ErrEntryNotFound
	}
	if e.Version != c.ExpectedVersion || e.Status != c.ExpectedStatus {
		return false, nil
	}
	if c.ActiveCap > 0 && c.EntersActive() &&
		s.countLocked(c.EventID, domain.ActiveStatuses...) >= c.ActiveCap {
		return false, domain.ErrCapacityExceeded
	}

	e.Status = c.NewStatus
	e.Version++
	if c.DecidedAt != nil {
		t := *c.DecidedAt
		e.DecidedAt = &t
	}
	return true, nil
}

// countLocked counts the event's entries in any of statuses; s.mu must be held.
func (s *EntryStore) countLocked(eventID string, statuses ...domain.EntryStatus) int {
	n := 0
	for k, e := range s.entries {
		if k.eventID != eventID {
			continue
		}
		for _, st := range statuses {
			if e.Status == st {
				n++
				break
			}
		}
	}
	return n
}

func (s *EntryStore) GetRound(_ context.Context, eventID, roundID string) (*domain.LotteryRound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rounds[roundKey{eventID, roundID}]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return copyRound(r), nil
}

func (s *EntryStore) SaveRound(_ context.Context, r *domain.LotteryRound) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := roundKey{r.EventID, r.RoundID}
	if prev, ok := s.rounds[key]; ok && prev.Completed() {
		return nil
	}
	s.rounds[key] = copyRound(r)
	return nil
}
