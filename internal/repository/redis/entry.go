package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// KEYS[1] entry hash, KEYS[2] status set, KEYS[3] waiting set.
// ARGV[1] score, ARGV[2] entrant id, ARGV[3] waiting cap or 0, ARGV[4..] field/value pairs.
// Returns 0 on duplicate, -1 when the waiting list is full, 1 when inserted.
var insertScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
local cap = tonumber(ARGV[3])
if cap > 0 and redis.call('ZCARD', KEYS[3]) >= cap then
	return -1
end
for i = 4, #ARGV, 2 do
	redis.call('HSET', KEYS[1], ARGV[i], ARGV[i + 1])
end
redis.call('ZADD', KEYS[2], ARGV[1], ARGV[2])
return 1
`)

// KEYS[1] entry hash, KEYS[2] old status set, KEYS[3] new status set,
// KEYS[4..] active status sets.
// ARGV: expected version, expected status, new status, decided_at or "", entrant id,
// active cap or 0.
// Returns -1 when the entry is missing, -2 when the active set is full,
// 0 on mismatch, 1 when applied.
var casScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
local fields = redis.call('HMGET', KEYS[1], 'version', 'status')
if fields[1] ~= ARGV[1] or fields[2] ~= ARGV[2] then
	return 0
end
local cap = tonumber(ARGV[6])
if cap > 0 then
	local active = 0
	for i = 4, #KEYS do
		active = active + redis.call('ZCARD', KEYS[i])
	end
	if active >= cap then
		return -2
	end
end
redis.call('HSET', KEYS[1], 'status', ARGV[3])
redis.call('HINCRBY', KEYS[1], 'version', 1)
if ARGV[4] ~= '' then
	redis.call('HSET', KEYS[1], 'decided_at', ARGV[4])
end
local score = redis.call('ZSCORE', KEYS[2], ARGV[5])
redis.call('ZREM', KEYS[2], ARGV[5])
redis.call('ZADD', KEYS[3], score, ARGV[5])
return 1
`)

func (s *Store) Get(ctx context.Context, eventID, entrantID string) (*domain.Entry, error) {
	fields, err := s.client.HGetAll(ctx, entryKey(eventID, entrantID)).Result()
	if err != nil {
		return nil, storeErr("get entry", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrEntryNotFound
	}
	return entryFromMap(fields)
}

// ListByStatus returns matching entries ordered by join time, then entrant id.
func (s *Store) ListByStatus(ctx context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error) {
	ids, err := s.client.ZRange(ctx, statusKey(eventID, status), 0, -1).Result()
	if err != nil {
		return nil, storeErr("list entries", err)
	}

	res := make([]*domain.Entry, 0, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, entryKey(eventID, id))
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return nil, storeErr("list entries", err)
	}

	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		e, err := entryFromMap(fields)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}

	return res, nil
}

func (s *Store) CountByStatus(ctx context.Context, eventID string) (map[domain.EntryStatus]int, error) {
	pipe := s.client.Pipeline()
	cmds := make(map[domain.EntryStatus]*goredis.IntCmd, len(domain.AllEntryStatuses))
	for _, st := range domain.AllEntryStatuses {
		cmds[st] = pipe.ZCard(ctx, statusKey(eventID, st))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, storeErr("count entries", err)
	}

	counts := make(map[domain.EntryStatus]int)
	for st, cmd := range cmds {
		if n := cmd.Val(); n > 0 {
			counts[st] = int(n)
		}
	}
	return counts, nil
}

func (s *Store) Insert(ctx context.Context, e *domain.Entry, waitingCap int) error {
	version := e.Version
	if version == 0 {
		version = 1
	}

	args := []any{strconv.FormatInt(e.JoinedAt.UnixNano(), 10), e.EntrantID, strconv.Itoa(waitingCap)}
	for k, v := range entryToMap(e, version) {
		args = append(args, k, v)
	}

	keys := []string{
		entryKey(e.EventID, e.EntrantID),
		statusKey(e.EventID, e.Status),
		statusKey(e.EventID, domain.EntryStatusWaiting),
	}
	n, err := insertScript.Run(ctx, s.client, keys, args...).Int()
	if err != nil {
		return storeErr("insert entry", err)
	}
	switch n {
	case 0:
		return domain.ErrDuplicateEntry
	case -1:
		return domain.ErrWaitlistFull
	default:
		return nil
	}
}

func (s *Store) CompareAndSwapStatus(ctx context.Context, c domain.StatusChange) (bool, error) {
	decidedAt := ""
	if c.DecidedAt != nil {
		decidedAt = formatTime(*c.DecidedAt)
	}

	keys := []string{
		entryKey(c.EventID, c.EntrantID),
		statusKey(c.EventID, c.ExpectedStatus),
		statusKey(c.EventID, c.NewStatus),
	}
	activeCap := 0
	if c.ActiveCap > 0 && c.EntersActive() {
		activeCap = c.ActiveCap
		for _, st := range domain.ActiveStatuses {
			keys = append(keys, statusKey(c.EventID, st))
		}
	}
	n, err := casScript.Run(ctx, s.client, keys,
		strconv.FormatInt(c.ExpectedVersion, 10),
		string(c.ExpectedStatus),
		string(c.NewStatus),
		decidedAt,
		c.EntrantID,
		strconv.Itoa(activeCap),
	).Int()
	if err != nil {
		return false, storeErr("swap entry status", err)
	}

	switch n {
	case -1:
		return false, domain.ErrEntryNotFound
	case -2:
		return false, domain.ErrCapacityExceeded
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func entryToMap(e *domain.Entry, version int64) map[string]string {
	m := map[string]string{
		"event_id":   e.EventID,
		"entrant_id": e.EntrantID,
		"status":     string(e.Status),
		"joined_at":  formatTime(e.JoinedAt),
		"version":    strconv.FormatInt(version, 10),
	}
	if e.DecidedAt != nil {
		m["decided_at"] = formatTime(*e.DecidedAt)
	}
	if e.Location != nil {
		m["latitude"] = strconv.FormatFloat(e.Location.Latitude, 'f', -1, 64)
		m["longitude"] = strconv.FormatFloat(e.Location.Longitude, 'f', -1, 64)
	}
	return m
}

func entryFromMap(m map[string]string) (*domain.Entry, error) {
	e := &domain.Entry{
		EventID:   m["event_id"],
		EntrantID: m["entrant_id"],
		Status:    domain.EntryStatus(m["status"]),
	}

	var err error
	if e.JoinedAt, err = time.Parse(time.RFC3339Nano, m["joined_at"]); err != nil {
		return nil, fmt.Errorf("redis: parse joined_at: %w", err)
	}
	if e.Version, err = strconv.ParseInt(m["version"], 10, 64); err != nil {
		return nil, fmt.Errorf("redis: parse version: %w", err)
	}
	if v, ok := m["decided_at"]; ok && v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("redis: parse decided_at: %w", err)
		}
		e.DecidedAt = &t
	}
	if lat, ok := m["latitude"]; ok {
		loc := &domain.Geolocation{}
		if loc.Latitude, err = strconv.ParseFloat(lat, 64); err != nil {
			return nil, fmt.Errorf("redis: parse latitude: %w", err)
		}
		if loc.Longitude, err = strconv.ParseFloat(m["longitude"], 64); err != nil {
			return nil, fmt.Errorf("redis: parse longitude: %w", err)
		}
		e.Location = loc
	}

	return e, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
