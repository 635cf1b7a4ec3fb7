package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

const entryColumns = `event_id, entrant_id, status, joined_at, decided_at, latitude, longitude, version`

// EntryRepository stores waitlist entries. Status changes go through a
// single conditional UPDATE keyed on version and status.
type EntryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEntryRepo(db *dbpg.DB) *EntryRepository {
	return &EntryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EntryRepository) Get(ctx context.Context, eventID, entrantID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM waitlist_entries
			  WHERE event_id = $1 AND entrant_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, entrantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, storeErr("get entry", err)
	}

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, storeErr("scan entry", err)
	}

	return e, nil
}

func (r *EntryRepository) ListByStatus(ctx context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + `
			  FROM waitlist_entries
			  WHERE event_id = $1 AND status = $2
			  ORDER BY joined_at, entrant_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, status)
	if err != nil {
		return nil, storeErr("list entries", err)
	}
	defer rows.Close()

	res := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, storeErr("scan entry", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("list entries", err)
	}

	return res, nil
}

func (r *EntryRepository) CountByStatus(ctx context.Context, eventID string) (map[domain.EntryStatus]int, error) {
	query := `SELECT status, COUNT(*)
			  FROM waitlist_entries
			  WHERE event_id = $1
			  GROUP BY status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, storeErr("count entries", err)
	}
	defer rows.Close()

	counts := make(map[domain.EntryStatus]int)
	for rows.Next() {
		var (
			status domain.EntryStatus
			n      int
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, storeErr("scan count", err)
		}
		counts[status] = n
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("count entries", err)
	}

	return counts, nil
}

const insertEntryQuery = `INSERT INTO waitlist_entries (event_id, entrant_id, status, joined_at, decided_at, latitude, longitude, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func insertArgs(e *domain.Entry) []any {
	var lat, lon sql.NullFloat64
	if e.Location != nil {
		lat = sql.NullFloat64{Float64: e.Location.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: e.Location.Longitude, Valid: true}
	}

	version := e.Version
	if version == 0 {
		version = 1
	}

	return []any{e.EventID, e.EntrantID, e.Status, e.JoinedAt, e.DecidedAt, lat, lon, version}
}

// Insert writes e. With waitingCap > 0 the event row is locked for the
// duration of the duplicate check, the waiting count and the insert.
func (r *EntryRepository) Insert(ctx context.Context, e *domain.Entry, waitingCap int) error {
	if waitingCap > 0 {
		return r.insertCapped(ctx, e, waitingCap)
	}

	_, err := r.db.ExecWithRetry(ctx, r.strategy, insertEntryQuery, insertArgs(e)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return storeErr("insert entry", err)
	}

	return nil
}

func (r *EntryRepository) insertCapped(ctx context.Context, e *domain.Entry, waitingCap int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	if err = lockEvent(ctx, tx, e.EventID); err != nil {
		return err
	}

	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM waitlist_entries WHERE event_id = $1 AND entrant_id = $2)`
	if err = tx.QueryRowContext(ctx, existsQuery, e.EventID, e.EntrantID).Scan(&exists); err != nil {
		return storeErr("check entry", err)
	}
	if exists {
		return domain.ErrDuplicateEntry
	}

	waiting, err := countInTx(ctx, tx, e.EventID, domain.EntryStatusWaiting)
	if err != nil {
		return err
	}
	if waiting >= waitingCap {
		return domain.ErrWaitlistFull
	}

	if _, err = tx.ExecContext(ctx, insertEntryQuery, insertArgs(e)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return storeErr("insert entry", err)
	}

	if err = tx.Commit(); err != nil {
		return storeErr("commit entry", err)
	}
	return nil
}

// lockEvent serialises capped writes of one event on its events row.
func lockEvent(ctx context.Context, tx *sql.Tx, eventID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return storeErr("lock event", err)
	}
	return nil
}

func countInTx(ctx context.Context, tx *sql.Tx, eventID string, statuses ...domain.EntryStatus) (int, error) {
	query := `SELECT COUNT(*) FROM waitlist_entries
			  WHERE event_id = $1 AND status = ANY($2)`

	var n int
	if err := tx.QueryRowContext(ctx, query, eventID, pq.Array(statuses)).Scan(&n); err != nil {
		return 0, storeErr("count entries", err)
	}
	return n, nil
}

// CompareAndSwapStatus applies c only while the row still carries the
// expected version and status. decided_at is left untouched when
// c.DecidedAt is nil.
func (r *EntryRepository) CompareAndSwapStatus(ctx context.Context, c domain.StatusChange) (bool, error) {
	if c.ActiveCap > 0 && c.EntersActive() {
		return r.swapCapped(ctx, c)
	}

	// Без ретраев: повтор уже применённого UPDATE вернул бы ложный конфликт
	res, err := r.db.Master.ExecContext(ctx, swapStatusQuery, swapArgs(c)...)
	if err != nil {
		return false, storeErr("swap entry status", err)
	}
	return r.swapResult(ctx, c, res)
}

func (r *EntryRepository) swapCapped(ctx context.Context, c domain.StatusChange) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storeErr("begin tx", err)
	}
	defer tx.Rollback()

	if err = lockEvent(ctx, tx, c.EventID); err != nil {
		return false, err
	}

	var (
		version int64
		status  domain.EntryStatus
	)
	rowQuery := `SELECT version, status FROM waitlist_entries WHERE event_id = $1 AND entrant_id = $2`
	if err = tx.QueryRowContext(ctx, rowQuery, c.EventID, c.EntrantID).Scan(&version, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrEntryNotFound
		}
		return false, storeErr("get entry", err)
	}
	if version != c.ExpectedVersion || status != c.ExpectedStatus {
		return false, nil
	}

	active, err := countInTx(ctx, tx, c.EventID, domain.ActiveStatuses...)
	if err != nil {
		return false, err
	}
	if active >= c.ActiveCap {
		return false, domain.ErrCapacityExceeded
	}

	res, err := tx.ExecContext(ctx, swapStatusQuery, swapArgs(c)...)
	if err != nil {
		return false, storeErr("swap entry status", err)
	}
	if err = tx.Commit(); err != nil {
		return false, storeErr("commit entry status", err)
	}
	return r.swapResult(ctx, c, res)
}

func swapArgs(c domain.StatusChange) []any {
	return []any{c.EventID, c.EntrantID, c.ExpectedVersion, c.ExpectedStatus, c.NewStatus, c.DecidedAt}
}

const swapStatusQuery = `UPDATE waitlist_entries
			  SET status = $5,
			      version = version + 1,
			      decided_at = COALESCE($6, decided_at)
			  WHERE event_id = $1
			    AND entrant_id = $2
			    AND version = $3
			    AND status = $4`

func (r *EntryRepository) swapResult(ctx context.Context, c domain.StatusChange, res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("entry rows affected", err)
	}
	if rows > 0 {
		return true, nil
	}

	if _, err = r.Get(ctx, c.EventID, c.EntrantID); err != nil {
		return false, err
	}
	return false, nil
}

func scanEntry(s scanner) (*domain.Entry, error) {
	var (
		e         domain.Entry
		decidedAt sql.NullTime
		lat, lon  sql.NullFloat64
	)
	if err := s.Scan(
		&e.EventID, &e.EntrantID, &e.Status, &e.JoinedAt, &decidedAt, &lat, &lon, &e.Version,
	); err != nil {
		return nil, err
	}
	if decidedAt.Valid {
		t := decidedAt.Time
		e.DecidedAt = &t
	}
	if lat.Valid && lon.Valid {
		e.Location = &domain.Geolocation{Latitude: lat.Float64, Longitude: lon.Float64}
	}
	return &e, nil
}
