package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

const eventColumns = `id, title, description, status, draw_capacity, waiting_list_capacity,
	requires_geolocation, registration_closes_at, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, status, draw_capacity, waiting_list_capacity,
				requires_geolocation, registration_closes_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Status, e.DrawCapacity, e.WaitingListCapacity,
		e.RequiresGeolocation, e.RegistrationClosesAt, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert event", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storeErr("get event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storeErr("scan event", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *EventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *EventRepository) ListDueForClose(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1
			    AND registration_closes_at IS NOT NULL
			    AND registration_closes_at <= $2
			  ORDER BY registration_closes_at`
	return r.list(ctx, query, domain.EventStatusOpen, now)
}

// UpdateStatus moves an event from one lifecycle status to another. It
// returns ErrEventStatus when the event exists but is not in from.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) error {
	query := `UPDATE events
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return storeErr("update event status", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr("event rows affected", err)
	}
	if rows > 0 {
		return nil
	}

	// Определяем причину: мероприятие не найдено или статус другой
	if _, err = r.GetByID(ctx, id); err != nil {
		return err
	}
	return domain.ErrEventStatus
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storeErr("scan event", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("list events", err)
	}

	return res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e        domain.Event
		closesAt sql.NullTime
	)
	if err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Status, &e.DrawCapacity, &e.WaitingListCapacity,
		&e.RequiresGeolocation, &closesAt, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if closesAt.Valid {
		t := closesAt.Time
		e.RegistrationClosesAt = &t
	}
	return &e, nil
}
