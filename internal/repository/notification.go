package repository

import (
	"context"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// NotificationRepository is the persistent notification inbox.
type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Dispatch stores rec. Replaying a record with a known id is a no-op.
func (r *NotificationRepository) Dispatch(ctx context.Context, rec domain.NotificationRecord) error {
	query := `INSERT INTO notifications (id, entrant_id, event_id, type, title, body, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.EntrantID, rec.EventID, rec.Type, rec.Title, rec.Body, rec.CreatedAt,
	)
	if err != nil {
		return storeErr("insert notification", err)
	}

	return nil
}

func (r *NotificationRepository) ListByEntrant(ctx context.Context, entrantID string) ([]*domain.NotificationRecord, error) {
	query := `SELECT id, entrant_id, event_id, type, title, body, created_at
			  FROM notifications
			  WHERE entrant_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, entrantID)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	defer rows.Close()

	res := make([]*domain.NotificationRecord, 0)
	for rows.Next() {
		var n domain.NotificationRecord
		if err = rows.Scan(&n.ID, &n.EntrantID, &n.EventID, &n.Type, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, storeErr("scan notification", err)
		}
		res = append(res, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("list notifications", err)
	}

	return res, nil
}
