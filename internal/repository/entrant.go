package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type EntrantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEntrantRepo(db *dbpg.DB) *EntrantRepository {
	return &EntrantRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EntrantRepository) Create(ctx context.Context, e *domain.Entrant) error {
	query := `INSERT INTO entrants (id, name, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, e.ID, e.Name, e.TelegramChatID, e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEntrantExists
		}
		return storeErr("insert entrant", err)
	}

	return nil
}

func (r *EntrantRepository) GetByID(ctx context.Context, id string) (*domain.Entrant, error) {
	query := `SELECT id, name, telegram_chat_id, created_at
    		  FROM entrants
    		  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntrantNotFound
		}
		return nil, storeErr("get entrant", err)
	}

	var e domain.Entrant
	if err = row.Scan(&e.ID, &e.Name, &e.TelegramChatID, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntrantNotFound
		}
		return nil, storeErr("scan entrant", err)
	}

	return &e, nil
}

func (r *EntrantRepository) List(ctx context.Context) ([]*domain.Entrant, error) {
	query := `SELECT id, name, telegram_chat_id, created_at
			  FROM entrants
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, storeErr("list entrants", err)
	}
	defer rows.Close()

	res := make([]*domain.Entrant, 0)
	for rows.Next() {
		var e domain.Entrant
		if err = rows.Scan(&e.ID, &e.Name, &e.TelegramChatID, &e.CreatedAt); err != nil {
			return nil, storeErr("scan entrant", err)
		}
		res = append(res, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("list entrants", err)
	}

	return res, nil
}
