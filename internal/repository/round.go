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

type RoundRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoundRepo(db *dbpg.DB) *RoundRepository {
	return &RoundRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoundRepository) GetRound(ctx context.Context, eventID, roundID string) (*domain.LotteryRound, error) {
	query := `SELECT event_id, round_id, requested, attempted, selected, outcome, seed, created_at, updated_at
			  FROM lottery_rounds
			  WHERE event_id = $1 AND round_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, roundID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, storeErr("get round", err)
	}

	var lr domain.LotteryRound
	if err = row.Scan(
		&lr.EventID, &lr.RoundID, &lr.Requested, &lr.Attempted, pq.Array(&lr.Selected),
		&lr.Outcome, &lr.Seed, &lr.CreatedAt, &lr.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, storeErr("scan round", err)
	}
	if lr.Selected == nil {
		lr.Selected = []string{}
	}

	return &lr, nil
}

// SaveRound upserts a round; a row already marked completed is kept as is.
func (r *RoundRepository) SaveRound(ctx context.Context, lr *domain.LotteryRound) error {
	query := `INSERT INTO lottery_rounds (event_id, round_id, requested, attempted, selected, outcome, seed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (event_id, round_id) DO UPDATE
			  SET attempted  = EXCLUDED.attempted,
			      selected   = EXCLUDED.selected,
			      outcome    = EXCLUDED.outcome,
			      updated_at = EXCLUDED.updated_at
			  WHERE lottery_rounds.outcome <> 'completed'`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		lr.EventID, lr.RoundID, lr.Requested, lr.Attempted, pq.Array(lr.Selected),
		lr.Outcome, lr.Seed, lr.CreatedAt, lr.UpdatedAt,
	)
	if err != nil {
		return storeErr("save round", err)
	}

	return nil
}
