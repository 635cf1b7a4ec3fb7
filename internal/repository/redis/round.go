package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// KEYS[1] round hash. ARGV[1] outcome, ARGV[2] msgpack payload.
var saveRoundScript = goredis.NewScript(`
if redis.call('HGET', KEYS[1], 'outcome') == 'completed' then
	return 0
end
redis.call('HSET', KEYS[1], 'outcome', ARGV[1], 'data', ARGV[2])
return 1
`)

func (s *Store) GetRound(ctx context.Context, eventID, roundID string) (*domain.LotteryRound, error) {
	data, err := s.client.HGet(ctx, roundKey(eventID, roundID), "data").Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, storeErr("get round", err)
	}

	var r domain.LotteryRound
	if err = msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("redis: decode round: %w", err)
	}
	if r.Selected == nil {
		r.Selected = []string{}
	}
	return &r, nil
}

// SaveRound upserts r unless the stored round is already completed.
func (s *Store) SaveRound(ctx context.Context, r *domain.LotteryRound) error {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("redis: encode round: %w", err)
	}

	err = saveRoundScript.Run(ctx, s.client, []string{roundKey(r.EventID, r.RoundID)},
		string(r.Outcome), data,
	).Err()
	if err != nil {
		return storeErr("save round", err)
	}
	return nil
}
