package ports

import (
	"context"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

// RoundStore keeps lottery rounds keyed by (eventID, roundID). SaveRound
// upserts, except that a completed round is never overwritten.
type RoundStore interface {
	GetRound(ctx context.Context, eventID, roundID string) (*domain.LotteryRound, error)
	SaveRound(ctx context.Context, r *domain.LotteryRound) error
}
