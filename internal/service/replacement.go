package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

var vacancyRoundNamespace = uuid.MustParse("8f5e7a2c-3b1d-4c6e-9a0f-2d7b5e1c4a93")

type drawer interface {
	Draw(ctx context.Context, eventID, roundID string, needed int, seed int64) ([]string, error)
}

// ReplacementCoordinator backfills slots vacated by declines. Each vacancy
// gets exactly one replacement draw attempt, run in the background.
type ReplacementCoordinator struct {
	lottery drawer
	seeds   SeedSource
	timeout time.Duration
	logger  logger.Logger

	wg sync.WaitGroup
}

func NewReplacementCoordinator(lottery drawer, seeds SeedSource, timeout time.Duration, logger logger.Logger) *ReplacementCoordinator {
	return &ReplacementCoordinator{
		lottery: lottery,
		seeds:   seeds,
		timeout: timeout,
		logger:  logger,
	}
}

// OnVacancy starts a replacement draw for v and returns immediately.
func (c *ReplacementCoordinator) OnVacancy(ctx context.Context, v domain.Vacancy) {
	if v.Count <= 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.replace(context.WithoutCancel(ctx), v)
	}()
}

// Wait blocks until every replacement draw started so far has finished.
func (c *ReplacementCoordinator) Wait() {
	c.wg.Wait()
}

func (c *ReplacementCoordinator) replace(ctx context.Context, v domain.Vacancy) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	roundID := VacancyRoundID(v)
	selected, err := c.lottery.Draw(ctx, v.EventID, roundID, v.Count, c.seeds.Seed())
	if err != nil {
		// A reconciliation sweep picks up whatever deficit is left.
		c.logger.Error("replacement draw failed",
			logger.String("event_id", v.EventID),
			logger.String("vacated_by", v.EntrantID),
			logger.String("round_id", roundID),
			logger.Int("selected", len(selected)),
			logger.String("error", err.Error()),
		)
		return
	}

	c.logger.Info("replacement draw finished",
		logger.String("event_id", v.EventID),
		logger.String("vacated_by", v.EntrantID),
		logger.String("round_id", roundID),
		logger.Int("selected", len(selected)),
	)
}

// VacancyRoundID derives a stable round id from the vacating entry, so a
// vacancy reported twice maps onto the same lottery round.
func VacancyRoundID(v domain.Vacancy) string {
	name := v.EventID + "/" + v.EntrantID + "/" + v.DecidedAt.UTC().Format(time.RFC3339Nano)
	return "vacancy-" + uuid.NewSHA1(vacancyRoundNamespace, []byte(name)).String()
}
