package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type sweeper interface {
	CloseDue(ctx context.Context) ([]domain.DrawSummary, error)
	Reconcile(ctx context.Context) ([]domain.DrawSummary, error)
}

// Scheduler periodically closes events whose registration deadline passed
// and refills closed events that are short of their draw capacity.
type Scheduler struct {
	waitlist sweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	waitlist sweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		waitlist: waitlist,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	closed, err := s.waitlist.CloseDue(ctx)
	if err != nil {
		s.logger.Error("failed to close due events",
			logger.String("error", err.Error()),
		)
	}
	s.report("initial draw", closed)

	// Сверка запускается даже если закрытие упало
	refilled, err := s.waitlist.Reconcile(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile events",
			logger.String("error", err.Error()),
		)
		return
	}
	s.report("reconciliation draw", refilled)
}

func (s *Scheduler) report(kind string, draws []domain.DrawSummary) {
	for _, d := range draws {
		s.logger.Info(kind,
			logger.String("event_id", d.EventID),
			logger.String("round_id", d.RoundID),
			logger.Int("selected", len(d.Selected)),
		)
	}
}
