package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ClosesAndReconciles(t *testing.T) {
	waitlist := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(waitlist, 50*time.Millisecond, log)

	closed := []domain.DrawSummary{
		{EventID: "e1", RoundID: "close:e1", Selected: []string{"u1", "u2"}},
	}
	waitlist.EXPECT().CloseDue(mock.Anything).Return(closed, nil)
	waitlist.EXPECT().Reconcile(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(waitlist.Calls), 2)
}

func TestScheduler_Tick_ReconcilesAfterCloseError(t *testing.T) {
	waitlist := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(waitlist, time.Hour, log)

	waitlist.EXPECT().CloseDue(mock.Anything).Return(nil, errors.New("db error")).Once()
	waitlist.EXPECT().Reconcile(mock.Anything).Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	waitlist := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(waitlist, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	waitlist := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(waitlist, 30*time.Millisecond, log)

	waitlist.EXPECT().CloseDue(mock.Anything).Return(nil, nil)
	waitlist.EXPECT().Reconcile(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(waitlist.Calls), 6)
}
