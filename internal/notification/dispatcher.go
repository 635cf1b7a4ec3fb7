package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var (
	ErrQueueFull        = errors.New("notification queue is full")
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
)

// Dispatcher hands records to a downstream port on a fixed pool of
// workers. Dispatch never blocks: when the queue is full the record is
// dropped and ErrQueueFull returned.
type Dispatcher struct {
	next        ports.NotificationPort
	queue       chan domain.NotificationRecord
	sendTimeout time.Duration
	logger      logger.Logger

	mu     sync.RWMutex
	closed bool
	group  errgroup.Group
}

func NewDispatcher(next ports.NotificationPort, workers, queueSize int, sendTimeout time.Duration, logger logger.Logger) *Dispatcher {
	workers = max(workers, 1)
	queueSize = max(queueSize, 0)

	d := &Dispatcher{
		next:        next,
		queue:       make(chan domain.NotificationRecord, queueSize),
		sendTimeout: sendTimeout,
		logger:      logger,
	}

	for range workers {
		d.group.Go(d.work)
	}

	return d
}

func (d *Dispatcher) Dispatch(_ context.Context, rec domain.NotificationRecord) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- rec:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting records and waits until the queue is drained or
// ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- d.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() error {
	for rec := range d.queue {
		d.deliver(rec)
	}
	return nil
}

func (d *Dispatcher) deliver(rec domain.NotificationRecord) {
	ctx := context.Background()
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	if err := d.next.Dispatch(ctx, rec); err != nil {
		d.logger.Warn("notification delivery failed",
			logger.String("notification_id", rec.ID),
			logger.String("entrant_id", rec.EntrantID),
			logger.String("event_id", rec.EventID),
			logger.String("type", string(rec.Type)),
			logger.String("error", err.Error()),
		)
	}
}
