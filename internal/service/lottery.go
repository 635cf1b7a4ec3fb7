package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

const tracerName = "github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service"

const (
	defaultMaxExtraAttempts = 5
	roundSaveTimeout        = 5 * time.Second
)

type transitioner interface {
	Transition(ctx context.Context, eventID, entrantID string, from, to domain.EntryStatus) error
}

// LotteryEngine selects entrants from an event's waiting pool.
type LotteryEngine struct {
	events      eventGetter
	entries     ports.EntryStore
	rounds      ports.RoundStore
	transitions transitioner
	clock       Clock
	logger      logger.Logger
	tracer      trace.Tracer

	maxExtraAttempts int
	locks            *keyedMutex
}

func NewLotteryEngine(
	events eventGetter,
	entries ports.EntryStore,
	rounds ports.RoundStore,
	transitions transitioner,
	clock Clock,
	logger logger.Logger,
	maxExtraAttempts int,
) *LotteryEngine {
	if maxExtraAttempts < 0 {
		maxExtraAttempts = defaultMaxExtraAttempts
	}

	return &LotteryEngine{
		events:           events,
		entries:          entries,
		rounds:           rounds,
		transitions:      transitions,
		clock:            clock,
		logger:           logger,
		tracer:           otel.Tracer(tracerName),
		maxExtraAttempts: maxExtraAttempts,
		locks:            newKeyedMutex(),
	}
}

// Draw moves up to needed waiting entrants of the event to selected and
// returns their ids.
//
// A roundID that was already recorded as completed returns the recorded
// selection without touching any entry. The number drawn never exceeds the
// remaining draw capacity, recomputed from live counts. Candidates are
// ordered by join time and picked by a Fisher–Yates shuffle seeded with
// seed, so equal inputs give equal draws.
//
// If ctx expires or the store fails mid-draw, entrants already selected stay
// selected, the round is recorded as partial with them, and the error is
// returned together with that partial selection. Retrying the same roundID
// resumes a partial round.
func (e *LotteryEngine) Draw(ctx context.Context, eventID, roundID string, needed int, seed int64) ([]string, error) {
	ctx, span := e.tracer.Start(ctx, "lottery.draw",
		trace.WithAttributes(
			attribute.String("waitlist.event_id", eventID),
			attribute.String("waitlist.round_id", roundID),
			attribute.Int("waitlist.needed", needed),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	selected, err := e.draw(ctx, eventID, roundID, needed, seed)
	span.SetAttributes(attribute.Int("waitlist.selected", len(selected)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return selected, err
}

func (e *LotteryEngine) draw(ctx context.Context, eventID, roundID string, needed int, seed int64) ([]string, error) {
	if roundID == "" {
		return nil, fmt.Errorf("%w: round id is required", domain.ErrValidation)
	}
	if needed < 0 {
		return nil, fmt.Errorf("%w: needed count must not be negative", domain.ErrValidation)
	}

	unlock := e.locks.Lock(eventID)
	defer unlock()

	// Unknown events leave no round behind.
	event, err := e.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	round, err := e.loadRound(ctx, eventID, roundID, needed, seed)
	if err != nil {
		return nil, err
	}
	if round.Completed() {
		e.logger.Debug("lottery round already completed",
			logger.String("event_id", eventID),
			logger.String("round_id", roundID),
		)
		return slices.Clone(round.Selected), nil
	}

	drawErr := e.fill(ctx, round, event)

	round.Outcome = domain.RoundCompleted
	if drawErr != nil {
		round.Outcome = domain.RoundPartial
	}
	round.UpdatedAt = e.clock.Now()

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), roundSaveTimeout)
	defer cancel()

	if err = e.rounds.SaveRound(saveCtx, round); err != nil {
		e.logger.Error("failed to record lottery round",
			logger.String("event_id", eventID),
			logger.String("round_id", roundID),
			logger.Int("selected", len(round.Selected)),
			logger.String("error", err.Error()),
		)
		return slices.Clone(round.Selected), fmt.Errorf("record round: %w", err)
	}

	e.logger.Info("lottery round recorded",
		logger.String("event_id", eventID),
		logger.String("round_id", roundID),
		logger.String("outcome", string(round.Outcome)),
		logger.Int("requested", round.Requested),
		logger.Int("selected", len(round.Selected)),
		logger.Int("attempted", round.Attempted),
	)

	if drawErr != nil {
		return slices.Clone(round.Selected), fmt.Errorf("draw round %s: %w", roundID, drawErr)
	}

	return slices.Clone(round.Selected), nil
}

func (e *LotteryEngine) loadRound(ctx context.Context, eventID, roundID string, needed int, seed int64) (*domain.LotteryRound, error) {
	round, err := e.rounds.GetRound(ctx, eventID, roundID)
	switch {
	case err == nil:
		return round, nil
	case errors.Is(err, domain.ErrRoundNotFound):
		now := e.clock.Now()
		return &domain.LotteryRound{
			EventID:   eventID,
			RoundID:   roundID,
			Requested: needed,
			Selected:  []string{},
			Seed:      seed,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	default:
		return nil, fmt.Errorf("get round: %w", err)
	}
}

// fill selects entrants into round until it reaches its requested size, the
// capacity or the pool runs out, or the attempt budget is spent.
func (e *LotteryEngine) fill(ctx context.Context, round *domain.LotteryRound, event *domain.Event) error {
	counts, err := e.entries.CountByStatus(ctx, round.EventID)
	if err != nil {
		return fmt.Errorf("count entries: %w", err)
	}

	pool, err := e.entries.ListByStatus(ctx, round.EventID, domain.EntryStatusWaiting)
	if err != nil {
		return fmt.Errorf("list waiting entries: %w", err)
	}

	remainingCapacity := event.DrawCapacity - domain.ActiveCount(counts)
	n := min(round.Requested-len(round.Selected), len(pool), remainingCapacity)
	if n <= 0 {
		return nil
	}

	sortByJoinTime(pool)

	// A resumed round continues on a different stream of the same seed.
	rng := rand.New(rand.NewPCG(uint64(round.Seed), uint64(len(round.Selected))))

	budget := n + e.maxExtraAttempts
	picked, attempts := 0, 0
	defer func() { round.Attempted += attempts }()

	for i := 0; i < len(pool) && picked < n && attempts < budget; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		candidate := pool[i]
		attempts++

		err = e.transitions.Transition(ctx, round.EventID, candidate.EntrantID,
			domain.EntryStatusWaiting, domain.EntryStatusSelected)
		switch {
		case err == nil:
			round.Selected = append(round.Selected, candidate.EntrantID)
			picked++
		case lostRace(err):
			e.logger.Debug("lottery candidate skipped",
				logger.String("event_id", round.EventID),
				logger.String("entrant_id", candidate.EntrantID),
				logger.String("reason", err.Error()),
			)
		case errors.Is(err, domain.ErrCapacityExceeded):
			// slots taken by another writer since the count
			e.logger.Warn("lottery round stopped at capacity",
				logger.String("event_id", round.EventID),
				logger.String("round_id", round.RoundID),
				logger.Int("picked", picked),
			)
			return nil
		default:
			return err
		}
	}

	if picked < n {
		e.logger.Warn("lottery round under-filled",
			logger.String("event_id", round.EventID),
			logger.String("round_id", round.RoundID),
			logger.Int("wanted", n),
			logger.Int("picked", picked),
		)
	}

	return nil
}

func lostRace(err error) bool {
	return errors.Is(err, domain.ErrStaleState) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrEntryNotFound)
}

func sortByJoinTime(entries []*domain.Entry) {
	slices.SortFunc(entries, func(a, b *domain.Entry) int {
		if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
			return c
		}
		return strings.Compare(a.EntrantID, b.EntrantID)
	})
}
