package domain

import "time"

type RoundOutcome string

const (
	RoundCompleted RoundOutcome = "completed"
	RoundPartial   RoundOutcome = "partial"
)

// LotteryRound records one Draw invocation. A completed round is final: a
// retried Draw with the same RoundID returns Selected unchanged.
type LotteryRound struct {
	EventID   string       `json:"event_id"   msgpack:"event_id"`
	RoundID   string       `json:"round_id"   msgpack:"round_id"`
	Requested int          `json:"requested"  msgpack:"requested"`
	Attempted int          `json:"attempted"  msgpack:"attempted"`
	Selected  []string     `json:"selected"   msgpack:"selected"`
	Outcome   RoundOutcome `json:"outcome"    msgpack:"outcome"`
	Seed      int64        `json:"seed"       msgpack:"seed"`
	CreatedAt time.Time    `json:"created_at" msgpack:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" msgpack:"updated_at"`
}

func (r *LotteryRound) Completed() bool {
	return r.Outcome == RoundCompleted
}

// DrawSummary describes a draw started by the scheduler.
type DrawSummary struct {
	EventID  string
	RoundID  string
	Selected []string
}
