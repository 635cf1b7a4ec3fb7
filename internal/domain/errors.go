package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEntrantNotFound = errors.New("entrant not found")
	ErrEntryNotFound   = errors.New("waitlist entry not found")
	ErrRoundNotFound   = errors.New("lottery round not found")
)

var (
	ErrDuplicateEntry    = errors.New("entrant is already on the waiting list")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStaleState        = errors.New("entry changed concurrently")
	ErrConflict          = errors.New("concurrent update conflict")
	ErrCapacityExceeded  = errors.New("draw capacity exceeded")
)

var (
	ErrEventNotOpen     = errors.New("event is not open for registration")
	ErrEventStatus      = errors.New("event status does not allow this action")
	ErrWaitlistFull     = errors.New("waiting list is full")
	ErrEntrantExists    = errors.New("entrant already exists")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
