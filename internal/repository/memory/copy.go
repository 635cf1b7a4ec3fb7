package memory

import (
	"slices"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

func copyEntry(e *domain.Entry) *domain.Entry {
	cp := *e
	if e.DecidedAt != nil {
		t := *e.DecidedAt
		cp.DecidedAt = &t
	}
	if e.Location != nil {
		loc := *e.Location
		cp.Location = &loc
	}
	return &cp
}

func copyRound(r *domain.LotteryRound) *domain.LotteryRound {
	cp := *r
	cp.Selected = slices.Clone(r.Selected)
	if cp.Selected == nil {
		cp.Selected = []string{}
	}
	return &cp
}

func copyEvent(e *domain.Event) *domain.Event {
	cp := *e
	if e.RegistrationClosesAt != nil {
		t := *e.RegistrationClosesAt
		cp.RegistrationClosesAt = &t
	}
	return &cp
}
