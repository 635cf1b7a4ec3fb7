package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

var _ ports.EntrantRepo = (*EntrantRepo)(nil)

type EntrantRepo struct {
	mu       sync.RWMutex
	entrants map[string]*domain.Entrant
}

func NewEntrantRepo() *EntrantRepo {
	return &EntrantRepo{entrants: make(map[string]*domain.Entrant)}
}

func (r *EntrantRepo) Create(_ context.Context, e *domain.Entrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entrants[e.ID]; ok {
		return domain.ErrEntrantExists
	}
	cp := *e
	r.entrants[e.ID] = &cp
	return nil
}

func (r *EntrantRepo) GetByID(_ context.Context, id string) (*domain.Entrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entrants[id]
	if !ok {
		return nil, domain.ErrEntrantNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EntrantRepo) List(_ context.Context) ([]*domain.Entrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Entrant, 0, len(r.entrants))
	for _, e := range r.entrants {
		cp := *e
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}
