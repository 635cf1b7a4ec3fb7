package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

type EntrantService struct {
	repo  ports.EntrantRepo
	inbox ports.NotificationInbox
	clock Clock
}

func NewEntrantService(repo ports.EntrantRepo, inbox ports.NotificationInbox, clock Clock) *EntrantService {
	return &EntrantService{repo: repo, inbox: inbox, clock: clock}
}

func (s *EntrantService) Create(ctx context.Context, input domain.CreateEntrantInput) (*domain.Entrant, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	entrant := &domain.Entrant{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.Create(ctx, entrant); err != nil {
		return nil, fmt.Errorf("create entrant: %w", err)
	}

	return entrant, nil
}

func (s *EntrantService) GetByID(ctx context.Context, id string) (*domain.Entrant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EntrantService) List(ctx context.Context) ([]*domain.Entrant, error) {
	return s.repo.List(ctx)
}

func (s *EntrantService) Notifications(ctx context.Context, entrantID string) ([]*domain.NotificationRecord, error) {
	return s.inbox.ListByEntrant(ctx, entrantID)
}
