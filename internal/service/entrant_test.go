package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports/mocks"
)

func TestEntrantService_Create(t *testing.T) {
	repo := mocks.NewMockEntrantRepo(t)
	svc := NewEntrantService(repo, memory.NewInbox(), newFakeClock())
	chatID := int64(1001)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Entrant) bool {
		return e.Name == "alice" && e.TelegramChatID != nil && *e.TelegramChatID == chatID
	})).Return(nil)

	entrant, err := svc.Create(context.Background(), domain.CreateEntrantInput{Name: "alice", TelegramChatID: &chatID})

	require.NoError(t, err)
	assert.NotEmpty(t, entrant.ID)
	assert.Equal(t, testEpoch, entrant.CreatedAt)
}

func TestEntrantService_Create_Validation(t *testing.T) {
	svc := NewEntrantService(mocks.NewMockEntrantRepo(t), memory.NewInbox(), newFakeClock())

	_, err := svc.Create(context.Background(), domain.CreateEntrantInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEntrantService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockEntrantRepo(t)
	svc := NewEntrantService(repo, memory.NewInbox(), newFakeClock())

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrStoreUnavailable)

	_, err := svc.Create(context.Background(), domain.CreateEntrantInput{Name: "alice"})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestEntrantService_Notifications(t *testing.T) {
	h := newHarness(t, 3)
	svc := NewEntrantService(memory.NewEntrantRepo(), h.inbox, h.clock)
	event := h.addEvent(t, 1)
	h.join(t, event.ID, "u1")
	_, err := h.svc.Draw(context.Background(), event.ID, "r1", 1)
	require.NoError(t, err)
	require.NoError(t, h.svc.Decide(context.Background(), event.ID, "u1", domain.DecisionAccept))

	recs, err := svc.Notifications(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.NotificationAccepted, recs[0].Type)
	assert.Equal(t, domain.NotificationChosen, recs[1].Type)
}

func TestEntrantService_Notifications_Inbox(t *testing.T) {
	inbox := mocks.NewMockNotificationInbox(t)
	svc := NewEntrantService(memory.NewEntrantRepo(), inbox, newFakeClock())

	inbox.EXPECT().ListByEntrant(mock.Anything, "u1").Return([]*domain.NotificationRecord{{ID: "n1"}}, nil)

	recs, err := svc.Notifications(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
