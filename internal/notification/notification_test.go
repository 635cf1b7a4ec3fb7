package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeBot struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func record(entrantID string) domain.NotificationRecord {
	return domain.NotificationRecord{
		ID:        "n-" + entrantID,
		EntrantID: entrantID,
		EventID:   "e1",
		Type:      domain.NotificationChosen,
		Title:     "You have been selected",
		Body:      "Accept or decline.",
		CreatedAt: time.Now(),
	}
}

func seedEntrants(t *testing.T) *memory.EntrantRepo {
	t.Helper()
	chatID := int64(42)
	repo := memory.NewEntrantRepo()
	require.NoError(t, repo.Create(context.Background(), &domain.Entrant{ID: "u1", Name: "alice", TelegramChatID: &chatID}))
	require.NoError(t, repo.Create(context.Background(), &domain.Entrant{ID: "u2", Name: "bob"}))
	return repo
}

// --- Telegram ---

func TestTelegramNotifier_SendsToChat(t *testing.T) {
	bot := &fakeBot{}
	n := newTelegramNotifier(bot, seedEntrants(t), 0, newTestLogger(t))

	err := n.Dispatch(context.Background(), record("u1"))

	require.NoError(t, err)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, "You have been selected")
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	bot := &fakeBot{}
	n := newTelegramNotifier(bot, seedEntrants(t), 0, newTestLogger(t))

	require.NoError(t, n.Dispatch(context.Background(), record("u2")))
	require.NoError(t, n.Dispatch(context.Background(), record("unknown")))

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", seedEntrants(t), 1, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, n.Dispatch(context.Background(), record("u1")))
}

func TestTelegramNotifier_SendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram down")}
	n := newTelegramNotifier(bot, seedEntrants(t), 0, newTestLogger(t))

	err := n.Dispatch(context.Background(), record("u1"))

	assert.ErrorContains(t, err, "telegram down")
}

func TestTelegramNotifier_LookupError(t *testing.T) {
	entrants := mocks.NewMockEntrantRepo(t)
	n := newTelegramNotifier(&fakeBot{}, entrants, 0, newTestLogger(t))

	entrants.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrStoreUnavailable)

	err := n.Dispatch(context.Background(), record("u1"))

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// --- Dispatcher ---

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	inbox := memory.NewInbox()
	d := NewDispatcher(inbox, 2, 16, time.Second, newTestLogger(t))

	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, d.Dispatch(context.Background(), record(id)))
	}

	require.NoError(t, d.Close(context.Background()))
	assert.Len(t, inbox.All(), 3)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	next := mocks.NewMockNotificationPort(t)
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	next.EXPECT().Dispatch(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, domain.NotificationRecord) error {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
			return nil
		})

	d := NewDispatcher(next, 1, 1, time.Second, newTestLogger(t))

	require.NoError(t, d.Dispatch(context.Background(), record("u1")))
	<-started // worker holds u1
	require.NoError(t, d.Dispatch(context.Background(), record("u2")))

	err := d.Dispatch(context.Background(), record("u3"))
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	require.NoError(t, d.Close(context.Background()))
	assert.Len(t, next.Calls, 2)
}

func TestDispatcher_RejectsAfterClose(t *testing.T) {
	d := NewDispatcher(memory.NewInbox(), 1, 1, time.Second, newTestLogger(t))
	require.NoError(t, d.Close(context.Background()))

	err := d.Dispatch(context.Background(), record("u1"))

	assert.ErrorIs(t, err, ErrDispatcherClosed)
	assert.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_DeliveryErrorIsContained(t *testing.T) {
	next := mocks.NewMockNotificationPort(t)
	next.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	d := NewDispatcher(next, 1, 4, time.Second, newTestLogger(t))
	require.NoError(t, d.Dispatch(context.Background(), record("u1")))

	assert.NoError(t, d.Close(context.Background()))
}

// --- Fanout ---

func TestFanout_DeliversToAll(t *testing.T) {
	a, b := memory.NewInbox(), memory.NewInbox()

	err := Fanout{a, b}.Dispatch(context.Background(), record("u1"))

	require.NoError(t, err)
	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}

func TestFanout_ContinuesAfterFailure(t *testing.T) {
	failing := mocks.NewMockNotificationPort(t)
	failing.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(errors.New("boom"))
	inbox := memory.NewInbox()

	err := Fanout{failing, inbox}.Dispatch(context.Background(), record("u1"))

	assert.ErrorContains(t, err, "boom")
	assert.Len(t, inbox.All(), 1)
}
