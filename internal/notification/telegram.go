package notification

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type entrantGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Entrant, error)
}

// TelegramNotifier delivers notification records to entrants that
// registered a Telegram chat id.
type TelegramNotifier struct {
	bot      sender
	entrants entrantGetter
	limiter  *rate.Limiter
	logger   logger.Logger
}

// NewTelegramNotifier connects to the bot API. An empty token yields a
// notifier that accepts and drops every record.
func NewTelegramNotifier(token string, entrants entrantGetter, perSecond float64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return newTelegramNotifier(nil, entrants, perSecond, logger), nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return newTelegramNotifier(bot, entrants, perSecond, logger), nil
}

func newTelegramNotifier(bot sender, entrants entrantGetter, perSecond float64, logger logger.Logger) *TelegramNotifier {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &TelegramNotifier{
		bot:      bot,
		entrants: entrants,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
}

func (n *TelegramNotifier) Dispatch(ctx context.Context, rec domain.NotificationRecord) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)",
			logger.String("entrant_id", rec.EntrantID),
			logger.String("type", string(rec.Type)),
		)
		return nil
	}

	entrant, err := n.entrants.GetByID(ctx, rec.EntrantID)
	if err != nil {
		if errors.Is(err, domain.ErrEntrantNotFound) {
			n.logger.Debug("notification skipped (unknown entrant)", logger.String("entrant_id", rec.EntrantID))
			return nil
		}
		return fmt.Errorf("resolve chat id: %w", err)
	}
	if entrant.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("entrant_id", rec.EntrantID))
		return nil
	}

	if err = n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram rate limit: %w", err)
	}

	msg := tgbotapi.NewMessage(*entrant.TelegramChatID, formatMessage(rec))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err = n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", *entrant.TelegramChatID, err)
	}

	return nil
}

func formatMessage(rec domain.NotificationRecord) string {
	return fmt.Sprintf("*%s*\n\n%s\n\nEvent: %s", rec.Title, rec.Body, rec.EventID)
}
