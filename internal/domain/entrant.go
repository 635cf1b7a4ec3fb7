package domain

import "time"

type Entrant struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateEntrantInput struct {
	Name           string
	TelegramChatID *int64
}
