package dto

type CreateEventRequest struct {
	Title                string `json:"title" binding:"required"`
	Description          string `json:"description"`
	DrawCapacity         int    `json:"draw_capacity" binding:"required,gt=0"`
	WaitingListCapacity  int    `json:"waiting_list_capacity" binding:"gte=0"`
	RequiresGeolocation  bool   `json:"requires_geolocation"`
	RegistrationClosesAt string `json:"registration_closes_at"`
	Open                 bool   `json:"open"`
}

type JoinRequest struct {
	EntrantID string   `json:"entrant_id" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type DrawRequest struct {
	RoundID string `json:"round_id"`
	Count   int    `json:"count" binding:"gte=0"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept decline"`
}

type CreateEntrantRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
