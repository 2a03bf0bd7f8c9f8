package domain

import "time"

// User is the read-only account view the core needs: an email for the
// gateway and an optional Telegram chat for ticket delivery.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}
