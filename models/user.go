package models

import "time"

const (
	MessagePending  = "pending"
	MessageAnswered = "answered"
)

type SupportMessage struct {
	ID            int        `json:"id"`
	UserName      string     `json:"user_name"`
	Message       string     `json:"message"`
	AdminResponse *string    `json:"admin_response"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	RespondedAt   *time.Time `json:"responded_at"`
}

type PromoCode struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	Active          bool   `json:"active"`
}

type AdminSession struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
