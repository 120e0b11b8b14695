package models

import "time"

// Message is a generated text the user chose, logged with its delivery status.
type Message struct {
	ID          string
	UserID      string
	ContactID   string  `validate:"required"`
	OccasionID  *string `validate:"omitempty,min=1"`
	MessageText string  `validate:"required"`
	Style       string  `validate:"oneof=formal casual warm"`
	SentAt      *time.Time
	Status      string `validate:"oneof=draft sent scheduled"`
	CreatedAt   time.Time
}
