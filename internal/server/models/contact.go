package models

import "time"

// Contact is a person the user keeps in touch with.
type Contact struct {
	ID               string
	UserID           string
	Name             string  `validate:"required,max=200"`
	PhoneNumber      string  `validate:"required,max=50"`
	RelationshipTier string  `validate:"oneof=close_family extended_family close_friends friends professional"`
	Notes            *string `validate:"omitempty,max=2000"`
	CreatedAt        time.Time
}
