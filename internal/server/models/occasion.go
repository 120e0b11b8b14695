package models

import "time"

// Occasion is a dated event tied to one of the user's contacts.
// Date carries a calendar day; its time part is always midnight UTC.
type Occasion struct {
	ID           string
	UserID       string
	ContactID    string    `validate:"required"`
	OccasionType string    `validate:"oneof=birthday holiday just_checking_in life_event"`
	OccasionName string    `validate:"required,max=200"`
	Date         time.Time `validate:"required"`
	Recurring    bool
	CreatedAt    time.Time
}
