// Package models defines server-side rows persisted in the store database.
package models

import "time"

type User struct {
	ID                string
	Email             string
	PasswordHash      []byte
	Salt              []byte
	Confirmed         bool
	ConfirmationToken *string
	CreatedAt         time.Time
}
