package session

import "context"

// Keys written by the session manager.
const (
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
	KeyEmail        = "email"
)

// Repository is a string key/value store. Get returns "" and no error for
// an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
