// Package refreshtokens persists the opaque refresh tokens issued at sign-in.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error
	// Find returns common.ErrorNotFound for an unknown token.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	// Delete is a no-op for an unknown token.
	Delete(ctx context.Context, token string) error
}
