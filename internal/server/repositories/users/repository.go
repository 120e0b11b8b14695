package users

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Confirm marks the account holding token as confirmed and returns its id.
	Confirm(ctx context.Context, token string) (string, error)
}
