// Package contacts stores each user's contacts. Every method is scoped by
// user id; rows of other users behave as absent.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]models.Contact, error)
	Get(ctx context.Context, userID, id string) (*models.Contact, error)
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, userID, id string) error
}
