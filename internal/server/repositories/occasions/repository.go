// Package occasions stores dated events attached to contacts.
package occasions

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/server/models"
)

type Repository interface {
	// List returns the user's occasions, earliest date first.
	List(ctx context.Context, userID string) ([]models.Occasion, error)
	Get(ctx context.Context, userID, id string) (*models.Occasion, error)
	Create(ctx context.Context, o *models.Occasion) (*models.Occasion, error)
	Update(ctx context.Context, o *models.Occasion) (*models.Occasion, error)
	Delete(ctx context.Context, userID, id string) error
}
