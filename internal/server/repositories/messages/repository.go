// Package messages logs the texts a user picked and sent.
package messages

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/server/models"
)

type Repository interface {
	// List returns at most limit messages, newest first.
	List(ctx context.Context, userID string, limit int) ([]models.Message, error)
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
}
