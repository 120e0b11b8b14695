package client

import (
	"context"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
)

// Client is the data store as the CLI sees it. Authenticated calls use the
// session established by SignIn or RefreshSession.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	SignUp(ctx context.Context, email, password string) (confirmationRequired bool, err error)
	Confirm(ctx context.Context, token string) error
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error)
	SignOut(ctx context.Context) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact) (*models.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	ListOccasions(ctx context.Context) ([]models.Occasion, error)
	CreateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error)
	UpdateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error)
	DeleteOccasion(ctx context.Context, id string) error

	ListMessages(ctx context.Context, limit int) ([]models.Message, error)
	CreateMessage(ctx context.Context, m models.Message) (*models.Message, error)

	// Subscribe registers fn for session changes and returns a function
	// that removes it. fn runs on the goroutine that caused the change.
	Subscribe(fn func(models.SessionEvent)) (unsubscribe func())
}
