package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/services"
)

type fakeUsers struct {
	signUpPending bool
	signUpErr     error
	confirmErr    error
	session       *services.Session
	signInErr     error
	refreshErr    error
	signOutErr    error

	// tokens maps access tokens to user ids; "expired" is always expired.
	tokens map[string]string
}

func (f *fakeUsers) SignUp(_ context.Context, email, _ string) (*models.User, bool, error) {
	if f.signUpErr != nil {
		return nil, false, f.signUpErr
	}
	return &models.User{ID: "u-new", Email: email}, f.signUpPending, nil
}

func (f *fakeUsers) Confirm(context.Context, string) error { return f.confirmErr }

func (f *fakeUsers) SignIn(context.Context, string, string) (*services.Session, error) {
	return f.session, f.signInErr
}

func (f *fakeUsers) Refresh(context.Context, string) (*services.Session, error) {
	return f.session, f.refreshErr
}

func (f *fakeUsers) SignOut(context.Context, string) error { return f.signOutErr }

func (f *fakeUsers) UserIDFromAccessToken(token string) (string, error) {
	if token == "expired" {
		return "", common.ErrTokenExpired
	}
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return "", common.ErrInvalidToken
}

type fakeData struct {
	lastUserID string
	contacts   []models.Contact
	occasions  []models.Occasion
	messages   []models.Message
	lastLimit  int
	err        error
}

func (f *fakeData) ListContacts(_ context.Context, userID string) ([]models.Contact, error) {
	f.lastUserID = userID
	return f.contacts, f.err
}

func (f *fakeData) CreateContact(_ context.Context, userID string, c *models.Contact) (*models.Contact, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	c.ID, c.UserID, c.CreatedAt = "c-1", userID, time.Now()
	return c, nil
}

func (f *fakeData) UpdateContact(_ context.Context, userID string, c *models.Contact) (*models.Contact, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	c.UserID = userID
	return c, nil
}

func (f *fakeData) DeleteContact(_ context.Context, userID, _ string) error {
	f.lastUserID = userID
	return f.err
}

func (f *fakeData) ListOccasions(_ context.Context, userID string) ([]models.Occasion, error) {
	f.lastUserID = userID
	return f.occasions, f.err
}

func (f *fakeData) CreateOccasion(_ context.Context, userID string, o *models.Occasion) (*models.Occasion, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	o.ID, o.UserID = "o-1", userID
	return o, nil
}

func (f *fakeData) UpdateOccasion(_ context.Context, userID string, o *models.Occasion) (*models.Occasion, error) {
	f.lastUserID = userID
	return o, f.err
}

func (f *fakeData) DeleteOccasion(_ context.Context, userID, _ string) error {
	f.lastUserID = userID
	return f.err
}

func (f *fakeData) ListMessages(_ context.Context, userID string, limit int) ([]models.Message, error) {
	f.lastUserID, f.lastLimit = userID, limit
	return f.messages, f.err
}

func (f *fakeData) CreateMessage(_ context.Context, userID string, m *models.Message) (*models.Message, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	m.ID, m.UserID = "m-1", userID
	return m, nil
}
