package services

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/dbx"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/messages"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/occasions"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/users"
)

// memStore backs every fake repository with plain maps.
type memStore struct {
	mu        sync.Mutex
	seq       int
	users     map[string]*models.User
	tokens    map[string]models.RefreshToken
	contacts  map[string]models.Contact
	occasions map[string]models.Occasion
	messages  []models.Message

	createUserErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*models.User{},
		tokens:    map[string]models.RefreshToken{},
		contacts:  map[string]models.Contact{},
		occasions: map[string]models.Occasion{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return prefix + "-" + strconv.Itoa(m.seq)
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *memStore) Users(dbx.DBTX) users.Repository                 { return (*fakeUsers)(m) }
func (m *memStore) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return (*fakeTokens)(m) }
func (m *memStore) Contacts(dbx.DBTX) contacts.Repository           { return (*fakeContacts)(m) }
func (m *memStore) Occasions(dbx.DBTX) occasions.Repository         { return (*fakeOccasions)(m) }
func (m *memStore) Messages(dbx.DBTX) messages.Repository           { return (*fakeMessages)(m) }

type fakeUsers memStore

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createUserErr != nil {
		return nil, m.createUserErr
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = m.nextID("u")
	u.CreatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) Confirm(_ context.Context, token string) (string, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ConfirmationToken != nil && *u.ConfirmationToken == token {
			u.Confirmed = true
			u.ConfirmationToken = nil
			return u.ID, nil
		}
	}
	return "", common.ErrorNotFound
}

type fakeTokens memStore

func (f *fakeTokens) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (f *fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if rt, ok := m.tokens[token]; ok {
		return &rt, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTokens) Delete(_ context.Context, token string) error {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

type fakeContacts memStore

func (f *fakeContacts) List(_ context.Context, userID string) ([]models.Contact, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Contact
	for _, c := range m.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeContacts) Get(_ context.Context, userID, id string) (*models.Contact, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.contacts[id]; ok && c.UserID == userID {
		return &c, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeContacts) Create(_ context.Context, c *models.Contact) (*models.Contact, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID("c")
	c.CreatedAt = time.Now()
	m.contacts[c.ID] = *c
	return c, nil
}

func (f *fakeContacts) Update(_ context.Context, c *models.Contact) (*models.Contact, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.contacts[c.ID]
	if !ok || old.UserID != c.UserID {
		return nil, common.ErrorNotFound
	}
	c.CreatedAt = old.CreatedAt
	m.contacts[c.ID] = *c
	return c, nil
}

func (f *fakeContacts) Delete(_ context.Context, userID, id string) error {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.contacts[id]; !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(m.contacts, id)
	return nil
}

type fakeOccasions memStore

func (f *fakeOccasions) List(_ context.Context, userID string) ([]models.Occasion, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Occasion
	for _, o := range m.occasions {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeOccasions) Get(_ context.Context, userID, id string) (*models.Occasion, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.occasions[id]; ok && o.UserID == userID {
		return &o, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeOccasions) Create(_ context.Context, o *models.Occasion) (*models.Occasion, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.nextID("o")
	m.occasions[o.ID] = *o
	return o, nil
}

func (f *fakeOccasions) Update(_ context.Context, o *models.Occasion) (*models.Occasion, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.occasions[o.ID]; !ok || old.UserID != o.UserID {
		return nil, common.ErrorNotFound
	}
	m.occasions[o.ID] = *o
	return o, nil
}

func (f *fakeOccasions) Delete(_ context.Context, userID, id string) error {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.occasions[id]; !ok || o.UserID != userID {
		return common.ErrorNotFound
	}
	delete(m.occasions, id)
	return nil
}

type fakeMessages memStore

func (f *fakeMessages) List(_ context.Context, userID string, limit int) ([]models.Message, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Message
	for i := len(m.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if m.messages[i].UserID == userID {
			out = append(out, m.messages[i])
		}
	}
	return out, nil
}

func (f *fakeMessages) Create(_ context.Context, msg *models.Message) (*models.Message, error) {
	m := (*memStore)(f)
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = m.nextID("m")
	msg.CreatedAt = time.Now()
	m.messages = append(m.messages, *msg)
	return msg, nil
}
