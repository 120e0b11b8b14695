package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/common"
)

// fakeStore is a single-user in-memory client.Client.
type fakeStore struct {
	mu sync.Mutex

	signedIn   bool
	pingErr    error
	signUpErr  error
	refreshErr error
	nextID     int

	contacts  []models.Contact
	occasions []models.Occasion
	messages  []models.Message

	deleted []string
	subs    map[int]func(models.SessionEvent)
	nextSub int
}

func newFakeStore() *fakeStore {
	return &fakeStore{subs: map[int]func(models.SessionEvent){}}
}

func (f *fakeStore) publish(ev models.SessionEvent) {
	f.mu.Lock()
	fns := make([]func(models.SessionEvent), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (f *fakeStore) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) SignUp(ctx context.Context, email, password string) (bool, error) {
	if f.signUpErr != nil {
		return false, f.signUpErr
	}
	return true, nil
}

func (f *fakeStore) Confirm(ctx context.Context, token string) error { return nil }

func (f *fakeStore) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if password != "pw" {
		return nil, &client.AuthError{Message: common.MsgInvalidCredentials}
	}
	sess := &models.Session{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiresAt:    time.Now().Add(time.Hour),
		Identity:     models.Identity{UserID: "u-1", Email: email},
	}
	f.mu.Lock()
	f.signedIn = true
	f.mu.Unlock()
	f.publish(models.SessionEvent{Kind: models.SignedIn, Session: sess})
	return sess, nil
}

func (f *fakeStore) RefreshSession(ctx context.Context, token string) (*models.Session, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return nil, client.ErrUnauthorized
}

func (f *fakeStore) SignOut(ctx context.Context) error {
	f.mu.Lock()
	if !f.signedIn {
		f.mu.Unlock()
		return client.ErrNotSignedIn
	}
	f.signedIn = false
	f.mu.Unlock()
	f.publish(models.SessionEvent{Kind: models.SignedOut})
	return nil
}

func (f *fakeStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Contact(nil), f.contacts...), nil
}

func (f *fakeStore) CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID, c.UserID = f.id(), "u-1"
	f.contacts = append(f.contacts, c)
	return &c, nil
}

func (f *fakeStore) UpdateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.contacts {
		if f.contacts[i].ID == c.ID {
			c.UserID = "u-1"
			f.contacts[i] = c
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStore) DeleteContact(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) ListOccasions(ctx context.Context) ([]models.Occasion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Occasion(nil), f.occasions...), nil
}

func (f *fakeStore) CreateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID, o.UserID = f.id(), "u-1"
	f.occasions = append(f.occasions, o)
	return &o, nil
}

func (f *fakeStore) UpdateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.occasions {
		if f.occasions[i].ID == o.ID {
			o.UserID = "u-1"
			f.occasions[i] = o
			return &o, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeStore) DeleteOccasion(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	for i := range f.occasions {
		if f.occasions[i].ID == id {
			f.occasions = append(f.occasions[:i], f.occasions[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeStore) ListMessages(ctx context.Context, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Message(nil), f.messages...), nil
}

func (f *fakeStore) CreateMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID, m.UserID, m.CreatedAt = f.id(), "u-1", time.Now()
	f.messages = append(f.messages, m)
	return &m, nil
}

func (f *fakeStore) Subscribe(fn func(models.SessionEvent)) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

type memRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func (r *memRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *memRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = map[string]string{}
	}
	r.values[key] = value
	return nil
}

func (r *memRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *memRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = nil
	return nil
}

type stubProvider struct {
	text string
	err  error
}

func (p stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.text, p.err
}
