package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// fakeClient is an in-memory data store holding several users' rows. List
// calls return only the signed-in user's rows, like the real store.
type fakeClient struct {
	mu sync.Mutex

	passwords map[string]string // email -> password
	userIDs   map[string]string // email -> user id
	current   *models.Identity
	nextID    int

	contacts  []models.Contact
	occasions []models.Occasion
	messages  []models.Message

	listContactsErr  error
	listOccasionsErr error
	listMessagesErr  error
	createMessageErr error
	createContactErr error
	signOutErr       error
	refreshErr       error

	calls map[string]int

	subscribers map[int]func(models.SessionEvent)
	nextSub     int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		passwords:   map[string]string{"alice@example.com": "pw", "bob@example.com": "pw"},
		userIDs:     map[string]string{"alice@example.com": "u-alice", "bob@example.com": "u-bob"},
		calls:       map[string]int{},
		subscribers: map[int]func(models.SessionEvent){},
	}
}

func (f *fakeClient) count(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeClient) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) id() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeClient) userID() (string, error) {
	if f.current == nil {
		return "", client.ErrUnauthorized
	}
	return f.current.UserID, nil
}

func (f *fakeClient) publish(ev models.SessionEvent) {
	f.mu.Lock()
	fns := make([]func(models.SessionEvent), 0, len(f.subscribers))
	for _, fn := range f.subscribers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (f *fakeClient) session(email string) *models.Session {
	return &models.Session{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
		ExpiresAt:    time.Now().Add(time.Hour),
		Identity:     models.Identity{UserID: f.userIDs[email], Email: email},
	}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) SignUp(ctx context.Context, email, password string) (bool, error) {
	f.count("SignUp")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.passwords[email]; ok {
		return false, &client.AuthError{Message: common.MsgAlreadyRegistered}
	}
	f.passwords[email] = password
	f.userIDs[email] = "u-" + email
	return true, nil
}

func (f *fakeClient) Confirm(ctx context.Context, token string) error {
	f.count("Confirm")
	if token != "good-token" {
		return &client.AuthError{Message: common.MsgInvalidConfirmation}
	}
	return nil
}

func (f *fakeClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	f.count("SignIn")
	f.mu.Lock()
	if pw, ok := f.passwords[email]; !ok || pw != password {
		f.mu.Unlock()
		return nil, &client.AuthError{Message: common.MsgInvalidCredentials}
	}
	sess := f.session(email)
	f.current = &sess.Identity
	f.mu.Unlock()

	f.publish(models.SessionEvent{Kind: models.SignedIn, Session: sess})
	return sess, nil
}

func (f *fakeClient) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	f.count("RefreshSession")
	f.mu.Lock()
	if f.refreshErr != nil {
		f.mu.Unlock()
		return nil, f.refreshErr
	}
	var sess *models.Session
	for email := range f.userIDs {
		if "refresh-"+email == refreshToken {
			sess = f.session(email)
		}
	}
	if sess == nil {
		f.mu.Unlock()
		return nil, client.ErrUnauthorized
	}
	f.current = &sess.Identity
	f.mu.Unlock()

	f.publish(models.SessionEvent{Kind: models.TokenRefreshed, Session: sess})
	return sess, nil
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	f.count("SignOut")
	f.mu.Lock()
	if f.current == nil {
		f.mu.Unlock()
		return client.ErrNotSignedIn
	}
	f.current = nil
	err := f.signOutErr
	f.mu.Unlock()

	f.publish(models.SessionEvent{Kind: models.SignedOut})
	return err
}

// expire simulates a rejected refresh inside the client.
func (f *fakeClient) expire() {
	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()
	f.publish(models.SessionEvent{Kind: models.SessionExpired})
}

func (f *fakeClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	f.count("ListContacts")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listContactsErr != nil {
		return nil, f.listContactsErr
	}
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	var out []models.Contact
	for _, c := range f.contacts {
		if c.UserID == uid {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClient) CreateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	f.count("CreateContact")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createContactErr != nil {
		return nil, f.createContactErr
	}
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	c.ID, c.UserID, c.CreatedAt = f.id(), uid, time.Now()
	f.contacts = append(f.contacts, c)
	return &c, nil
}

func (f *fakeClient) UpdateContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	f.count("UpdateContact")
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	for i := range f.contacts {
		if f.contacts[i].ID == c.ID && f.contacts[i].UserID == uid {
			c.UserID, c.CreatedAt = uid, f.contacts[i].CreatedAt
			f.contacts[i] = c
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClient) DeleteContact(ctx context.Context, id string) error {
	f.count("DeleteContact")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeClient) ListOccasions(ctx context.Context) ([]models.Occasion, error) {
	f.count("ListOccasions")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listOccasionsErr != nil {
		return nil, f.listOccasionsErr
	}
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	var out []models.Occasion
	for _, o := range f.occasions {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeClient) CreateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	f.count("CreateOccasion")
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	o.ID, o.UserID = f.id(), uid
	f.occasions = append(f.occasions, o)
	return &o, nil
}

func (f *fakeClient) UpdateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	f.count("UpdateOccasion")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.occasions {
		if f.occasions[i].ID == o.ID {
			o.UserID = f.occasions[i].UserID
			f.occasions[i] = o
			return &o, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeClient) DeleteOccasion(ctx context.Context, id string) error {
	f.count("DeleteOccasion")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.occasions {
		if f.occasions[i].ID == id {
			f.occasions = append(f.occasions[:i], f.occasions[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeClient) ListMessages(ctx context.Context, limit int) ([]models.Message, error) {
	f.count("ListMessages")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listMessagesErr != nil {
		return nil, f.listMessagesErr
	}
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	var out []models.Message
	for i := len(f.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if f.messages[i].UserID == uid {
			out = append(out, f.messages[i])
		}
	}
	return out, nil
}

func (f *fakeClient) CreateMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	f.count("CreateMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createMessageErr != nil {
		return nil, f.createMessageErr
	}
	uid, err := f.userID()
	if err != nil {
		return nil, err
	}
	m.ID, m.UserID = f.id(), uid
	m.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	f.messages = append(f.messages, m)
	return &m, nil
}

func (f *fakeClient) Subscribe(fn func(models.SessionEvent)) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subscribers[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()
	}
}

func (f *fakeClient) subscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers)
}

type fakeProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	block   chan struct{}
	started chan struct{}
}

func (p *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	block, started := p.block, p.started
	p.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return p.text, p.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type memRepo struct {
	mu     sync.Mutex
	values map[string]string
	err    error
}

func newMemRepo() *memRepo { return &memRepo{values: map[string]string{}} }

func (r *memRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], r.err
}

func (r *memRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
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
	r.values = map[string]string{}
	return nil
}

var errBoom = errors.New("boom")

// fixture wires the services around one fake store, like the CLI does.
type fixture struct {
	client    *fakeClient
	repo      *memRepo
	state     *State
	sessions  *SessionManager
	provider  *fakeProvider
	clipboard *fakeClipboard
	composer  *Composer
	contacts  *ContactEditor
	occasions *OccasionEditor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client:    newFakeClient(),
		repo:      newMemRepo(),
		provider:  &fakeProvider{},
		clipboard: &fakeClipboard{},
	}
	log := logging.Nop{}
	f.state = NewState(f.client, log)
	f.sessions = NewSessionManager(f.client, f.repo, f.state, log)
	f.sessions.Start()
	t.Cleanup(f.sessions.Close)
	f.composer = NewComposer(f.state, f.client, ProviderStrategy{Provider: f.provider}, f.clipboard, log)
	f.contacts = NewContactEditor(f.state, f.client, log)
	f.occasions = NewOccasionEditor(f.state, f.client, log)
	return f
}

func (f *fixture) seedContact(userID, id, name, tier string) models.Contact {
	c := models.Contact{ID: id, UserID: userID, Name: name, PhoneNumber: "+1-555-" + id, RelationshipTier: models.RelationshipTier(tier)}
	f.client.mu.Lock()
	f.client.contacts = append(f.client.contacts, c)
	f.client.mu.Unlock()
	return c
}

func (f *fixture) seedOccasion(userID, id, contactID, name, date string) models.Occasion {
	d, _ := time.Parse(models.DateLayout, date)
	o := models.Occasion{ID: id, UserID: userID, ContactID: contactID, OccasionType: models.OccasionBirthday, OccasionName: name, Date: d}
	f.client.mu.Lock()
	f.client.occasions = append(f.client.occasions, o)
	f.client.mu.Unlock()
	return o
}

func (f *fixture) signIn(t *testing.T, email string) {
	t.Helper()
	if err := f.sessions.SignIn(context.Background(), email, "pw"); err != nil {
		t.Fatalf("sign in %s: %v", email, err)
	}
}
