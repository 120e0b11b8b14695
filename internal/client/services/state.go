// Package services holds the CLI application logic: the domain state cache,
// the session manager, the message composer and the contact and occasion
// editors. Services talk to the data store only through client.Client.
package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/logging"
	"golang.org/x/sync/errgroup"
)

// State is the local snapshot of the signed-in user's data. It is rebuilt
// wholesale by Reload and never patched in place.
type State struct {
	client client.Client
	logger logging.Logger

	mu        sync.RWMutex
	identity  *models.Identity
	contacts  []models.Contact
	occasions []models.Occasion
	messages  []models.Message
}

func NewState(c client.Client, logger logging.Logger) *State {
	return &State{client: c, logger: logger}
}

// Identity returns a copy of the current identity, or nil.
func (s *State) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// SetIdentity switches the owner of the snapshot. Data belonging to another
// user (or to nobody, when id is nil) is dropped.
func (s *State) SetIdentity(id *models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.identity = nil
		s.clearLocked()
		return
	}
	if s.identity == nil || s.identity.UserID != id.UserID {
		s.clearLocked()
	}
	cp := *id
	s.identity = &cp
}

// Clear discards the snapshot but keeps the identity.
func (s *State) Clear() {
	s.mu.Lock()
	s.clearLocked()
	s.mu.Unlock()
}

func (s *State) clearLocked() {
	s.contacts, s.occasions, s.messages = nil, nil, nil
}

// commit applies fn under the write lock unless the identity changed since
// the reload started.
func (s *State) commit(owner string, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || s.identity.UserID != owner {
		return false
	}
	fn()
	return true
}

func ownedBy[T any](items []T, owner string, userID func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if uid := userID(it); uid == "" || uid == owner {
			out = append(out, it)
		}
	}
	return out
}

// Reload fetches contacts, occasions and recent messages concurrently and
// replaces each collection that loaded. A failed fetch keeps the previous
// collection; all failures are joined into the returned error.
func (s *State) Reload(ctx context.Context) error {
	id := s.Identity()
	if id == nil {
		return client.ErrNotSignedIn
	}
	owner := id.UserID

	var (
		g    errgroup.Group
		errs [3]error
	)

	g.Go(func() error {
		list, err := s.client.ListContacts(ctx)
		if err != nil {
			errs[0] = fmt.Errorf("load contacts: %w", err)
			return nil
		}
		list = ownedBy(list, owner, func(c models.Contact) string { return c.UserID })
		slices.SortStableFunc(list, func(a, b models.Contact) int { return cmp.Compare(a.Name, b.Name) })
		s.commit(owner, func() { s.contacts = list })
		return nil
	})

	g.Go(func() error {
		list, err := s.client.ListOccasions(ctx)
		if err != nil {
			errs[1] = fmt.Errorf("load occasions: %w", err)
			return nil
		}
		list = ownedBy(list, owner, func(o models.Occasion) string { return o.UserID })
		slices.SortStableFunc(list, func(a, b models.Occasion) int { return a.Date.Compare(b.Date) })
		s.commit(owner, func() { s.occasions = list })
		return nil
	})

	g.Go(func() error {
		list, err := s.client.ListMessages(ctx, common.RecentMessagesLimit)
		if err != nil {
			errs[2] = fmt.Errorf("load messages: %w", err)
			return nil
		}
		list = ownedBy(list, owner, func(m models.Message) string { return m.UserID })
		slices.SortStableFunc(list, func(a, b models.Message) int { return b.CreatedAt.Compare(a.CreatedAt) })
		if len(list) > common.RecentMessagesLimit {
			list = list[:common.RecentMessagesLimit]
		}
		s.commit(owner, func() { s.messages = list })
		return nil
	})

	_ = g.Wait()

	err := errors.Join(errs[:]...)
	if err != nil {
		s.logger.Warn(ctx, "reload incomplete", "error", err)
	} else {
		s.logger.Debug(ctx, "reloaded", "user_id", owner)
	}
	return err
}

func (s *State) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

func (s *State) Occasions() []models.Occasion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.occasions)
}

func (s *State) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

func (s *State) Contact(id string) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

func (s *State) Occasion(id string) (models.Occasion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.occasions {
		if o.ID == id {
			return o, true
		}
	}
	return models.Occasion{}, false
}

// OccasionsFor returns the contact's occasions, earliest date first.
func (s *State) OccasionsFor(contactID string) []models.Occasion {
	s.mu.RLock()
	out := make([]models.Occasion, 0)
	for _, o := range s.occasions {
		if o.ContactID == contactID {
			out = append(out, o)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b models.Occasion) int { return a.Date.Compare(b.Date) })
	return out
}
