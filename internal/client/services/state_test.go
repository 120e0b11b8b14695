package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ReloadRequiresIdentity(t *testing.T) {
	f := newFixture(t)
	err := f.state.Reload(context.Background())
	assert.ErrorIs(t, err, client.ErrNotSignedIn)
	assert.Zero(t, f.client.callCount("ListContacts"))
}

func TestState_ReloadOrdersCollections(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-2", "Zoe", "friends")
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	f.seedOccasion("u-alice", "o-2", "c-1", "Summer", "2024-06-01")
	f.seedOccasion("u-alice", "o-1", "c-1", "New Year", "2024-01-01")

	f.signIn(t, "alice@example.com")

	names := []string{}
	for _, c := range f.state.Contacts() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Alex", "Zoe"}, names)

	occ := f.state.Occasions()
	require.Len(t, occ, 2)
	assert.Equal(t, "o-1", occ[0].ID)
	assert.Equal(t, 1, f.client.callCount("ListMessages"))
}

func TestState_OccasionsForFiltersByContactDateAscending(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	f.seedContact("u-alice", "c-2", "Sam", "friends")
	f.seedOccasion("u-alice", "o-late", "c-1", "Summer party", "2024-06-01")
	f.seedOccasion("u-alice", "o-other", "c-2", "Sam's day", "2024-03-01")
	f.seedOccasion("u-alice", "o-early", "c-1", "New Year", "2024-01-01")
	f.signIn(t, "alice@example.com")

	got := f.state.OccasionsFor("c-1")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Date.Format(models.DateLayout))
	assert.Equal(t, "2024-06-01", got[1].Date.Format(models.DateLayout))

	assert.Empty(t, f.state.OccasionsFor("c-unknown"))
}

func TestState_FailedFetchKeepsPreviousCollection(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	f.seedOccasion("u-alice", "o-1", "c-1", "New Year", "2024-01-01")
	f.signIn(t, "alice@example.com")
	require.Len(t, f.state.Contacts(), 1)

	f.seedContact("u-alice", "c-2", "Sam", "friends")
	f.client.listContactsErr = errBoom
	f.client.listMessagesErr = errBoom

	err := f.state.Reload(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "load contacts")
	assert.Contains(t, err.Error(), "load messages")

	assert.Len(t, f.state.Contacts(), 1, "contacts unchanged")
	assert.Len(t, f.state.Occasions(), 1)
}

func TestState_AccessorsReturnCopies(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	f.signIn(t, "alice@example.com")

	list := f.state.Contacts()
	list[0].Name = "Mutated"

	c, ok := f.state.Contact("c-1")
	require.True(t, ok)
	assert.Equal(t, "Alex", c.Name)

	_, ok = f.state.Contact("nope")
	assert.False(t, ok)
	_, ok = f.state.Occasion("nope")
	assert.False(t, ok)
}

func TestState_SetIdentityDropsOtherUsersData(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	f.signIn(t, "alice@example.com")
	require.Len(t, f.state.Contacts(), 1)

	f.state.SetIdentity(&models.Identity{UserID: "u-alice", Email: "alice@example.com"})
	assert.Len(t, f.state.Contacts(), 1, "same user keeps data")

	f.state.SetIdentity(&models.Identity{UserID: "u-bob"})
	assert.Empty(t, f.state.Contacts())
}

func TestState_CommitSkipsWhenIdentityChanged(t *testing.T) {
	s := NewState(newFakeClient(), logging.Nop{})
	s.SetIdentity(&models.Identity{UserID: "u-1"})

	applied := s.commit("u-2", func() { s.contacts = []models.Contact{{ID: "x"}} })
	assert.False(t, applied)
	assert.Empty(t, s.Contacts())
}

func TestState_RecentMessagesNewestFirst(t *testing.T) {
	f := newFixture(t)
	f.seedContact("u-alice", "c-1", "Alex", "close_friends")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.client.mu.Lock()
	for i := 0; i < 12; i++ {
		f.client.messages = append(f.client.messages, models.Message{
			ID: "m" + string(rune('a'+i)), UserID: "u-alice", ContactID: "c-1",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	f.client.mu.Unlock()
	f.signIn(t, "alice@example.com")

	msgs := f.state.Messages()
	require.Len(t, msgs, 10)
	assert.True(t, msgs[0].CreatedAt.After(msgs[9].CreatedAt))
	assert.Equal(t, "ml", msgs[0].ID)
}
