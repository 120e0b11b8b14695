// Package models defines the client-side view of TouchBase data: contacts,
// occasions and messages as read from the data store, plus session types.
package models

import (
	"strings"
	"time"
)

// RelationshipTier says how close the user is to a contact.
type RelationshipTier string

const (
	TierCloseFamily    RelationshipTier = "close_family"
	TierExtendedFamily RelationshipTier = "extended_family"
	TierCloseFriends   RelationshipTier = "close_friends"
	TierFriends        RelationshipTier = "friends"
	TierProfessional   RelationshipTier = "professional"
)

// Tiers lists every tier in display order.
var Tiers = []RelationshipTier{TierCloseFamily, TierExtendedFamily, TierCloseFriends, TierFriends, TierProfessional}

func (t RelationshipTier) Valid() bool {
	switch t {
	case TierCloseFamily, TierExtendedFamily, TierCloseFriends, TierFriends, TierProfessional:
		return true
	}
	return false
}

// Label is the tier as people read it: the first underscore becomes a space.
func (t RelationshipTier) Label() string {
	return strings.Replace(string(t), "_", " ", 1)
}

type OccasionType string

const (
	OccasionBirthday       OccasionType = "birthday"
	OccasionHoliday        OccasionType = "holiday"
	OccasionJustCheckingIn OccasionType = "just_checking_in"
	OccasionLifeEvent      OccasionType = "life_event"
)

var OccasionTypes = []OccasionType{OccasionBirthday, OccasionHoliday, OccasionJustCheckingIn, OccasionLifeEvent}

func (o OccasionType) Valid() bool {
	switch o {
	case OccasionBirthday, OccasionHoliday, OccasionJustCheckingIn, OccasionLifeEvent:
		return true
	}
	return false
}

// MessageStyle is the tone requested from the generator.
type MessageStyle string

const (
	StyleFormal MessageStyle = "formal"
	StyleCasual MessageStyle = "casual"
	StyleWarm   MessageStyle = "warm"
)

var Styles = []MessageStyle{StyleFormal, StyleCasual, StyleWarm}

func (s MessageStyle) Valid() bool {
	switch s {
	case StyleFormal, StyleCasual, StyleWarm:
		return true
	}
	return false
}

type MessageStatus string

const (
	StatusDraft     MessageStatus = "draft"
	StatusSent      MessageStatus = "sent"
	StatusScheduled MessageStatus = "scheduled"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusScheduled:
		return true
	}
	return false
}

type Contact struct {
	ID               string
	Name             string
	PhoneNumber      string
	RelationshipTier RelationshipTier
	Notes            string
	UserID           string
	CreatedAt        time.Time
}

// DateLayout is how occasion dates travel and how the CLI reads them.
const DateLayout = time.DateOnly

type Occasion struct {
	ID           string
	ContactID    string
	OccasionType OccasionType
	OccasionName string
	Date         time.Time
	Recurring    bool
	UserID       string
	CreatedAt    time.Time
}

type Message struct {
	ID          string
	ContactID   string
	OccasionID  string
	MessageText string
	Style       MessageStyle
	SentAt      *time.Time
	Status      MessageStatus
	UserID      string
	CreatedAt   time.Time
}
