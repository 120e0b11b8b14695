package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

const (
	defaultRelationshipTier = "friends"
	defaultMessageStatus    = "draft"
	maxMessagesLimit        = 100
)

// DataService is the user-scoped CRUD surface for contacts, occasions and
// messages. userID always comes from the authenticated call, never from
// the payload.
type DataService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
}

func NewDataService(db *sql.DB, m repomanager.RepositoryManager) *DataService {
	return &DataService{
		db:          db,
		repomanager: m,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *DataService) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// ownedContact returns common.ErrorNotFound unless contactID belongs to userID.
func (s *DataService) ownedContact(ctx context.Context, userID, contactID string) error {
	if _, err := s.repomanager.Contacts(s.db).Get(ctx, userID, contactID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("contact %s: %w", contactID, common.ErrorNotFound)
		}
		return err
	}
	return nil
}

func (s *DataService) ListContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	return s.repomanager.Contacts(s.db).List(ctx, userID)
}

func (s *DataService) CreateContact(ctx context.Context, userID string, c *models.Contact) (*models.Contact, error) {
	c.UserID = userID
	if c.RelationshipTier == "" {
		c.RelationshipTier = defaultRelationshipTier
	}
	if err := s.check(c); err != nil {
		return nil, err
	}
	return s.repomanager.Contacts(s.db).Create(ctx, c)
}

func (s *DataService) UpdateContact(ctx context.Context, userID string, c *models.Contact) (*models.Contact, error) {
	if c.ID == "" {
		return nil, fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	c.UserID = userID
	if err := s.check(c); err != nil {
		return nil, err
	}
	return s.repomanager.Contacts(s.db).Update(ctx, c)
}

func (s *DataService) DeleteContact(ctx context.Context, userID, id string) error {
	return s.repomanager.Contacts(s.db).Delete(ctx, userID, id)
}

func (s *DataService) ListOccasions(ctx context.Context, userID string) ([]models.Occasion, error) {
	return s.repomanager.Occasions(s.db).List(ctx, userID)
}

func (s *DataService) CreateOccasion(ctx context.Context, userID string, o *models.Occasion) (*models.Occasion, error) {
	o.UserID = userID
	if err := s.check(o); err != nil {
		return nil, err
	}
	if err := s.ownedContact(ctx, userID, o.ContactID); err != nil {
		return nil, err
	}
	return s.repomanager.Occasions(s.db).Create(ctx, o)
}

func (s *DataService) UpdateOccasion(ctx context.Context, userID string, o *models.Occasion) (*models.Occasion, error) {
	if o.ID == "" {
		return nil, fmt.Errorf("%w: id is required", common.ErrorValidation)
	}
	o.UserID = userID
	if err := s.check(o); err != nil {
		return nil, err
	}
	if err := s.ownedContact(ctx, userID, o.ContactID); err != nil {
		return nil, err
	}
	return s.repomanager.Occasions(s.db).Update(ctx, o)
}

func (s *DataService) DeleteOccasion(ctx context.Context, userID, id string) error {
	return s.repomanager.Occasions(s.db).Delete(ctx, userID, id)
}

// ListMessages returns the newest messages; limit is clamped to [1, 100]
// and defaults to common.RecentMessagesLimit.
func (s *DataService) ListMessages(ctx context.Context, userID string, limit int) ([]models.Message, error) {
	switch {
	case limit <= 0:
		limit = common.RecentMessagesLimit
	case limit > maxMessagesLimit:
		limit = maxMessagesLimit
	}
	return s.repomanager.Messages(s.db).List(ctx, userID, limit)
}

func (s *DataService) CreateMessage(ctx context.Context, userID string, m *models.Message) (*models.Message, error) {
	m.UserID = userID
	if m.Status == "" {
		m.Status = defaultMessageStatus
	}
	if err := s.check(m); err != nil {
		return nil, err
	}
	if err := s.ownedContact(ctx, userID, m.ContactID); err != nil {
		return nil, err
	}
	if m.OccasionID != nil {
		if _, err := s.repomanager.Occasions(s.db).Get(ctx, userID, *m.OccasionID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("occasion %s: %w", *m.OccasionID, common.ErrorNotFound)
			}
			return nil, err
		}
	}
	return s.repomanager.Messages(s.db).Create(ctx, m)
}
