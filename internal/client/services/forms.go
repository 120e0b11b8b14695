package services

import "github.com/dmitrijs2005/touchbase/internal/client/models"

// FormState tells whether an editor form is open and for what.
type FormState int

const (
	FormClosed FormState = iota
	FormCreating
	FormEditing
)

func (s FormState) String() string {
	switch s {
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	}
	return "closed"
}

// Confirmer asks the user a yes/no question.
type Confirmer func(question string) bool

type ContactForm struct {
	Name             string                  `form:"name" validate:"required,max=200"`
	PhoneNumber      string                  `form:"phone_number" validate:"required,max=50"`
	RelationshipTier models.RelationshipTier `form:"relationship_tier" validate:"oneof=close_family extended_family close_friends friends professional"`
	Notes            string                  `form:"notes" validate:"max=2000"`
}

func contactForm(c models.Contact) ContactForm {
	return ContactForm{Name: c.Name, PhoneNumber: c.PhoneNumber, RelationshipTier: c.RelationshipTier, Notes: c.Notes}
}

type OccasionForm struct {
	ContactID    string              `form:"contact" validate:"required"`
	OccasionType models.OccasionType `form:"occasion_type" validate:"oneof=birthday holiday just_checking_in life_event"`
	OccasionName string              `form:"occasion_name" validate:"required,max=200"`
	Date         string              `form:"date" validate:"required,datetime=2006-01-02"`
	Recurring    bool                `form:"recurring"`
}

func occasionForm(o models.Occasion) OccasionForm {
	return OccasionForm{
		ContactID:    o.ContactID,
		OccasionType: o.OccasionType,
		OccasionName: o.OccasionName,
		Date:         o.Date.Format(models.DateLayout),
		Recurring:    o.Recurring,
	}
}
