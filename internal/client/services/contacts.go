package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// ContactEditor creates, updates and deletes contacts and tracks the edit
// form buffer.
type ContactEditor struct {
	state  *State
	client client.Client
	logger logging.Logger

	mu        sync.Mutex
	formState FormState
	editingID string
	form      ContactForm
}

func NewContactEditor(state *State, c client.Client, logger logging.Logger) *ContactEditor {
	return &ContactEditor{state: state, client: c, logger: logger}
}

// Open starts a blank form for a new contact.
func (e *ContactEditor) Open() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormCreating
	e.editingID = ""
	e.form = ContactForm{RelationshipTier: models.TierFriends}
}

// Edit loads an existing contact into the form.
func (e *ContactEditor) Edit(id string) error {
	c, ok := e.state.Contact(id)
	if !ok {
		return &ValidationError{Field: "contact", Reason: "unknown contact"}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormEditing
	e.editingID = id
	e.form = contactForm(c)
	return nil
}

func (e *ContactEditor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormClosed
	e.editingID = ""
	e.form = ContactForm{}
}

// Form returns the form state, the id being edited and the buffered values.
func (e *ContactEditor) Form() (FormState, string, ContactForm) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.formState, e.editingID, e.form
}

// Save validates form and stores it: an update when existingID is set, an
// insert otherwise. New contacts without a tier become friends. On success
// the form closes and the snapshot reloads; a reload failure is returned
// alongside the saved contact.
func (e *ContactEditor) Save(ctx context.Context, form ContactForm, existingID string) (*models.Contact, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.PhoneNumber = strings.TrimSpace(form.PhoneNumber)
	form.Notes = strings.TrimSpace(form.Notes)
	if form.RelationshipTier == "" && existingID == "" {
		form.RelationshipTier = models.TierFriends
	}

	e.mu.Lock()
	e.form = form
	e.mu.Unlock()

	if err := validateForm(form); err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:               existingID,
		Name:             form.Name,
		PhoneNumber:      form.PhoneNumber,
		RelationshipTier: form.RelationshipTier,
		Notes:            form.Notes,
	}

	var (
		saved *models.Contact
		err   error
	)
	if existingID != "" {
		saved, err = e.client.UpdateContact(ctx, contact)
	} else {
		saved, err = e.client.CreateContact(ctx, contact)
	}
	if err != nil {
		return nil, err
	}

	e.Close()
	if err := e.state.Reload(ctx); err != nil {
		return saved, fmt.Errorf("contact saved, but refreshing failed: %w", err)
	}
	return saved, nil
}

// Delete removes a contact once confirm agrees. The store drops the
// contact's occasions and messages with it.
func (e *ContactEditor) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if id == "" {
		return &ValidationError{Field: "contact", Reason: "is required"}
	}
	question := "Delete this contact?"
	if c, ok := e.state.Contact(id); ok {
		question = fmt.Sprintf("Delete %s?", c.Name)
	}
	if confirm == nil || !confirm(question) {
		return ErrNotConfirmed
	}

	if err := e.client.DeleteContact(ctx, id); err != nil {
		return err
	}
	if err := e.state.Reload(ctx); err != nil {
		return fmt.Errorf("contact deleted, but refreshing failed: %w", err)
	}
	return nil
}
