package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// OccasionEditor mirrors ContactEditor for occasions.
type OccasionEditor struct {
	state  *State
	client client.Client
	logger logging.Logger

	mu        sync.Mutex
	formState FormState
	editingID string
	form      OccasionForm
}

func NewOccasionEditor(state *State, c client.Client, logger logging.Logger) *OccasionEditor {
	return &OccasionEditor{state: state, client: c, logger: logger}
}

// Open starts a blank form, preset to contactID when given.
func (e *OccasionEditor) Open(contactID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormCreating
	e.editingID = ""
	e.form = OccasionForm{ContactID: contactID, OccasionType: models.OccasionBirthday}
}

func (e *OccasionEditor) Edit(id string) error {
	o, ok := e.state.Occasion(id)
	if !ok {
		return &ValidationError{Field: "occasion", Reason: "unknown occasion"}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormEditing
	e.editingID = id
	e.form = occasionForm(o)
	return nil
}

func (e *OccasionEditor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formState = FormClosed
	e.editingID = ""
	e.form = OccasionForm{}
}

func (e *OccasionEditor) Form() (FormState, string, OccasionForm) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.formState, e.editingID, e.form
}

// Save validates and stores an occasion. The contact must be one of the
// user's contacts.
func (e *OccasionEditor) Save(ctx context.Context, form OccasionForm, existingID string) (*models.Occasion, error) {
	form.OccasionName = strings.TrimSpace(form.OccasionName)
	form.Date = strings.TrimSpace(form.Date)

	e.mu.Lock()
	e.form = form
	e.mu.Unlock()

	if err := validateForm(form); err != nil {
		return nil, err
	}
	if _, ok := e.state.Contact(form.ContactID); !ok {
		return nil, &ValidationError{Field: "contact", Reason: "unknown contact"}
	}
	date, err := time.Parse(models.DateLayout, form.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "must be a date like 2024-12-31"}
	}

	occasion := models.Occasion{
		ID:           existingID,
		ContactID:    form.ContactID,
		OccasionType: form.OccasionType,
		OccasionName: form.OccasionName,
		Date:         date,
		Recurring:    form.Recurring,
	}

	var saved *models.Occasion
	if existingID != "" {
		saved, err = e.client.UpdateOccasion(ctx, occasion)
	} else {
		saved, err = e.client.CreateOccasion(ctx, occasion)
	}
	if err != nil {
		return nil, err
	}

	e.Close()
	if err := e.state.Reload(ctx); err != nil {
		return saved, fmt.Errorf("occasion saved, but refreshing failed: %w", err)
	}
	return saved, nil
}

func (e *OccasionEditor) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if id == "" {
		return &ValidationError{Field: "occasion", Reason: "is required"}
	}
	question := "Delete this occasion?"
	if o, ok := e.state.Occasion(id); ok {
		question = fmt.Sprintf("Delete %s on %s?", o.OccasionName, o.Date.Format(models.DateLayout))
	}
	if confirm == nil || !confirm(question) {
		return ErrNotConfirmed
	}

	if err := e.client.DeleteOccasion(ctx, id); err != nil {
		return err
	}
	if err := e.state.Reload(ctx); err != nil {
		return fmt.Errorf("occasion deleted, but refreshing failed: %w", err)
	}
	return nil
}
