package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/touchbase/internal/common"
)

// ValidationError rejects user input before anything is sent to the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

var (
	ErrNoContactSelected    = &ValidationError{Field: "contact", Reason: "please select a contact"}
	ErrGenerationInProgress = errors.New("message generation already in progress")
	ErrNotConfirmed         = errors.New("deletion not confirmed")
)
