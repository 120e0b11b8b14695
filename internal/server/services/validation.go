package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/go-playground/validator/v10"
)

// validationError flattens validator output into one common.ErrorValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(parts, "; "))
}
