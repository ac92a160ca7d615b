package cli

import (
	"fmt"

	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/logging"
	"github.com/blairfrandeen/titr/internal/validation"
)

// ErrorHandler turns internal errors into the messages the console prints.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple provides user-friendly error messages
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.Error())
	}

	if _, ok := errors.AsAppError(err); ok {
		if errors.ShouldLogError(err) {
			logging.Debugf("cli: %v", err)
		}
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsSourceUnavailable checks if an error means the calendar cannot be reached
func (eh *ErrorHandler) IsSourceUnavailable(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeSourceUnavailable)
}
