// File: internal/services/email/errors.go
package email

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type EmailError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *EmailError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Email %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("Email %s error: %s", e.Type, e.Message)
}

func (e *EmailError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *EmailError {
	return &EmailError{Type: ErrTypeConfig, Message: msg}
}

func NewValidationError(msg string) *EmailError {
	return &EmailError{Type: ErrTypeValidation, Message: msg}
}

func NewProviderError(msg string, cause error) *EmailError {
	return &EmailError{Type: ErrTypeProvider, Message: msg, Cause: cause}
}
