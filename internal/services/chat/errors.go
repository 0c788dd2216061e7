// File: internal/services/chat/errors.go
package chat

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation   ErrorType = "VALIDATION"
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrTypeUpstream     ErrorType = "UPSTREAM"
	ErrTypeStorage      ErrorType = "STORAGE"
)

type ChatError struct {
	Type      ErrorType
	Operation string
	Message   string
	ChatID    string
	Cause     error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *ChatError {
	return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewNotFoundError(chatID string) *ChatError {
	return &ChatError{
		Type:      ErrTypeNotFound,
		Operation: "lookup",
		Message:   "chat not found",
		ChatID:    chatID,
	}
}

func NewUnauthorizedError(chatID string) *ChatError {
	return &ChatError{
		Type:      ErrTypeUnauthorized,
		Operation: "authorization",
		Message:   "missing or invalid access token",
		ChatID:    chatID,
	}
}

func NewUpstreamError(operation, msg string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeUpstream, Operation: operation, Message: msg, Cause: cause}
}

func NewStorageError(operation, msg string, cause error) *ChatError {
	return &ChatError{Type: ErrTypeStorage, Operation: operation, Message: msg, Cause: cause}
}

func typeOf(err error) (ErrorType, bool) {
	var chatErr *ChatError
	if errors.As(err, &chatErr) {
		return chatErr.Type, true
	}
	return "", false
}

// IsNotFound reports whether err is a chat NOT_FOUND error.
func IsNotFound(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeNotFound
}

// IsUnauthorized reports whether err is a chat UNAUTHORIZED error.
func IsUnauthorized(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeUnauthorized
}

// IsValidation reports whether err is a chat VALIDATION error.
func IsValidation(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeValidation
}
