package core

import (
	"errors"
	"fmt"
	"strings"
)

// ExecutionError represents a structured error with category and details
type ExecutionError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, timeout, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is matches any ExecutionError with the same Code, so copies made with
// WithCause/WithMessage still match the predefined errors.
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithCause returns a copy of the error with the given cause
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *ExecutionError) WithMessage(msg string) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *ExecutionError) WithDetails(details map[string]interface{}) *ExecutionError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors (mapped from W3C WebDriver error codes where one exists)
var (
	// Element errors
	ErrElementNotFound = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "element_not_found",
		Message:  "element not found",
	}
	ErrElementNotInteractable = &ExecutionError{
		Category: ErrCategoryInteraction,
		Code:     "element_not_interactable",
		Message:  "element not interactable",
	}
	ErrStaleElement = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "stale_element",
		Message:  "element is no longer attached to the screen",
	}
	ErrConditionNotMet = &ExecutionError{
		Category: ErrCategoryAssertion,
		Code:     "condition_not_met",
		Message:  "condition was not met",
	}

	// Timeout errors
	ErrTimeout = &ExecutionError{
		Category: ErrCategoryTimeout,
		Code:     "timeout",
		Message:  "operation timed out",
	}

	// Session/connection errors
	ErrDriverSession = &ExecutionError{
		Category: ErrCategoryConnection,
		Code:     "driver_session",
		Message:  "automation session error",
	}
	ErrServerUnreachable = &ExecutionError{
		Category: ErrCategoryConnection,
		Code:     "server_unreachable",
		Message:  "could not connect to automation server",
	}

	// Config errors
	ErrInvalidConfig = &ExecutionError{
		Category: ErrCategoryConfig,
		Code:     "invalid_config",
		Message:  "invalid configuration",
	}
)

// NewExecutionError creates a new ExecutionError with the given parameters
func NewExecutionError(category ErrorCategory, code, message string) *ExecutionError {
	return &ExecutionError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// FromW3C maps a W3C WebDriver error code and message to the core taxonomy.
// The driver's message is kept as the cause.
func FromW3C(code, message string) *ExecutionError {
	var base *ExecutionError
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "no such element":
		base = ErrElementNotFound
	case "element not interactable", "element click intercepted", "invalid element state":
		base = ErrElementNotInteractable
	case "stale element reference":
		base = ErrStaleElement
	case "timeout", "script timeout":
		base = ErrTimeout
	case "invalid session id", "session not created":
		base = ErrDriverSession
	default:
		base = ErrDriverSession.WithMessage("unexpected driver error")
	}

	cause := message
	if code != "" {
		cause = code + ": " + message
	}
	return base.WithCause(fmt.Errorf("%s", cause)).WithDetails(map[string]interface{}{
		"w3c": code,
	})
}

// IsRetryable reports whether a resolve attempt that failed with err may
// succeed on a later attempt.
func IsRetryable(err error) bool {
	var e *ExecutionError
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == ErrElementNotFound.Code || e.Code == ErrStaleElement.Code
}
