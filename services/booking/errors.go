package booking

import "fmt"

// Error codes classify failures so callers can decide whether to retry and
// what to surface. Every Message is a complete sentence fit for display or
// speech synthesis.
const (
	CodeValidation = "validationError"
	CodeConflict   = "conflictError"
	CodeState      = "stateError"
	CodePermission = "permissionError"
	CodeStore      = "storeError"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewStateError(msg string) error {
	return &Error{Code: CodeState, Message: msg}
}

func NewPermissionError(msg string) error {
	return &Error{Code: CodePermission, Message: msg}
}

func NewStoreError(msg string) error {
	return &Error{Code: CodeStore, Message: msg}
}

// UserMessage extracts the user-presentable sentence from an error. Untyped
// errors collapse to a generic retry prompt so internals never leak.
func UserMessage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return "Something went wrong while handling your request. Please try again."
}

// IsUserFacing reports whether the error carries a message safe to surface.
func IsUserFacing(err error) bool {
	_, ok := err.(*Error)
	return ok
}
