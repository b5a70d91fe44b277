package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the achievement reminder.
const (
	// Source errors
	ErrCodeSourceUnreadable = "SOURCE_UNREADABLE"
	ErrCodeSourceMalformed  = "SOURCE_MALFORMED"

	// Catalog errors
	ErrCodeCatalogInvalid    = "CATALOG_INVALID"
	ErrCodeEmptyLocalization = "EMPTY_LOCALIZATION"

	// Settings errors
	ErrCodeAppIDNotFound   = "APP_ID_NOT_FOUND"
	ErrCodeSettingsInvalid = "SETTINGS_INVALID"

	// Database errors
	ErrCodeDatabaseError = "DATABASE_ERROR"

	// Presentation errors
	ErrCodeNotifyFailed = "NOTIFY_FAILED"
)

// ReminderError represents a coded error raised by the reminder engine.
type ReminderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReminderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError.
func NewReminderError(code, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether any error in err's chain is a ReminderError with the given code.
func HasCode(err error, code string) bool {
	var re *ReminderError
	if stderrors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// ErrSourceUnreadable wraps a failure to read a backing file (missing, permission denied).
func ErrSourceUnreadable(path string, err error) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeSourceUnreadable,
		Message: fmt.Sprintf("cannot read %s", path),
		Err:     err,
	}
}

// ErrSourceMalformed wraps a failure to decode a backing file into the expected schema.
func ErrSourceMalformed(path string, err error) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeSourceMalformed,
		Message: fmt.Sprintf("cannot parse %s", path),
		Err:     err,
	}
}

// ErrCatalogInvalid returns an error for a catalog that parsed but breaks a catalog rule.
func ErrCatalogInvalid(reason string) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeCatalogInvalid,
		Message: fmt.Sprintf("invalid catalog: %s", reason),
		Err:     nil,
	}
}

// ErrEmptyLocalization returns an error when a language mapping has no entries at all.
func ErrEmptyLocalization(field string) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeEmptyLocalization,
		Message: fmt.Sprintf("no localized text for %s", field),
		Err:     nil,
	}
}

// ErrAppIDNotFound returns an error when no app id could be discovered.
func ErrAppIDNotFound(searched ...string) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeAppIDNotFound,
		Message: fmt.Sprintf("cannot find app id from command line or files %v", searched),
		Err:     nil,
	}
}

// ErrSettingsInvalid wraps a settings file that exists but cannot be used.
func ErrSettingsInvalid(path string, err error) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeSettingsInvalid,
		Message: fmt.Sprintf("invalid settings file %s", path),
		Err:     err,
	}
}

// ErrDatabaseError wraps database errors.
func ErrDatabaseError(operation string, err error) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrNotifyFailed wraps a presentation-layer delivery failure.
func ErrNotifyFailed(name string, err error) *ReminderError {
	return &ReminderError{
		Code:    ErrCodeNotifyFailed,
		Message: fmt.Sprintf("failed to notify %s", name),
		Err:     err,
	}
}
