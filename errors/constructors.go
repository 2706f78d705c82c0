package errors

import "fmt"

// New creates a PlatformError with the default classification for code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "empty path")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "unknown path grammar %q", name)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
