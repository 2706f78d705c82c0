package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message. The cause stays reachable through
// Unwrap, errors.Is and errors.As. When err already carries a PlatformError
// its classification is kept; otherwise the default for code applies.
//
// Returns nil if err is nil.
//
// Example:
//
//	target, err := fsys.Readlink(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to read symbolic link")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeForbidden, "lstat failed", map[string]interface{}{
//	    "path": candidate,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
