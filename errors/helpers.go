package errors

import (
	stderrors "errors"
)

// Is wraps the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain, or
// CodeUnknown.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeForbidden {
//	    // ask for elevated permissions
//	}
func GetCode(err error) ErrorCode {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost
// PlatformError in err's chain. Anything else is permanent.
func GetClassification(err error) ErrorClassification {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
