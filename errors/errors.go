package errors

// PlatformError is an error with a code, a retry classification and optional
// context such as the path being resolved.
//
// PlatformError works with errors.Is, errors.As and errors.Unwrap from the
// standard library.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
