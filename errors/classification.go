package errors

// ErrorClassification tells callers whether retrying an operation may help.
type ErrorClassification string

const (
	// ClassificationRetryable marks transient failures, such as I/O errors on
	// a flaky network mount.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will repeat, such as a
	// missing entry or a permission denial.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO:          ClassificationRetryable,
	CodeTimeout:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	CodeNotFound:      ClassificationPermanent,
	CodeAlreadyExists: ClassificationPermanent,
	CodeNotDirectory:  ClassificationPermanent,
	CodeForbidden:     ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeUnsupported:   ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
