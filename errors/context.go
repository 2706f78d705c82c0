package errors

import "errors"

// WithContext returns a copy of err with key set to value. Existing context
// fields are preserved. A plain error is first converted to a PlatformError
// with CodeUnknown.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "path", "/var/run/link")
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the fields of ctx merged into its
// context. Fields in ctx win over existing fields with the same key.
//
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	merged := make(map[string]interface{}, len(ctx))
	for k, v := range base.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// WithClassification returns a copy of err with the given classification.
//
// Returns nil if err is nil.
//
// Example:
//
//	// A missing entry on a share that is still mounting may appear later.
//	err = errors.WithClassification(err, errors.ClassificationRetryable)
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	return &platformError{
		code:           base.Code(),
		classification: classification,
		message:        base.Message(),
		context:        base.Context(),
		cause:          base.Unwrap(),
	}
}

// asPlatformError finds a PlatformError in err's chain or converts err into
// one with CodeUnknown.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
