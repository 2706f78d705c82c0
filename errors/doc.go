// Package errors provides structured errors for path resolution and the
// tooling built on it.
//
// Every error carries an ErrorCode, a classification (retryable or permanent),
// an optional wrapped cause and optional context metadata. The types work
// with the standard library errors.Is, errors.As and errors.Unwrap.
//
// # Creating Errors
//
//	err := errors.New(errors.CodeInvalidInput, "grammar name is empty")
//	err := errors.Newf(errors.CodeInvalidConfig, "max_links must be positive, got %d", n)
//
// # Wrapping Filesystem Errors
//
// FromFS maps io/fs sentinels to codes and records the offending path:
//
//	info, err := fsys.Lstat(p)
//	if err != nil {
//	    return "", errors.FromFS(err, "failed to inspect path component", p)
//	}
//
// A missing file becomes CodeNotFound, a permission failure CodeForbidden and
// anything else CodeIO, which is retryable.
//
// # Error Codes
//
//   - Resource errors: CodeNotFound, CodeAlreadyExists, CodeNotDirectory
//   - Permission errors: CodeForbidden
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig
//   - I/O errors: CodeIO, CodeTimeout, CodeUnavailable
//   - System errors: CodeUnsupported, CodeInternal
//   - Generic: CodeUnknown
//
// Classification is preserved when wrapping and can be overridden with
// WithClassification.
//
// # JSON
//
// ToJSON produces an ErrorResponse suitable for machine-readable CLI output.
// Wrapped causes are not included.
package errors
