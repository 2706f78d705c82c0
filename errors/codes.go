package errors

// ErrorCode identifies the kind of failure.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Entry errors.

	// CodeNotFound indicates a path or one of its parents does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates an entry exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotDirectory indicates a non-final path component is not a directory.
	CodeNotDirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeForbidden indicates the caller lacks permission to inspect an entry.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates an argument is malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration file or flag is invalid.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// I/O errors.

	// CodeIO indicates the filesystem reported a low-level failure.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeTimeout indicates a filesystem call exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeUnavailable indicates the filesystem is temporarily unreachable,
	// such as a disconnected network share.
	CodeUnavailable ErrorCode = "UNAVAILABLE"

	// CodeUnsupported indicates the filesystem provider lacks a capability,
	// for example symbolic links on object storage.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// System errors.

	// CodeInternal indicates a bug or broken invariant.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
