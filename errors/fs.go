package errors

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"
)

// CodeFor maps a filesystem error onto an ErrorCode. Sentinels from io/fs and
// common syscall errors get their own codes; anything else is CodeIO.
func CodeFor(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeUnknown
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotDirectory
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeUnsupported
	case os.IsTimeout(err):
		return CodeTimeout
	case stderrors.Is(err, syscall.EBUSY), stderrors.Is(err, syscall.ESTALE):
		return CodeUnavailable
	default:
		return CodeIO
	}
}

// FromFS wraps a filesystem error with the code chosen by CodeFor and records
// the path it concerns under the "path" context key.
//
// Returns nil if err is nil.
//
// Example:
//
//	info, err := fsys.Lstat(name)
//	if err != nil {
//	    return errors.FromFS(err, "lstat failed", name)
//	}
func FromFS(err error, message, path string) PlatformError {
	if err == nil {
		return nil
	}
	return WrapWithContext(err, CodeFor(err), message, map[string]interface{}{
		"path": path,
	})
}
