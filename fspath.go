package fspath

// The functions below apply the native grammar of the running platform.

// ToNativePath calls Native().ToNativePath.
func ToNativePath(path string) string { return native.ToNativePath(path) }

// IsValidFileName calls Native().IsValidFileName.
func IsValidFileName(name string, allowSeparators bool) bool {
	return native.IsValidFileName(name, allowSeparators)
}

// IsAbsolute calls Native().IsAbsolute.
func IsAbsolute(path string) bool { return native.IsAbsolute(path) }

// IsRoot calls Native().IsRoot.
func IsRoot(path string) bool { return native.IsRoot(path) }

// SplitRoot calls Native().SplitRoot.
func SplitRoot(path string) (root, rest string) { return native.SplitRoot(path) }

// Segments calls Native().Segments.
func Segments(path string) []string { return native.Segments(path) }

// Canonicalize calls Native().Canonicalize.
func Canonicalize(path string) string { return native.Canonicalize(path) }

// Combine calls Native().Combine.
func Combine(base, addition string) string { return native.Combine(base, addition) }

// AppendDirectory calls Native().AppendDirectory.
func AppendDirectory(path, newDir string) string { return native.AppendDirectory(path, newDir) }

// MakeRelative calls Native().MakeRelative.
func MakeRelative(path, relativeTo string) string { return native.MakeRelative(path, relativeTo) }

// GetExtension calls Native().GetExtension.
func GetExtension(path string) string { return native.GetExtension(path) }

// GetFileName calls Native().GetFileName.
func GetFileName(path string) string { return native.GetFileName(path) }

// GetFileTitle calls Native().GetFileTitle.
func GetFileTitle(path string) string { return native.GetFileTitle(path) }

// GetDirectory calls Native().GetDirectory.
func GetDirectory(path string) string { return native.GetDirectory(path) }

// ChangeFileName calls Native().ChangeFileName.
func ChangeFileName(path, newName string) string { return native.ChangeFileName(path, newName) }

// CreateFileURL calls Native().CreateFileURL.
func CreateFileURL(path string) string { return native.CreateFileURL(path) }
