package paths

import (
	"path/filepath"
	"strings"
)

// Combine joins a directory with a file reference. An absolute reference
// stands on its own and ignores the directory.
func Combine(dir, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}

	return filepath.Join(dir, file)
}

// Normalize cleans a path without touching the filesystem: dot segments and
// redundant separators are removed, trailing separators dropped.
func Normalize(path string) string {
	return filepath.Clean(path)
}

// Equal reports whether two paths identify the same location. The comparison
// is case-insensitive on every platform.
func Equal(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}
