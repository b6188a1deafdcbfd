// fsutil/files.go
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads an entire file into memory
func ReadFile(path string) ([]byte, error) {
	var data []byte
	err := withPathLock(path, func() error {
		var err error
		data, err = os.ReadFile(path)
		return err
	})
	return data, err
}

// WriteFile writes data to a file, creating its directory if necessary
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return withPathLock(path, func() error {
		if err := EnsureDir(filepath.Dir(path)); err != nil {
			return err
		}
		return os.WriteFile(path, data, perm)
	})
}

// SplitExtensions returns the lower-cased format and compression extensions
// of a path, e.g. "process.json.xz" gives ("json", "xz") and
// "process.yaml" gives ("yaml", "").
func SplitExtensions(path string) (format, compression string) {
	base := strings.ToLower(filepath.Base(path))
	ext := strings.TrimPrefix(filepath.Ext(base), ".")

	switch ext {
	case "gz", "bz2", "xz":
		compression = ext
		base = strings.TrimSuffix(base, "."+ext)
		format = strings.TrimPrefix(filepath.Ext(base), ".")
	default:
		format = ext
	}
	return format, compression
}
