package fsutil

import (
	"fmt"
	"os"
)

// DirExists reports whether path is an existing directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory holding saved documents or log files.
// A regular file already sitting at path is an error rather than being
// left for the later write to trip over.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s exists and is not a directory", path)
	case !os.IsNotExist(err):
		return err
	}
	return os.MkdirAll(path, 0755)
}
