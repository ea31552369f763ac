package util

import "os"

// EnsureDir creates the directory, and any parents, if missing.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
