package envfile

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// Load reads and parses the .env file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(string(data)), nil
}

// WriteInPlace rewrites path with content, holding an advisory lock on the
// file for the duration of the write. The file's existing permissions are
// preserved when it already exists.
func WriteInPlace(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer lock.Unlock()

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
