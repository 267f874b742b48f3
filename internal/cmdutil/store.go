// Package cmdutil provides shared helpers for command implementations.
package cmdutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Erick-Lisboa/hierarchical-path/internal/config"
	"github.com/Erick-Lisboa/hierarchical-path/internal/pathtree"
	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// StoreFilePath returns the configured store file location with ~ expanded.
func StoreFilePath() string {
	return config.ExpandPath(config.Get().Store.FilePath)
}

// OpenStore creates a store backed by the real filesystem and loads the
// configured store file into it. A missing store file is not an error - the
// store starts empty and the file is created on the next save.
func OpenStore() (*pathtree.Store, error) {
	store := pathtree.New(segment.OS())

	filePath := StoreFilePath()
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to access store file %q; %w", filePath, err)
	}

	if err := store.Load(filePath); err != nil {
		return nil, fmt.Errorf("failed to load store file %q; %w", filePath, err)
	}

	return store, nil
}

// SaveStore persists the store to the configured store file.
func SaveStore(store *pathtree.Store) error {
	filePath := StoreFilePath()
	if err := store.Save(filePath); err != nil {
		return fmt.Errorf("failed to save store file %q; %w", filePath, err)
	}
	return nil
}

// CleanArg tidies a path argument: whitespace is trimmed and a leading ~ is
// expanded to the home directory. The path is otherwise kept as given, so
// relative paths resolve against the current working directory and are
// stored as supplied.
func CleanArg(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~") {
		return config.ExpandPath(path)
	}
	return path
}
