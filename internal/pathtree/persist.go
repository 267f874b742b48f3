package pathtree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Encode serializes the current tree to an indented JSON document with
// stable key ordering.
func (s *Store) Encode() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree; %w", err)
	}
	return data, nil
}

// Decode parses a JSON document into a tree. Returns ErrParse for invalid
// JSON and ErrInvalidData when the document is valid JSON but not a
// well-formed node mapping.
func Decode(data []byte) (*Node, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("document is not valid JSON; %w", ErrParse)
	}

	root := NewNode()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, err
	}
	return root, nil
}

// Load reads the JSON document at filePath and replaces the store's tree
// with its contents. On any failure the in-memory tree is unchanged.
func (s *Store) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read store file; %w", err)
	}

	root, err := Decode(data)
	if err != nil {
		return err
	}

	return s.ReplaceAll(root)
}

// Save serializes the current tree and writes it to filePath, overwriting
// any existing file. Parent directories are created as needed.
func (s *Store) Save(filePath string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory %q; %w", dir, err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file; %w", err)
	}
	return nil
}
