// Package segment turns external path strings into ordered sequences of
// normalized path segments and answers filesystem existence questions
// through an Oracle.
package segment

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins segments when a full path is reconstructed from the tree.
const Separator = "/"

// ErrInvalidPath is returned when a path string is empty or contains only
// separators.
var ErrInvalidPath = errors.New("invalid path")

// Split breaks a path into its ordered segments. Surrounding whitespace is
// trimmed, backslashes are treated as separators, and empty segments
// (leading, trailing, or repeated separators) are dropped. Segment case is
// preserved; normalization happens here and nowhere else, so tree lookups
// stay stable.
func Split(path string) ([]string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(path), "\\", Separator)

	var parts []string
	for _, part := range strings.Split(normalized, Separator) {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("path %q has no segments; %w", path, ErrInvalidPath)
	}

	return parts, nil
}

// Join reconstructs a path string from segments. It is the inverse of Split
// for any path Split accepts.
func Join(parts []string) string {
	return strings.Join(parts, Separator)
}
