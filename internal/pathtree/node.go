package pathtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// isJSONNull reports whether data is the JSON null literal.
func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// metaKey is the reserved key that carries a node's metadata in the JSON
// wire layout. Splitting on the separator makes it impossible for a real
// segment to take this value; in memory, metadata is a struct field, so the
// collision class does not exist at all.
const metaKey = "//"

// timeLayout is the wire format for registration timestamps: UTC, second
// precision.
const timeLayout = "2006-01-02T15:04:05Z"

// Metadata is the record attached to every node that has ever been touched,
// including purely structural ones.
type Metadata struct {
	// Registered is true only if this exact node is the terminal segment of
	// a path the caller explicitly registered.
	Registered bool

	// IsFile is true if the filesystem reported the node's full path as a
	// regular file at registration time. Always false for structural nodes.
	IsFile bool

	// RegisteredAt is set when Registered becomes true and cleared when the
	// node reverts to structural.
	RegisteredAt *time.Time
}

// wireMetadata is the JSON shape of a metadata record.
type wireMetadata struct {
	Registered   bool    `json:"registered"`
	IsFile       bool    `json:"isFile"`
	RegisteredAt *string `json:"registeredAt"`
}

// MarshalJSON encodes the metadata with the timestamp in timeLayout.
func (m Metadata) MarshalJSON() ([]byte, error) {
	w := wireMetadata{
		Registered: m.Registered,
		IsFile:     m.IsFile,
	}
	if m.RegisteredAt != nil {
		s := m.RegisteredAt.UTC().Format(timeLayout)
		w.RegisteredAt = &s
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the metadata, validating the timestamp format.
// A null record is rejected: json.Unmarshal treats null as a no-op, which
// would otherwise slip through as a silently-zeroed record.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return fmt.Errorf("metadata record is null; %w", ErrInvalidData)
	}

	var w wireMetadata
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("metadata record is not an object; %w", ErrInvalidData)
	}

	m.Registered = w.Registered
	m.IsFile = w.IsFile
	m.RegisteredAt = nil

	if w.RegisteredAt != nil {
		t, err := time.Parse(timeLayout, *w.RegisteredAt)
		if err != nil {
			return fmt.Errorf("bad registeredAt %q; %w", *w.RegisteredAt, ErrInvalidData)
		}
		m.RegisteredAt = &t
	}

	if m.Registered && m.RegisteredAt == nil {
		return fmt.Errorf("registered node has no registeredAt; %w", ErrInvalidData)
	}
	if !m.Registered && m.RegisteredAt != nil {
		return fmt.Errorf("structural node has a registeredAt; %w", ErrInvalidData)
	}

	return nil
}

// Node is one vertex in the path tree: a mapping from segment to child node
// plus the node's own metadata record. The root node has no segment name.
type Node struct {
	children map[string]*Node
	meta     Metadata
}

// NewNode returns an empty structural node.
func NewNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// child returns the child for a segment, or nil.
func (n *Node) child(seg string) *Node {
	return n.children[seg]
}

// ensureChild returns the child for a segment, creating a structural node
// if it does not exist yet.
func (n *Node) ensureChild(seg string) *Node {
	if c, ok := n.children[seg]; ok {
		return c
	}
	c := NewNode()
	n.children[seg] = c
	return c
}

// MarshalJSON encodes the node as an object with one key per child segment
// plus the reserved metadata key. encoding/json sorts map keys, giving the
// stable ordering the persisted layout wants.
func (n *Node) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(n.children)+1)
	obj[metaKey] = n.meta
	for seg, child := range n.children {
		obj[seg] = child
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes a node object. Keys other than the reserved one are
// segments; a segment key containing the separator cannot have been produced
// by splitting and is rejected. Null is rejected explicitly because
// json.Unmarshal treats it as a no-op and would otherwise admit an empty
// node where the document has none.
func (n *Node) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return fmt.Errorf("node value is null; %w", ErrInvalidData)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("node value is not an object; %w", ErrInvalidData)
	}

	n.children = make(map[string]*Node, len(raw))
	n.meta = Metadata{}

	for key, value := range raw {
		if key == metaKey {
			if err := json.Unmarshal(value, &n.meta); err != nil {
				return err
			}
			continue
		}
		if strings.Contains(key, segment.Separator) {
			return fmt.Errorf("segment %q contains the separator; %w", key, ErrInvalidData)
		}
		child := NewNode()
		if err := json.Unmarshal(value, child); err != nil {
			return err
		}
		n.children[key] = child
	}

	return nil
}
