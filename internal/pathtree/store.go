// Package pathtree owns the hierarchical node structure that tracks
// explicitly registered filesystem paths. Paths are inserted as chains of
// segment nodes; terminal nodes carry the registration metadata, while
// intermediate nodes exist only to route to a registered descendant.
package pathtree

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Erick-Lisboa/hierarchical-path/internal/segment"
)

// Store owns exactly one tree. All public operations take the store's lock
// for their whole duration; there is no finer-grained locking given the size
// and access pattern of this structure.
type Store struct {
	mu     sync.RWMutex
	root   *Node
	oracle segment.Oracle
	now    func() time.Time
}

// New creates an empty store backed by the given filesystem oracle.
func New(oracle segment.Oracle) *Store {
	return &Store{
		root:   NewNode(),
		oracle: oracle,
		now:    time.Now,
	}
}

// Register adds a path to the tree. The path must exist on the filesystem;
// otherwise ErrPathNotFound is returned and the tree is left untouched.
// Structural nodes created along the way get empty metadata; only the
// terminal node is resolved against the oracle. Re-registering an
// already-registered path refreshes its timestamp.
func (s *Store) Register(path string) error {
	parts, err := segment.Split(path)
	if err != nil {
		return err
	}

	if !s.oracle.Exists(path) {
		return fmt.Errorf("path %q does not exist; %w", path, ErrPathNotFound)
	}
	isFile := s.oracle.IsFile(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.root
	for _, part := range parts {
		node = node.ensureChild(part)
	}

	registeredAt := s.now().UTC().Truncate(time.Second)
	node.meta.Registered = true
	node.meta.IsFile = isFile
	node.meta.RegisteredAt = &registeredAt

	return nil
}

// RegisterAll registers each path in order, stopping at the first failure.
// Paths registered before the failure remain registered.
func (s *Store) RegisterAll(paths []string) error {
	for _, path := range paths {
		if err := s.Register(path); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes a registered path from the tree. The terminal node's
// metadata is cleared, then childless unregistered nodes are pruned upward;
// the root is never deleted. The path does not need to exist on the
// filesystem anymore - existence is only checked at registration time.
func (s *Store) Unregister(path string) error {
	parts, err := segment.Split(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Collect the node chain root..terminal.
	chain := make([]*Node, 0, len(parts)+1)
	chain = append(chain, s.root)
	node := s.root
	for _, part := range parts {
		node = node.child(part)
		if node == nil {
			return fmt.Errorf("path %q; %w", path, ErrPathNotRegistered)
		}
		chain = append(chain, node)
	}

	if !node.meta.Registered {
		return fmt.Errorf("path %q; %w", path, ErrPathNotRegistered)
	}

	node.meta = Metadata{}

	// Prune childless unregistered nodes from the terminal upward.
	for i := len(chain) - 1; i > 0; i-- {
		current := chain[i]
		if len(current.children) > 0 || current.meta.Registered {
			break
		}
		delete(chain[i-1].children, parts[i-1])
	}

	return nil
}

// UnregisterAll unregisters each path in order, stopping at the first
// failure.
func (s *Store) UnregisterAll(paths []string) error {
	for _, path := range paths {
		if err := s.Unregister(path); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns the full path of every registered node. The traversal
// visits children in lexicographic segment order, so the result is stable
// for a fixed tree.
func (s *Store) ListAll() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var paths []string
	collect(s.root, nil, &paths)
	return paths
}

func collect(node *Node, prefix []string, paths *[]string) {
	if node.meta.Registered {
		*paths = append(*paths, segment.Join(prefix))
	}

	segs := make([]string, 0, len(node.children))
	for seg := range node.children {
		segs = append(segs, seg)
	}
	slices.Sort(segs)

	for _, seg := range segs {
		collect(node.children[seg], append(prefix, seg), paths)
	}
}

// MetadataOf returns the metadata record of the node at path, whether or
// not it is registered - structural nodes are inspectable too. Returns
// ErrPathNotFound if any segment is absent from the tree.
func (s *Store) MetadataOf(path string) (Metadata, error) {
	parts, err := segment.Split(path)
	if err != nil {
		return Metadata{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.root
	for _, part := range parts {
		node = node.child(part)
		if node == nil {
			return Metadata{}, fmt.Errorf("path %q not in tree; %w", path, ErrPathNotFound)
		}
	}

	return node.meta, nil
}

// Contains reports whether path is registered (not merely structural). It
// walks the tree directly but agrees with ListAll by construction: both
// consult the same registered flag.
func (s *Store) Contains(path string) bool {
	meta, err := s.MetadataOf(path)
	return err == nil && meta.Registered
}

// ReplaceAll swaps the store's tree for the supplied one. Used by
// deserialization.
func (s *Store) ReplaceAll(root *Node) error {
	if root == nil {
		return fmt.Errorf("replacement root is nil; %w", ErrInvalidData)
	}
	if root.children == nil {
		root.children = make(map[string]*Node)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	return nil
}
