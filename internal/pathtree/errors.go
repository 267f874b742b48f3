package pathtree

import "errors"

// ErrPathNotFound is returned when a path does not exist on the filesystem
// at registration time, or is absent from the tree at lookup time.
var ErrPathNotFound = errors.New("path not found")

// ErrPathNotRegistered is returned when unregistering a path that is not
// currently registered.
var ErrPathNotRegistered = errors.New("path not registered")

// ErrInvalidData is returned when a decoded or supplied tree structure is
// not a well-formed node mapping.
var ErrInvalidData = errors.New("invalid tree data")

// ErrParse is returned when a persisted tree document is not valid JSON.
var ErrParse = errors.New("malformed tree document")
