package domain

import "errors"

// ErrTreeNotFound is returned when a loader cannot locate the tree source.
var ErrTreeNotFound = errors.New("decision tree not found")

// ErrUnsupportedFormat is returned when a tree source has an unknown file format.
var ErrUnsupportedFormat = errors.New("unsupported decision tree format")

// ErrEmptyTree is returned when a tree source decodes to no nodes at all.
var ErrEmptyTree = errors.New("decision tree has no nodes")
