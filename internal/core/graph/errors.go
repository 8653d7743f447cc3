// Package graph defines domain-specific errors
package graph

import "errors"

// Domain errors - defined once, used everywhere
var (
	// Node errors
	ErrNilNode         = errors.New("node cannot be nil")
	ErrInvalidNodeID   = errors.New("invalid node ID")
	ErrInvalidNodeKind = errors.New("invalid node kind")
	ErrNodeNotFound    = errors.New("node not found")

	// Edge errors
	ErrNilEdge       = errors.New("edge cannot be nil")
	ErrInvalidSource = errors.New("invalid source node")
	ErrInvalidTarget = errors.New("invalid target node")
	ErrEdgeNotFound  = errors.New("edge not found")

	// Registry / snapshot errors
	ErrUnknownKind      = errors.New("unknown node kind")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
