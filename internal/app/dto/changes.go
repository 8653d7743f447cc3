package dto

import (
	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// ChangeKind enumerates the structural deltas the canvas reports back.
type ChangeKind string

const (
	// ChangePosition moves a node (drag)
	ChangePosition ChangeKind = "position"
	// ChangeSelect toggles selection
	ChangeSelect ChangeKind = "select"
	// ChangeRemove deletes the element
	ChangeRemove ChangeKind = "remove"
)

// NodeChange is one delta in a batched node change set.
type NodeChange struct {
	ID       string          `json:"id"`
	Kind     ChangeKind      `json:"kind"`
	Position *graph.Position `json:"position,omitempty"`
	Selected bool            `json:"selected,omitempty"`
}

// EdgeChange is one delta in a batched edge change set. Position never
// applies to edges; only select and remove are meaningful.
type EdgeChange struct {
	ID       string     `json:"id"`
	Kind     ChangeKind `json:"kind"`
	Selected bool       `json:"selected,omitempty"`
}

// Connection is a proposed edge from a user-initiated connect gesture,
// already validated by the canvas against the current handle sets.
type Connection struct {
	Source       string `json:"source"`
	SourceHandle string `json:"sourceHandle"`
	Target       string `json:"target"`
	TargetHandle string `json:"targetHandle"`
}

// DragDataType is the identifier under which the toolbox serializes the
// drag payload on the drag-data channel.
const DragDataType = "application/polaris"

// DropPayload names the node kind being dragged out of the toolbox.
type DropPayload struct {
	NodeType string `json:"nodeType"`
}
