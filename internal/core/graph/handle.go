// Package graph provides handle definitions
package graph

// HandleRole distinguishes outgoing from incoming connection points.
type HandleRole string

const (
	// HandleSource marks a handle that emits data
	HandleSource HandleRole = "source"
	// HandleTarget marks a handle that receives data
	HandleTarget HandleRole = "target"
)

// Side names the node boundary a handle is anchored to.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Anchor is the logical position of a handle on the node boundary.
// Offset is the fractional distance along the side, 0.5 being centered.
type Anchor struct {
	Side   Side    `json:"side"`
	Offset float64 `json:"offset"`
}

// HandleSpec describes one connection point on a node. Static handles are
// declared by the node schema and fixed for the node's lifetime; dynamic
// handles are derived from text content and recomputed on every change.
// Dynamic handle identity is positional: the Nth dynamic handle keeps its
// id across recomputes as long as it stays the Nth.
type HandleSpec struct {
	ID      string     `json:"id"`
	Role    HandleRole `json:"role"`
	Anchor  Anchor     `json:"anchor"`
	Name    string     `json:"name,omitempty"`
	Dynamic bool       `json:"dynamic,omitempty"`
}
