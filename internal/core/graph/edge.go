// Package graph provides edge definitions
package graph

// EdgeStyle is the visual style tag attached to edges at connect time.
// The canvas interprets it; the core only carries it.
type EdgeStyle string

const (
	// EdgeStyleSmoothstep is the fixed style applied to user-connected edges
	EdgeStyleSmoothstep EdgeStyle = "smoothstep"
)

// Edge represents a directed connection between a source handle and a
// target handle. An edge is valid only while both referenced node+handle
// pairs exist; validity is enforced by the canvas at connect time and by
// the store's cascade pruning on node removal.
type Edge struct {
	ID           string    `json:"id" validate:"required"`
	Source       string    `json:"source" validate:"required"`
	SourceHandle string    `json:"sourceHandle,omitempty"`
	Target       string    `json:"target" validate:"required"`
	TargetHandle string    `json:"targetHandle,omitempty"`
	Style        EdgeStyle `json:"type,omitempty"`
	Animated     bool      `json:"animated,omitempty"`
	Selected     bool      `json:"selected,omitempty"`
}

// Validate ensures edge integrity. Self-loops and parallel edges are
// permitted; the analyzer reports on whatever topology results.
func (e *Edge) Validate() error {
	if e.Source == "" {
		return ErrInvalidSource
	}
	if e.Target == "" {
		return ErrInvalidTarget
	}
	return nil
}

// Touches reports whether the edge references nodeID at either endpoint.
func (e *Edge) Touches(nodeID string) bool {
	return e.Source == nodeID || e.Target == nodeID
}
