// Package graph provides the core pipeline graph entities
// following Clean Architecture principles with zero external dependencies.
package graph

// NodeKind represents the closed category of a node. The set of kinds is
// fixed at build time and matches the toolbox exactly.
type NodeKind string

const (
	// KindInput represents a data source node
	KindInput NodeKind = "customInput"
	// KindFilter represents a row-filtering node
	KindFilter NodeKind = "filter"
	// KindOutput represents a data sink node
	KindOutput NodeKind = "customOutput"
	// KindText represents a free-text template node
	KindText NodeKind = "text"
	// KindCustom1 through KindCustom5 are generic nodes with distinct schemas
	KindCustom1 NodeKind = "customnode1"
	KindCustom2 NodeKind = "customnode2"
	KindCustom3 NodeKind = "customnode3"
	KindCustom4 NodeKind = "customnode4"
	KindCustom5 NodeKind = "customnode5"
)

// Node represents a placed, typed unit in the pipeline graph.
// ID is generated by the store, unique for the lifetime of the graph and
// immutable after creation. Kind is fixed at creation and selects the
// schema used to render and edit Fields.
type Node struct {
	ID       string         `json:"id" validate:"required"`
	Kind     NodeKind       `json:"type" validate:"required"`
	Position Position       `json:"position"`
	Fields   map[string]any `json:"data,omitempty"`
	Selected bool           `json:"selected,omitempty"`
}

// Validate ensures node integrity
func (n *Node) Validate() error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if n.Kind == "" {
		return ErrInvalidNodeKind
	}
	return nil
}

// Field returns the stored value for key. Unknown keys are preserved by the
// store, so a missing key only means the field was never edited.
func (n *Node) Field(key string) (any, bool) {
	v, ok := n.Fields[key]
	return v, ok
}

// CloneFields returns a copy of the field mapping so callers can hand out
// snapshots without sharing the underlying map.
func (n *Node) CloneFields() map[string]any {
	if n.Fields == nil {
		return nil
	}
	out := make(map[string]any, len(n.Fields))
	for k, v := range n.Fields {
		out[k] = v
	}
	return out
}
