package graph

// Snapshot is an isolated copy of the node and edge collections, safe to
// hand to goroutines that outlive the next store mutation.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes in the snapshot.
func (s Snapshot) NodeCount() int { return len(s.Nodes) }

// EdgeCount returns the number of edges in the snapshot.
func (s Snapshot) EdgeCount() int { return len(s.Edges) }

// NodeByID returns the node with the given id, if present.
func (s Snapshot) NodeByID(id string) (*Node, bool) {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i], true
		}
	}
	return nil, false
}
