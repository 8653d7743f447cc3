// Package store holds the process-wide pipeline graph state: the node and
// edge collections, per-kind id counters, and the subscriber list. It is
// an explicit container owned by the composition root and injected into
// consumers, never a hidden global.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/infrastructure/metrics"
)

// EventKind labels a store mutation for subscribers.
type EventKind string

const (
	EventNodeAdded    EventKind = "node_added"
	EventNodesChanged EventKind = "nodes_changed"
	EventEdgesChanged EventKind = "edges_changed"
	EventConnected    EventKind = "connected"
	EventFieldUpdated EventKind = "field_updated"
)

// Event describes one completed mutation. ElementID carries the node or
// edge most directly affected; batch applications leave it empty.
type Event struct {
	Kind      EventKind
	ElementID string
}

// Store is the single shared mutable resource of the editor. All
// operations are total over their documented input shapes: malformed
// input (an unknown id, an empty batch) degrades to a no-op rather than
// an error, because the canvas is the sole, trusted caller.
//
// Callers may run on multiple goroutines, so every collection access
// goes through the mutex.
type Store struct {
	mu       sync.RWMutex
	nodes    []graph.Node
	edges    []graph.Edge
	counters map[graph.NodeKind]int
	subs     []func(Event)
}

// New creates an empty store.
func New() *Store {
	return &Store{
		counters: make(map[graph.NodeKind]int),
	}
}

// Subscribe registers fn to be called synchronously after every mutation.
// Subscribers must not mutate the store from within the callback.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify runs outside the collection lock so subscribers can read back.
func (s *Store) notify(ev Event) {
	s.mu.RLock()
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// GenerateID returns a fresh id for a node of the given kind. The per-kind
// counter starts at zero, increments before use and never decreases, so
// ids are strictly increasing per kind and never reused even after
// deletions. Distinct kinds cannot collide: the kind is part of the id.
func (s *Store) GenerateID(kind graph.NodeKind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[kind]++
	return fmt.Sprintf("%s-%d", kind, s.counters[kind])
}

// AddNode appends the node to the collection. The caller - always the
// drop controller holding a freshly generated id - is trusted; no
// duplicate-id check is performed here.
func (s *Store) AddNode(n graph.Node) {
	s.mu.Lock()
	s.nodes = append(s.nodes, n)
	s.mu.Unlock()

	metrics.IncNodesCreated(string(n.Kind))
	s.notify(Event{Kind: EventNodeAdded, ElementID: n.ID})
}

// ApplyNodeChanges batch-applies a sequence of structural deltas reported
// by the canvas, atomically against the current collection. Removing a
// node cascade-prunes every edge referencing it, so no edge ever outlives
// an endpoint.
func (s *Store) ApplyNodeChanges(changes []dto.NodeChange) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	removed := make(map[string]bool)
	for _, ch := range changes {
		switch ch.Kind {
		case dto.ChangePosition:
			if ch.Position == nil {
				continue
			}
			for i := range s.nodes {
				if s.nodes[i].ID == ch.ID {
					s.nodes[i].Position = *ch.Position
					break
				}
			}
		case dto.ChangeSelect:
			for i := range s.nodes {
				if s.nodes[i].ID == ch.ID {
					s.nodes[i].Selected = ch.Selected
					break
				}
			}
		case dto.ChangeRemove:
			removed[ch.ID] = true
		}
	}
	if len(removed) > 0 {
		nodes := s.nodes[:0]
		for _, n := range s.nodes {
			if !removed[n.ID] {
				nodes = append(nodes, n)
			}
		}
		s.nodes = nodes

		pruned := int64(0)
		edges := s.edges[:0]
		for _, e := range s.edges {
			if removed[e.Source] || removed[e.Target] {
				pruned++
				continue
			}
			edges = append(edges, e)
		}
		s.edges = edges
		if pruned > 0 {
			metrics.AddEdgesPruned(pruned)
		}
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventNodesChanged})
}

// ApplyEdgeChanges batch-applies edge deltas (select, remove).
func (s *Store) ApplyEdgeChanges(changes []dto.EdgeChange) {
	if len(changes) == 0 {
		return
	}

	s.mu.Lock()
	removed := make(map[string]bool)
	for _, ch := range changes {
		switch ch.Kind {
		case dto.ChangeSelect:
			for i := range s.edges {
				if s.edges[i].ID == ch.ID {
					s.edges[i].Selected = ch.Selected
					break
				}
			}
		case dto.ChangeRemove:
			removed[ch.ID] = true
		}
	}
	if len(removed) > 0 {
		edges := s.edges[:0]
		for _, e := range s.edges {
			if !removed[e.ID] {
				edges = append(edges, e)
			}
		}
		s.edges = edges
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventEdgesChanged})
}

// Connect appends a new edge derived from a proposed handle pair, tagging
// it with the fixed visual style. The canvas validated the handle pair at
// gesture time; parallel edges and self-loops are permitted here.
func (s *Store) Connect(conn dto.Connection) graph.Edge {
	edge := graph.Edge{
		ID:           "edge-" + uuid.NewString(),
		Source:       conn.Source,
		SourceHandle: conn.SourceHandle,
		Target:       conn.Target,
		TargetHandle: conn.TargetHandle,
		Style:        graph.EdgeStyleSmoothstep,
		Animated:     true,
	}

	s.mu.Lock()
	s.edges = append(s.edges, edge)
	s.mu.Unlock()

	metrics.IncEdgesConnected()
	s.notify(Event{Kind: EventConnected, ElementID: edge.ID})
	return edge
}

// UpdateField replaces one entry in a node's field mapping. A nodeID not
// present in the collection is a no-op.
func (s *Store) UpdateField(nodeID, key string, value any) {
	s.mu.Lock()
	updated := false
	for i := range s.nodes {
		if s.nodes[i].ID != nodeID {
			continue
		}
		fields := s.nodes[i].CloneFields()
		if fields == nil {
			fields = make(map[string]any, 1)
		}
		fields[key] = value
		s.nodes[i].Fields = fields
		updated = true
		break
	}
	s.mu.Unlock()

	if updated {
		s.notify(Event{Kind: EventFieldUpdated, ElementID: nodeID})
	}
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// EdgeCount returns the number of edges.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// Node returns a copy of the node with the given id.
func (s *Store) Node(id string) (graph.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.nodes {
		if n.ID == id {
			n.Fields = n.CloneFields()
			return n, true
		}
	}
	return graph.Node{}, false
}

// Snapshot returns deep copies of the node and edge collections. The
// snapshot stays valid while the store keeps mutating, which is what the
// submission path relies on during its network call.
func (s *Store) Snapshot() graph.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := graph.Snapshot{
		Nodes: make([]graph.Node, len(s.nodes)),
		Edges: make([]graph.Edge, len(s.edges)),
	}
	for i, n := range s.nodes {
		n.Fields = n.CloneFields()
		snap.Nodes[i] = n
	}
	copy(snap.Edges, s.edges)
	return snap
}
