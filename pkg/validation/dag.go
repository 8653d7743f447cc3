// Package validation provides structural validation for submitted
// pipeline snapshots, including the directed-cycle check behind the
// analyzer's is_dag verdict.
package validation

import (
	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// IsDAG reports whether the snapshot's directed graph contains no cycle.
// DFS with white/gray/black coloring; a back-edge to a gray vertex is a
// cycle. Edges referencing nodes absent from the snapshot still
// contribute vertices, so dangling edges do not crash the check.
func IsDAG(snap graph.Snapshot) bool {
	const (
		white = 0 // unvisited
		gray  = 1 // visiting
		black = 2 // visited
	)

	color := make(map[string]int, len(snap.Nodes))
	adj := make(map[string][]string, len(snap.Nodes))
	for _, n := range snap.Nodes {
		adj[n.ID] = nil
	}
	for _, e := range snap.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	var dfs func(string) bool
	dfs = func(u string) bool {
		color[u] = gray
		for _, v := range adj[u] {
			if color[v] == gray {
				return true // back-edge
			}
			if color[v] == white {
				if dfs(v) {
					return true
				}
			}
		}
		color[u] = black
		return false
	}

	for u := range adj {
		if color[u] == white {
			if dfs(u) {
				return false
			}
		}
	}
	return true
}
