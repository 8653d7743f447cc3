package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
)

func snapOf(nodeIDs []string, edges [][2]string) graph.Snapshot {
	var snap graph.Snapshot
	for _, id := range nodeIDs {
		snap.Nodes = append(snap.Nodes, graph.Node{ID: id, Kind: graph.KindText})
	}
	for i, e := range edges {
		snap.Edges = append(snap.Edges, graph.Edge{
			ID:     string(rune('a' + i)),
			Source: e[0],
			Target: e[1],
		})
	}
	return snap
}

func TestIsDAG(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  bool
	}{
		{
			name: "empty graph",
			want: true,
		},
		{
			name:  "nodes without edges",
			nodes: []string{"a", "b"},
			want:  true,
		},
		{
			name:  "simple chain",
			nodes: []string{"a", "b", "c"},
			edges: [][2]string{{"a", "b"}, {"b", "c"}},
			want:  true,
		},
		{
			name:  "two-node cycle",
			nodes: []string{"a", "b"},
			edges: [][2]string{{"a", "b"}, {"b", "a"}},
			want:  false,
		},
		{
			name:  "self-loop",
			nodes: []string{"a"},
			edges: [][2]string{{"a", "a"}},
			want:  false,
		},
		{
			name:  "diamond is acyclic",
			nodes: []string{"a", "b", "c", "d"},
			edges: [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			want:  true,
		},
		{
			name:  "cycle in disconnected component",
			nodes: []string{"a", "b", "c", "d"},
			edges: [][2]string{{"a", "b"}, {"c", "d"}, {"d", "c"}},
			want:  false,
		},
		{
			name:  "parallel edges stay acyclic",
			nodes: []string{"a", "b"},
			edges: [][2]string{{"a", "b"}, {"a", "b"}},
			want:  true,
		},
		{
			name:  "dangling edge endpoint tolerated",
			nodes: []string{"a"},
			edges: [][2]string{{"a", "ghost"}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDAG(snapOf(tt.nodes, tt.edges)))
		})
	}
}

func TestValidateParseRequest(t *testing.T) {
	valid := &dto.ParseRequest{
		Nodes: []graph.Node{{ID: "text-1", Kind: graph.KindText}},
		Edges: []graph.Edge{{ID: "e1", Source: "text-1", Target: "text-1"}},
	}
	assert.NoError(t, ValidateParseRequest(valid))

	empty := &dto.ParseRequest{}
	assert.NoError(t, ValidateParseRequest(empty))

	missingID := &dto.ParseRequest{
		Nodes: []graph.Node{{Kind: graph.KindText}},
	}
	assert.Error(t, ValidateParseRequest(missingID))

	missingTarget := &dto.ParseRequest{
		Edges: []graph.Edge{{ID: "e1", Source: "a"}},
	}
	assert.Error(t, ValidateParseRequest(missingTarget))

	assert.Error(t, ValidateParseRequest(nil))
}
