package dto

import (
	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// ParseRequest is the full graph snapshot POSTed to /pipelines/parse.
// No diffing: every submission carries the whole graph.
type ParseRequest struct {
	Nodes []graph.Node `json:"nodes" validate:"dive"`
	Edges []graph.Edge `json:"edges" validate:"dive"`
}

// ParseResult is the analyzer's verdict on a submitted pipeline.
type ParseResult struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}
