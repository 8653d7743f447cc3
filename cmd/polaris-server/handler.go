package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/pkg/validation"
)

// parsePipelineHandler implements POST /pipelines/parse: decode the full
// snapshot, validate the wire shapes, and answer with counts plus the
// acyclicity verdict.
func parsePipelineHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateParseRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	snap := graph.Snapshot{Nodes: req.Nodes, Edges: req.Edges}
	result := dto.ParseResult{
		NumNodes: snap.NodeCount(),
		NumEdges: snap.EdgeCount(),
		IsDAG:    validation.IsDAG(snap),
	}
	log.Printf("parsed pipeline: nodes=%d edges=%d is_dag=%v",
		result.NumNodes, result.NumEdges, result.IsDAG)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// withCORS answers preflight requests and tags responses for the allowed
// development origins, mirroring what the editor frontend expects.
func withCORS(origins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
