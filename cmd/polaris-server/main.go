// Package main provides the Polaris analyzer service: it receives full
// pipeline snapshots and reports node/edge counts and whether the graph
// is a DAG.
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register /debug/pprof

	"github.com/cpprhtn/Polaris/internal/infrastructure/config"
)

func main() {
	cfg := config.Load()

	mux := newMux(cfg)
	log.Printf("Starting Polaris analyzer on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newMux wires all routes; split out so tests can drive the full server
// through httptest.
func newMux(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintln(w, "Polaris analyzer is running. See /healthz, /metrics, /debug/pprof/")
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "ok")
	})

	// Prometheus-compatible metrics endpoint (no external deps)
	mux.HandleFunc("/metrics", promMetricsHandler)

	mux.Handle("/pipelines/parse", withCORS(cfg.Server.AllowedOrigins,
		http.HandlerFunc(parsePipelineHandler)))

	return mux
}
