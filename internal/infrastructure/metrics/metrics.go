package metrics

import (
	"expvar"
)

// Store activity counters. Node creation is keyed by kind via an expvar map.
var (
	nodesCreated   = expvar.NewMap("polaris_nodes_created_total")
	edgesConnected = new(expvar.Int)
	edgesPruned    = new(expvar.Int)
)

// Handle derivation / submission counters.
var (
	handleRecomputes  = new(expvar.Int)
	submissionsOK     = new(expvar.Int)
	submissionsFailed = new(expvar.Int)
)

func init() {
	expvar.Publish("polaris_edges_connected_total", edgesConnected)
	expvar.Publish("polaris_edges_pruned_total", edgesPruned)
	expvar.Publish("polaris_handle_recomputes_total", handleRecomputes)
	expvar.Publish("polaris_submissions_total", submissionsOK)
	expvar.Publish("polaris_submission_failures_total", submissionsFailed)
}

// Store helpers
func IncNodesCreated(kind string) { nodesCreated.Add(kind, 1) }
func IncEdgesConnected()          { edgesConnected.Add(1) }
func AddEdgesPruned(n int64)      { edgesPruned.Add(n) }

// Runtime / submission helpers
func IncHandleRecomputes()   { handleRecomputes.Add(1) }
func IncSubmissions()        { submissionsOK.Add(1) }
func IncSubmissionFailures() { submissionsFailed.Add(1) }
