package usecases

import (
	"context"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/app/store"
	"github.com/cpprhtn/Polaris/internal/infrastructure/ctxlog"
	"github.com/cpprhtn/Polaris/internal/infrastructure/metrics"
)

// Submitter snapshots the current graph and asks the remote analyzer for
// a verdict. No lock is held across the network call; a second submission
// while one is pending is not prevented, and each completes
// independently.
type Submitter struct {
	store    *store.Store
	analyzer Analyzer
	archive  SubmissionArchive
}

// NewSubmitter wires the submitter. archive may be nil.
func NewSubmitter(s *store.Store, analyzer Analyzer, archive SubmissionArchive) *Submitter {
	return &Submitter{store: s, analyzer: analyzer, archive: archive}
}

// Submit sends the full graph snapshot to the analyzer. All transport,
// status and decode failures are logged and collapsed into the single
// generic dto.ErrSubmitFailed; no retry is attempted.
func (s *Submitter) Submit(ctx context.Context) (*dto.ParseResult, error) {
	snap := s.store.Snapshot()
	log := ctxlog.FromContext(ctx)
	log.Debug("submitting pipeline",
		"nodes", snap.NodeCount(), "edges", snap.EdgeCount())

	result, err := s.analyzer.Parse(ctx, snap)
	if err != nil {
		log.Error("pipeline submission failed", "error", err)
		metrics.IncSubmissionFailures()
		return nil, dto.ErrSubmitFailed
	}

	metrics.IncSubmissions()
	if s.archive != nil {
		if aerr := s.archive.Record(snap, *result); aerr != nil {
			log.Warn("submission archive record failed", "error", aerr)
		}
	}
	return result, nil
}
