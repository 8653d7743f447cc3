package usecases

import (
	"context"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// CanvasPort is the narrow contract the core needs from the rendering
// canvas. Everything visual stays behind it.
type CanvasPort interface {
	// DropBounds returns the drop surface bounding box in screen
	// coordinates, or false when no drop target is available.
	DropBounds() (graph.Rect, bool)

	// Project converts screen-relative coordinates to canvas-space
	// coordinates, accounting for the current pan and zoom.
	Project(p graph.Position) graph.Position

	// UpdateNodeInternals tells the canvas to re-measure a node's handle
	// anchors; it caches node geometry otherwise.
	UpdateNodeInternals(nodeID string)
}

// Analyzer submits a pipeline snapshot to the remote analysis service.
type Analyzer interface {
	Parse(ctx context.Context, snap graph.Snapshot) (*dto.ParseResult, error)
}

// SubmissionArchive records completed submissions for diagnostics.
type SubmissionArchive interface {
	Record(snap graph.Snapshot, result dto.ParseResult) error
}
