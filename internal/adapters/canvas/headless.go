// Package canvas provides a headless implementation of the canvas
// collaborator contract. The real rendering surface lives outside this
// module; this adapter stands in for it in tests and CLI runs, keeping
// the same projection and geometry-cache semantics.
package canvas

import (
	"sync"

	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// Headless tracks a drop surface, a viewport (pan + zoom), and the node
// ids whose internals were invalidated.
type Headless struct {
	mu        sync.Mutex
	bounds    graph.Rect
	hasBounds bool
	pan       graph.Position
	zoom      float64
	internals []string
}

// NewHeadless creates a canvas with the given drop surface and an
// identity viewport.
func NewHeadless(bounds graph.Rect) *Headless {
	return &Headless{bounds: bounds, hasBounds: true, zoom: 1}
}

// DropBounds returns the drop surface bounding box when one is attached.
func (h *Headless) DropBounds() (graph.Rect, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bounds, h.hasBounds
}

// DetachDropSurface simulates the drop target being unavailable.
func (h *Headless) DetachDropSurface() {
	h.mu.Lock()
	h.hasBounds = false
	h.mu.Unlock()
}

// Project converts screen-relative coordinates to canvas space by
// unapplying the current pan and zoom.
func (h *Headless) Project(p graph.Position) graph.Position {
	h.mu.Lock()
	defer h.mu.Unlock()
	return graph.Position{
		X: (p.X - h.pan.X) / h.zoom,
		Y: (p.Y - h.pan.Y) / h.zoom,
	}
}

// Pan shifts the viewport.
func (h *Headless) Pan(dx, dy float64) {
	h.mu.Lock()
	h.pan.X += dx
	h.pan.Y += dy
	h.mu.Unlock()
}

// SetZoom sets the viewport zoom factor. Zero is ignored.
func (h *Headless) SetZoom(z float64) {
	if z == 0 {
		return
	}
	h.mu.Lock()
	h.zoom = z
	h.mu.Unlock()
}

// UpdateNodeInternals records that a node's internal layout changed and
// its cached geometry must be re-measured.
func (h *Headless) UpdateNodeInternals(nodeID string) {
	h.mu.Lock()
	h.internals = append(h.internals, nodeID)
	h.mu.Unlock()
}

// InternalsUpdates returns the node ids notified so far, in order.
func (h *Headless) InternalsUpdates() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.internals))
	copy(out, h.internals)
	return out
}
