package usecases

import (
	"encoding/json"

	"github.com/cpprhtn/Polaris/internal/app/dto"
	"github.com/cpprhtn/Polaris/internal/app/store"
	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/core/schema"
)

// DropGesture is the raw drag-and-drop event data: pointer position in
// screen coordinates plus the drag-data channel contents keyed by type
// identifier.
type DropGesture struct {
	ClientX float64
	ClientY float64
	Data    map[string]string
}

// DropController converts an external drag-and-drop gesture into a new
// node insertion at a canvas-relative position.
type DropController struct {
	store  *store.Store
	canvas CanvasPort
}

// NewDropController wires the controller to its store and canvas port.
func NewDropController(s *store.Store, canvas CanvasPort) *DropController {
	return &DropController{store: s, canvas: canvas}
}

// Drop handles one gesture. A missing drop target, an absent or malformed
// payload, or an unknown node kind all silently ignore the gesture: no
// node is created and no error is surfaced. On success the created node
// is returned.
func (c *DropController) Drop(g DropGesture) (graph.Node, bool) {
	bounds, ok := c.canvas.DropBounds()
	if !ok {
		return graph.Node{}, false
	}

	raw := g.Data[dto.DragDataType]
	if raw == "" {
		return graph.Node{}, false
	}
	var payload dto.DropPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return graph.Node{}, false
	}
	kind := graph.NodeKind(payload.NodeType)
	if payload.NodeType == "" || !schema.Known(kind) {
		return graph.Node{}, false
	}

	position := c.canvas.Project(graph.Position{
		X: g.ClientX - bounds.X,
		Y: g.ClientY - bounds.Y,
	})

	id := c.store.GenerateID(kind)
	node := graph.Node{
		ID:       id,
		Kind:     kind,
		Position: position,
		Fields: map[string]any{
			"id":       id,
			"nodeType": payload.NodeType,
		},
	}
	c.store.AddNode(node)
	return node, true
}
