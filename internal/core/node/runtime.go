// Package node owns the per-instance runtime behavior of a placed node:
// its editable field values, the derived (dynamic) handle set, and the
// rendered height that keeps growing text from clipping handles.
package node

import (
	"fmt"
	"strings"

	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/core/schema"
	"github.com/cpprhtn/Polaris/internal/core/template"
	"github.com/cpprhtn/Polaris/internal/infrastructure/metrics"
)

// Rendering constants in canvas units. baseHeight is the chrome-only box;
// textLineHeight approximates one rendered textarea row; chromeMargin is
// the title bar, padding and handle clearance added above the text.
const (
	baseHeight     = 100.0
	textLineHeight = 18.0
	minTextRows    = 2
	chromeMargin   = 50.0
)

// InternalsSink receives "this node's internal layout changed"
// notifications. The canvas caches node geometry, so it must be told to
// re-measure handle anchors whenever the dynamic handle set changes.
type InternalsSink func(nodeID string)

// Runtime is the live state of one node instance. It is stable whenever
// the dynamic handle set matches the current text; every text mutation
// recomputes synchronously, so observers never see a stale set.
type Runtime struct {
	id      string
	kind    graph.NodeKind
	def     schema.Definition
	fields  map[string]any
	matches []string
	dynamic []graph.HandleSpec
	height  float64
	notify  InternalsSink
}

// NewRuntime builds the runtime for a node instance. Pre-existing text
// fields (e.g. when reattaching to a node that already has content) are
// scanned immediately so the handle set starts consistent.
func NewRuntime(id string, kind graph.NodeKind, fields map[string]any, notify InternalsSink) *Runtime {
	r := &Runtime{
		id:     id,
		kind:   kind,
		def:    schema.Lookup(kind),
		fields: make(map[string]any, len(fields)),
		height: baseHeight,
		notify: notify,
	}
	for k, v := range fields {
		r.fields[k] = v
	}
	r.recompute()
	return r
}

// ID returns the node instance id.
func (r *Runtime) ID() string { return r.id }

// Kind returns the node kind.
func (r *Runtime) Kind() graph.NodeKind { return r.kind }

// Title returns the display title from the schema.
func (r *Runtime) Title() string { return r.def.Title }

// SetField stores value under key and, when the field is free-text,
// re-fits the node height and re-derives the dynamic handle set. It
// reports whether the handle set was replaced: edits that leave the
// match sequence identical (such as appending plain prose) must not
// churn the handle list, though the height still tracks the text.
func (r *Runtime) SetField(key string, value any) bool {
	r.fields[key] = value
	f, ok := r.fieldSchema(key)
	if !ok || !f.FreeText() {
		return false
	}
	return r.recompute()
}

// Field returns the stored value for key.
func (r *Runtime) Field(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Fields returns a copy of the current field values, visible or not.
// Hidden fields retain their stored values.
func (r *Runtime) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// VisibleFields returns the schema fields whose condition holds for the
// current values, in schema order.
func (r *Runtime) VisibleFields() []schema.FieldSchema {
	out := make([]schema.FieldSchema, 0, len(r.def.Fields))
	for _, f := range r.def.Fields {
		if f.Visible(r.fields) {
			out = append(out, f)
		}
	}
	return out
}

// StaticHandles returns the schema-declared handles with instance ids.
func (r *Runtime) StaticHandles() []graph.HandleSpec {
	out := make([]graph.HandleSpec, len(r.def.Handles))
	for i, h := range r.def.Handles {
		h.ID = schema.HandleID(r.id, h.ID)
		out[i] = h
	}
	return out
}

// DynamicHandles returns the handles derived from the current text, one
// per extracted reference, duplicates included. Identity is positional:
// removing an earlier reference shifts every later handle id down by one.
func (r *Runtime) DynamicHandles() []graph.HandleSpec {
	out := make([]graph.HandleSpec, len(r.dynamic))
	copy(out, r.dynamic)
	return out
}

// Handles returns the full handle set, static first.
func (r *Runtime) Handles() []graph.HandleSpec {
	return append(r.StaticHandles(), r.DynamicHandles()...)
}

// Matches returns the current extracted reference sequence.
func (r *Runtime) Matches() []string {
	out := make([]string, len(r.matches))
	copy(out, r.matches)
	return out
}

// Height returns the node's rendered height in canvas units.
func (r *Runtime) Height() float64 { return r.height }

func (r *Runtime) fieldSchema(key string) (schema.FieldSchema, bool) {
	for _, f := range r.def.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return schema.FieldSchema{}, false
}

// textContent concatenates the free-text field values in schema order.
func (r *Runtime) textContent() string {
	var b strings.Builder
	for _, f := range r.def.Fields {
		if !f.FreeText() {
			continue
		}
		if v, ok := r.fields[f.Key].(string); ok {
			b.WriteString(v)
		}
	}
	return b.String()
}

// recompute re-fits the height, runs the extractor, and reconciles the
// dynamic handle set against the previous render. Height follows every
// text mutation so growing prose never clips handles; the handle set is
// only replaced when the match sequence actually changed. Returns true
// when the set was replaced.
func (r *Runtime) recompute() bool {
	text := r.textContent()
	r.resize(text)

	matches := template.Extract(text)
	if template.Equal(matches, r.matches) {
		return false
	}

	r.matches = matches
	r.dynamic = make([]graph.HandleSpec, len(matches))
	n := len(matches)
	for i, name := range matches {
		r.dynamic[i] = graph.HandleSpec{
			ID:      fmt.Sprintf("%s-target-%d", r.id, i),
			Role:    graph.HandleTarget,
			Name:    name,
			Dynamic: true,
			Anchor: graph.Anchor{
				Side:   graph.SideLeft,
				Offset: float64(i+1) / float64(n+1),
			},
		}
	}
	metrics.IncHandleRecomputes()

	// The canvas caches node geometry; without this it keeps stale
	// handle anchors after the set changes.
	if r.notify != nil {
		r.notify(r.id)
	}
	return true
}

// resize grows the node with its text content so handles are never
// clipped. Nodes without free-text fields keep the base height.
func (r *Runtime) resize(text string) {
	if !r.hasFreeText() {
		r.height = baseHeight
		return
	}
	rows := strings.Count(text, "\n") + 1
	if rows < minTextRows {
		rows = minTextRows
	}
	r.height = float64(rows)*textLineHeight + chromeMargin
}

func (r *Runtime) hasFreeText() bool {
	for _, f := range r.def.Fields {
		if f.FreeText() {
			return true
		}
	}
	return false
}
