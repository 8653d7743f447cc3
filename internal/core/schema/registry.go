// Package schema maps each node kind to its static field schema, static
// handle set, and display title. The registry is fixed at build time; the
// set of kinds offered by the toolbox is exactly the registry's key set.
package schema

import (
	"fmt"
	"sort"

	"github.com/cpprhtn/Polaris/internal/core/graph"
)

// InputKind enumerates the widget a field renders as.
type InputKind string

const (
	InputText     InputKind = "text"
	InputNumber   InputKind = "number"
	InputSelect   InputKind = "select"
	InputTextarea InputKind = "textarea"
	InputFile     InputKind = "file"
)

// Condition decides whether a field is visible given the node's current
// field values. Hidden fields keep their stored values.
type Condition func(fields map[string]any) bool

// FieldSchema is the static description of one editable field.
type FieldSchema struct {
	Key       string
	Label     string
	Input     InputKind
	Options   []string
	Condition Condition
}

// FreeText reports whether edits to this field feed the handle pattern
// extractor. Only free-text inputs participate in dynamic handle
// derivation; select, number and file fields never do.
func (f FieldSchema) FreeText() bool {
	return f.Input == InputText || f.Input == InputTextarea
}

// Visible evaluates the field's condition against the current values.
// Fields without a condition are always visible.
func (f FieldSchema) Visible(fields map[string]any) bool {
	if f.Condition == nil {
		return true
	}
	return f.Condition(fields)
}

// Definition ties a node kind to everything needed to render it.
type Definition struct {
	Title   string
	Fields  []FieldSchema
	Handles []graph.HandleSpec
}

// HandleID composes the instance-level id for a static handle: the
// registry stores bare suffixes, nodes prefix their own id.
func HandleID(nodeID, suffix string) string {
	return nodeID + "-" + suffix
}

func sourceRight(suffix string) graph.HandleSpec {
	return graph.HandleSpec{
		ID:     suffix,
		Role:   graph.HandleSource,
		Anchor: graph.Anchor{Side: graph.SideRight, Offset: 0.5},
	}
}

func targetLeft(suffix string) graph.HandleSpec {
	return graph.HandleSpec{
		ID:     suffix,
		Role:   graph.HandleTarget,
		Anchor: graph.Anchor{Side: graph.SideLeft, Offset: 0.5},
	}
}

var registry = map[graph.NodeKind]Definition{
	graph.KindInput: {
		Title: "Input",
		Fields: []FieldSchema{
			{Key: "sourceType", Label: "Source", Input: InputSelect,
				Options: []string{"upload", "http", "s3", "gcs", "azure"}},
			{Key: "url", Label: "URL", Input: InputText,
				Condition: func(fields map[string]any) bool {
					v, ok := fields["sourceType"].(string)
					return ok && v != "" && v != "upload"
				}},
			{Key: "file", Label: "File", Input: InputFile,
				Condition: func(fields map[string]any) bool {
					return fields["sourceType"] == "upload"
				}},
		},
		Handles: []graph.HandleSpec{sourceRight("data")},
	},
	graph.KindFilter: {
		Title: "Filter",
		Fields: []FieldSchema{
			{Key: "column", Label: "Column", Input: InputText},
			{Key: "operator", Label: "Operator", Input: InputSelect,
				Options: []string{"==", "!=", ">", "<", ">=", "<="}},
			{Key: "value", Label: "Value", Input: InputText},
		},
		Handles: []graph.HandleSpec{targetLeft("input"), sourceRight("output")},
	},
	graph.KindOutput: {
		Title: "Output",
		Fields: []FieldSchema{
			{Key: "fileName", Label: "File Name", Input: InputText},
			{Key: "format", Label: "Format", Input: InputSelect,
				Options: []string{"CSV", "Parquet"}},
		},
		Handles: []graph.HandleSpec{targetLeft("value")},
	},
	graph.KindText: {
		Title: "Text",
		Fields: []FieldSchema{
			{Key: "text", Label: "Text", Input: InputTextarea},
		},
		Handles: []graph.HandleSpec{sourceRight("output")},
	},
	graph.KindCustom1: {
		Title: "Custom Node 1",
		Fields: []FieldSchema{
			{Key: "param1", Label: "Param", Input: InputText},
		},
		Handles: []graph.HandleSpec{sourceRight("output"), targetLeft("input")},
	},
	graph.KindCustom2: {
		Title: "Custom Node 2",
		Fields: []FieldSchema{
			{Key: "threshold", Label: "Threshold", Input: InputNumber},
		},
		Handles: []graph.HandleSpec{sourceRight("output"), targetLeft("input")},
	},
	graph.KindCustom3: {
		Title: "Custom Node 3",
		Fields: []FieldSchema{
			{Key: "setting", Label: "Setting", Input: InputSelect,
				Options: []string{"A", "B", "C"}},
		},
		Handles: []graph.HandleSpec{sourceRight("result"), targetLeft("config")},
	},
	graph.KindCustom4: {
		Title: "CustomNode 4",
		Fields: []FieldSchema{
			{Key: "inputName", Label: "Attribute", Input: InputText},
			{Key: "inputType", Label: "Type", Input: InputSelect,
				Options: []string{"Text", "File"}},
		},
		Handles: []graph.HandleSpec{sourceRight("value")},
	},
	graph.KindCustom5: {
		Title: "Custom Node 5",
		Fields: []FieldSchema{
			{Key: "parameter", Label: "Param", Input: InputText},
			{Key: "value", Label: "Value", Input: InputText},
		},
		Handles: []graph.HandleSpec{sourceRight("output"), targetLeft("input")},
	},
}

// Lookup returns the definition for kind. An unknown kind is a programming
// error: the toolbox offers exactly the registry's key set, so Lookup
// panics rather than degrade silently.
func Lookup(kind graph.NodeKind) Definition {
	def, ok := registry[kind]
	if !ok {
		panic(fmt.Sprintf("schema: unknown node kind %q", kind))
	}
	return def
}

// Known reports whether kind is offerable. Boundary code (the drop
// controller) uses this to discard payloads naming unknown kinds before
// they ever reach Lookup.
func Known(kind graph.NodeKind) bool {
	_, ok := registry[kind]
	return ok
}

// Kinds returns the offerable kinds in deterministic order.
func Kinds() []graph.NodeKind {
	out := make([]graph.NodeKind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
