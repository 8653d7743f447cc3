package node

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpprhtn/Polaris/internal/core/graph"
	"github.com/cpprhtn/Polaris/internal/core/schema"
	"github.com/cpprhtn/Polaris/internal/core/template"
)

func TestRuntime_DynamicHandlesTrackText(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	assert.Empty(t, r.DynamicHandles())

	changed := r.SetField("text", "{{a}} and {{b}}")
	require.True(t, changed)

	handles := r.DynamicHandles()
	require.Len(t, handles, 2)
	assert.Equal(t, "text-1-target-0", handles[0].ID)
	assert.Equal(t, "text-1-target-1", handles[1].ID)
	assert.Equal(t, "a", handles[0].Name)
	assert.Equal(t, "b", handles[1].Name)
	assert.Equal(t, graph.HandleTarget, handles[0].Role)
	assert.True(t, handles[0].Dynamic)
}

// Dynamic handle count always equals the extractor's match count after any
// text mutation, never lazily stale.
func TestRuntime_CountInvariantAfterEveryEdit(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	edits := []string{
		"",
		"{{x}}",
		"{{x}}{{x}}",
		"{{x}} plus prose",
		"no refs at all",
		"{{a}} {{b}} {{c}}",
		"{{}}",
		"{{a}} {{b}} {{c}} {{d}} back",
	}
	for _, text := range edits {
		r.SetField("text", text)
		assert.Len(t, r.DynamicHandles(), len(template.Extract(text)),
			"after edit %q", text)
		assert.Equal(t, template.Extract(text), orNil(r.Matches()))
	}
}

func orNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestRuntime_AnchorsEvenlyDistributed(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	r.SetField("text", "{{a}} {{b}} {{c}}")

	handles := r.DynamicHandles()
	require.Len(t, handles, 3)
	for i, h := range handles {
		assert.Equal(t, graph.SideLeft, h.Anchor.Side)
		assert.InDelta(t, float64(i+1)/4.0, h.Anchor.Offset, 1e-9)
	}
}

func TestRuntime_NoOpEditDoesNotChurn(t *testing.T) {
	var notified []string
	r := NewRuntime("text-1", graph.KindText, nil, func(id string) {
		notified = append(notified, id)
	})

	require.True(t, r.SetField("text", "{{x}}"))
	require.Equal(t, []string{"text-1"}, notified)

	// Appending plain prose keeps the match sequence identical: no handle
	// list replacement and no internals notification.
	changed := r.SetField("text", "{{x}} trailing prose")
	assert.False(t, changed)
	assert.Equal(t, []string{"text-1"}, notified)
	assert.Len(t, r.DynamicHandles(), 1)
}

func TestRuntime_RemovalShiftsPositionalIdentity(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	r.SetField("text", "{{a}} {{b}}")
	before := r.DynamicHandles()
	require.Equal(t, "b", before[1].Name)

	// Removing the earlier reference shifts b down to index 0: the handle
	// formerly addressed as target-1 is gone.
	r.SetField("text", "{{b}}")
	after := r.DynamicHandles()
	require.Len(t, after, 1)
	assert.Equal(t, "text-1-target-0", after[0].ID)
	assert.Equal(t, "b", after[0].Name)
}

func TestRuntime_NonTextFieldsNeverFeedExtractor(t *testing.T) {
	r := NewRuntime("customInput-1", graph.KindInput, nil, nil)

	changed := r.SetField("sourceType", "{{sneaky}}")
	assert.False(t, changed)
	assert.Empty(t, r.DynamicHandles())
}

func TestRuntime_TextInputFieldsFeedExtractor(t *testing.T) {
	// Filter's column field is a plain text input, still free text.
	r := NewRuntime("filter-1", graph.KindFilter, nil, nil)
	changed := r.SetField("column", "{{col}}")
	assert.True(t, changed)
	assert.Len(t, r.DynamicHandles(), 1)
}

func TestRuntime_HiddenFieldsRetainValues(t *testing.T) {
	r := NewRuntime("customInput-1", graph.KindInput, nil, nil)
	r.SetField("sourceType", "http")
	r.SetField("url", "https://example.com/data.csv")

	visible := keysOf(r.VisibleFields())
	assert.Contains(t, visible, "url")

	// Switching to upload hides the URL field but keeps its value.
	r.SetField("sourceType", "upload")
	visible = keysOf(r.VisibleFields())
	assert.NotContains(t, visible, "url")
	assert.Contains(t, visible, "file")

	v, ok := r.Field("url")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/data.csv", v)
}

func keysOf(fields []schema.FieldSchema) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Key)
	}
	return out
}

func TestRuntime_HeightGrowsWithText(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	short := r.Height()

	r.SetField("text", "{{a}}\n{{b}}\n{{c}}\n{{d}}\nline\nline\nline")
	assert.Greater(t, r.Height(), short)
}

// Height must re-fit on every text edit, including ones that add rows
// without touching the reference sequence: the handle set stays, the
// internals sink stays quiet, but the node still grows with its text.
func TestRuntime_HeightTracksTextWithoutNewReferences(t *testing.T) {
	var notified []string
	r := NewRuntime("text-1", graph.KindText, nil, func(id string) {
		notified = append(notified, id)
	})
	require.True(t, r.SetField("text", "{{x}}"))
	before := r.Height()

	changed := r.SetField("text", "{{x}}\nline\nline\nline\nline\nline\nline")
	assert.False(t, changed)
	assert.Greater(t, r.Height(), before)
	assert.Len(t, r.DynamicHandles(), 1)
	assert.Equal(t, []string{"text-1"}, notified)

	// Shrinking back re-fits downward too.
	r.SetField("text", "{{x}}")
	assert.Equal(t, before, r.Height())
}

func TestRuntime_StaticHandleIDsPrefixed(t *testing.T) {
	r := NewRuntime("filter-3", graph.KindFilter, nil, nil)
	static := r.StaticHandles()
	require.Len(t, static, 2)
	ids := []string{static[0].ID, static[1].ID}
	assert.Contains(t, ids, "filter-3-input")
	assert.Contains(t, ids, "filter-3-output")
}

func TestRuntime_SeededTextScannedAtConstruction(t *testing.T) {
	fields := map[string]any{"text": "{{seed}}"}
	r := NewRuntime("text-9", graph.KindText, fields, nil)
	require.Len(t, r.DynamicHandles(), 1)
	assert.Equal(t, "seed", r.DynamicHandles()[0].Name)
}

func TestRuntime_DuplicateReferencesYieldDistinctHandles(t *testing.T) {
	r := NewRuntime("text-1", graph.KindText, nil, nil)
	r.SetField("text", "{{x}}{{x}}")

	handles := r.DynamicHandles()
	require.Len(t, handles, 2)
	assert.NotEqual(t, handles[0].ID, handles[1].ID)
	for i, h := range handles {
		assert.Equal(t, "x", h.Name)
		assert.Equal(t, fmt.Sprintf("text-1-target-%d", i), h.ID)
	}
}
