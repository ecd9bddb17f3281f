package reconcile

import (
	"testing"

	"catalog-builder/core/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func text(id, name string) *design.Node {
	return &design.Node{ID: id, Kind: design.KindText, Name: name}
}

func frame(id, name string, children ...*design.Node) design.Frame {
	n := &design.Node{ID: id, Kind: design.KindFrame, Name: name, Children: children}
	return design.Frame{ID: id, Name: name, Node: n}
}

func record(name string, fields map[string]string) Record {
	return Record{Name: name, Fields: fields}
}

func newTestReconciler() *Reconciler {
	return NewReconciler(DefaultFieldMapping(), zap.NewNop())
}

func TestReconcile_DiscoveryOrderVersusRankOrder(t *testing.T) {
	records := RecordSetOf(
		record("A", map[string]string{"productName": "A"}),
		record("B", map[string]string{"productName": "B"}),
	)
	frames := []design.Frame{
		frame("fB", "B", text("tB", "#product_name")),
		frame("fA", "A", text("tA", "#product_name")),
	}

	result := newTestReconciler().Reconcile(frames, records)

	assert.Equal(t, []Patch{
		{NodeID: "tB", FrameName: "B", LayerName: "#product_name", NewText: "B"},
		{NodeID: "tA", FrameName: "A", LayerName: "#product_name", NewText: "A"},
	}, result.Patches)
	assert.Equal(t, []string{"fA", "fB"}, result.OrderedFrameIDs)
	assert.Empty(t, result.Diagnostics)
}

func TestReconcile_UnmatchedFrame(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewReconciler(DefaultFieldMapping(), zap.New(core))

	records := RecordSetOf(record("A", map[string]string{"productName": "A"}))
	frames := []design.Frame{frame("fC", "C", text("tC", "#product_name"))}

	result := r.Reconcile(frames, records)

	assert.Empty(t, result.Patches)
	assert.Empty(t, result.OrderedFrameIDs)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, DiagnosticUnmatchedFrame, result.Diagnostics[0].Kind)
	assert.Equal(t, "C", result.Diagnostics[0].Subject)
	assert.Equal(t, "fC", result.Diagnostics[0].FrameID)
	assert.Equal(t, 1, logs.FilterMessage("Unmatched frame").Len())
}

func TestReconcile_LeafFiltering(t *testing.T) {
	records := RecordSetOf(record("Chair", map[string]string{
		"productName": "Oak Chair",
		"price":       "",
	}))
	frames := []design.Frame{frame("f1", "Chair",
		text("t1", "#product_name"),
		text("t2", "#sku"),    // mapped, field undefined
		text("t3", "Heading"), // not mapped
		text("t4", "#price"),  // mapped, defined as empty string
		&design.Node{ID: "o1", Kind: design.KindOther, Name: "#product_name"},
	)}

	result := newTestReconciler().Reconcile(frames, records)

	assert.Equal(t, []Patch{
		{NodeID: "t1", FrameName: "Chair", LayerName: "#product_name", NewText: "Oak Chair"},
		{NodeID: "t4", FrameName: "Chair", LayerName: "#price", NewText: ""},
	}, result.Patches)
	assert.Equal(t, []string{"f1"}, result.OrderedFrameIDs)
}

func TestReconcile_DepthFirstPatchOrder(t *testing.T) {
	records := RecordSetOf(record("Lamp", map[string]string{"productName": "Lamp", "sku": "L-1", "price": "9"}))
	group := &design.Node{ID: "g1", Kind: design.KindOther, Name: "Group", Children: []*design.Node{
		text("t2", "#sku"),
	}}
	frames := []design.Frame{frame("f1", "Lamp", text("t1", "#product_name"), group, text("t3", "#price"))}

	result := newTestReconciler().Reconcile(frames, records)

	require.Len(t, result.Patches, 3)
	assert.Equal(t, "t1", result.Patches[0].NodeID)
	assert.Equal(t, "t2", result.Patches[1].NodeID)
	assert.Equal(t, "t3", result.Patches[2].NodeID)
}

func TestReconcile_TrimsFrameNames(t *testing.T) {
	records := RecordSetOf(record("Desk", map[string]string{"productName": "Desk"}))
	frames := []design.Frame{frame("f1", "  Desk\t", text("t1", "#product_name"))}

	result := newTestReconciler().Reconcile(frames, records)

	require.Len(t, result.Patches, 1)
	assert.Equal(t, "Desk", result.Patches[0].FrameName)
	assert.Equal(t, []string{"f1"}, result.OrderedFrameIDs)
}

func TestReconcile_NoCaseFolding(t *testing.T) {
	records := RecordSetOf(record("desk", map[string]string{"productName": "Desk"}))
	frames := []design.Frame{frame("f1", "Desk")}

	result := newTestReconciler().Reconcile(frames, records)

	assert.Empty(t, result.OrderedFrameIDs)
	assert.Len(t, result.Diagnostics, 1)
}

func TestReconcile_StableRanking(t *testing.T) {
	records := RecordSetOf(
		record("B", map[string]string{}),
		record("A", map[string]string{}),
	)
	frames := []design.Frame{
		frame("a1", "A"),
		frame("x", "X"),
		frame("b1", "B"),
		frame("a2", "A"),
		frame("b2", " B "),
	}

	result := newTestReconciler().Reconcile(frames, records)

	assert.Equal(t, []string{"b1", "b2", "a1", "a2"}, result.OrderedFrameIDs)
}

func TestReconcile_PatchCountMatchesEligibleLeaves(t *testing.T) {
	records := RecordSetOf(
		record("P1", map[string]string{"productName": "one", "sku": "1"}),
		record("P2", map[string]string{"productName": "two"}),
	)
	frames := []design.Frame{
		frame("f1", "P1", text("a", "#product_name"), text("b", "#sku"), text("c", "#price")),
		frame("f2", "P2", text("d", "#product_name"), text("e", "#sku")),
		frame("f3", "P3", text("f", "#product_name")),
	}

	result := newTestReconciler().Reconcile(frames, records)

	assert.Len(t, result.Patches, 3)
	seen := map[string]int{}
	for _, p := range result.Patches {
		seen[p.NodeID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "d": 1}, seen)
}

func TestReconcile_Idempotent(t *testing.T) {
	records := RecordSetOf(
		record("A", map[string]string{"productName": "A", "sku": "SA"}),
		record("B", map[string]string{"productName": "B"}),
		record("C", map[string]string{"sku": "SC"}),
	)
	frames := []design.Frame{
		frame("fC", "C", text("c1", "#sku")),
		frame("fA", "A", text("a1", "#product_name"), text("a2", "#sku")),
		frame("fZ", "Z"),
		frame("fB", "B", text("b1", "#product_name")),
	}

	r := newTestReconciler()
	first := r.Reconcile(frames, records)
	second := r.Reconcile(frames, records)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"fA", "fB", "fC"}, first.OrderedFrameIDs)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	r := newTestReconciler()

	t.Run("NoFrames", func(t *testing.T) {
		result := r.Reconcile(nil, RecordSetOf(record("A", nil)))
		assert.NotNil(t, result.Patches)
		assert.Empty(t, result.Patches)
		assert.NotNil(t, result.OrderedFrameIDs)
		assert.Empty(t, result.OrderedFrameIDs)
	})

	t.Run("NoRecords", func(t *testing.T) {
		result := r.Reconcile([]design.Frame{frame("f1", "A")}, NewRecordSet())
		assert.Empty(t, result.Patches)
		assert.Empty(t, result.OrderedFrameIDs)
		assert.Len(t, result.Diagnostics, 1)
	})

	t.Run("NilRecords", func(t *testing.T) {
		result := r.Reconcile([]design.Frame{frame("f1", "A")}, nil)
		assert.Empty(t, result.OrderedFrameIDs)
	})

	t.Run("FrameWithoutSubtree", func(t *testing.T) {
		f := design.Frame{ID: "f1", Name: "A"}
		result := r.Reconcile([]design.Frame{f}, RecordSetOf(record("A", map[string]string{"productName": "A"})))
		assert.Empty(t, result.Patches)
		assert.Equal(t, []string{"f1"}, result.OrderedFrameIDs)
	})
}

func TestReconcile_NestedFramesAreIndependent(t *testing.T) {
	inner := &design.Node{ID: "inner", Kind: design.KindFrame, Name: "Inner", Children: []*design.Node{text("t2", "#sku")}}
	outer := &design.Node{ID: "outer", Kind: design.KindFrame, Name: "Outer", Children: []*design.Node{text("t1", "#product_name"), inner}}
	root := &design.Node{ID: "0", Kind: design.KindRoot, Children: []*design.Node{outer}}

	frames, _ := design.ExtractFrames(root, "")
	require.Len(t, frames, 2)

	records := RecordSetOf(
		record("Inner", map[string]string{"sku": "IN"}),
		record("Outer", map[string]string{"productName": "OUT", "sku": "OUT-SKU"}),
	)

	result := newTestReconciler().Reconcile(frames, records)

	assert.Equal(t, []Patch{
		{NodeID: "t1", FrameName: "Outer", LayerName: "#product_name", NewText: "OUT"},
		{NodeID: "t2", FrameName: "Outer", LayerName: "#sku", NewText: "OUT-SKU"},
		{NodeID: "t2", FrameName: "Inner", LayerName: "#sku", NewText: "IN"},
	}, result.Patches)
	assert.Equal(t, []string{"inner", "outer"}, result.OrderedFrameIDs)
}

func TestReconcile_CustomMapping(t *testing.T) {
	r := NewReconciler(NewFieldMapping(map[string]string{"Title": "title"}), nil)
	records := RecordSetOf(record("A", map[string]string{"title": "Hello", "productName": "ignored"}))
	frames := []design.Frame{frame("f1", "A", text("t1", "Title"), text("t2", "#product_name"))}

	result := r.Reconcile(frames, records)

	assert.Equal(t, []Patch{{NodeID: "t1", FrameName: "A", LayerName: "Title", NewText: "Hello"}}, result.Patches)
}

func TestReport(t *testing.T) {
	root := &design.Node{ID: "0", Kind: design.KindRoot, Children: []*design.Node{
		{ID: "p1", Kind: design.KindPage, Name: "Products", Children: []*design.Node{
			frame("f1", "A", text("t1", "#product_name")).Node,
			frame("f2", "Unknown").Node,
		}},
		{ID: "p2", Kind: design.KindPage, Name: "Extras", Children: []*design.Node{
			frame("f3", "B", text("t3", "#product_name")).Node,
		}},
	}}
	records := RecordSetOf(
		record("B", map[string]string{"productName": "B"}),
		record("A", map[string]string{"productName": "A"}),
	)
	r := newTestReconciler()

	t.Run("Scoped", func(t *testing.T) {
		report := r.Report(root, records, "Products")
		assert.Equal(t, 2, report.TotalFrames)
		assert.Equal(t, 1, report.MatchedCount)
		assert.Equal(t, []string{"f1"}, report.MatchedFrameIDs)
		assert.Len(t, report.Patches, 1)
		require.Len(t, report.Diagnostics, 1)
		assert.Equal(t, DiagnosticUnmatchedFrame, report.Diagnostics[0].Kind)
	})

	t.Run("MissingScopeFallsBack", func(t *testing.T) {
		report := r.Report(root, records, "Catalog")
		assert.Equal(t, 3, report.TotalFrames)
		assert.Equal(t, []string{"f3", "f1"}, report.MatchedFrameIDs)
		require.Len(t, report.Diagnostics, 2)
		assert.Equal(t, DiagnosticMissingScope, report.Diagnostics[0].Kind)
		assert.Equal(t, "Catalog", report.Diagnostics[0].Subject)
	})

	t.Run("Empty", func(t *testing.T) {
		report := r.Report(nil, NewRecordSet(), "")
		assert.Equal(t, 0, report.TotalFrames)
		assert.Equal(t, 0, report.MatchedCount)
		assert.NotNil(t, report.Patches)
		assert.NotNil(t, report.MatchedFrameIDs)
		assert.NotNil(t, report.Diagnostics)
	})
}
