package reconcile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"catalog-builder/core/design"

	"go.uber.org/zap"
)

// unrankedIndex sorts matched frames without a rank after every ranked frame.
const unrankedIndex = math.MaxInt

// Reconciler matches frames to records and derives text patches and a frame ranking.
// It holds no state between calls and never mutates its inputs.
type Reconciler struct {
	mapping FieldMapping
	logger  *zap.Logger
}

// NewReconciler creates a reconciler using the given field mapping.
// A nil logger disables diagnostic logging.
func NewReconciler(mapping FieldMapping, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{mapping: mapping, logger: logger}
}

// rankedFrame pairs a matched frame id with the rank of its record.
type rankedFrame struct {
	id   string
	rank int
}

// Reconcile matches each frame, by trimmed name, to a record.
//
// For a matched frame every text node of its subtree whose name is mapped to a field
// defined on the record yields one patch, in depth-first order. Frames without a record
// produce a diagnostic and nothing else. Matched frame ids are returned sorted by the
// position of their record in records; equal ranks keep extraction order.
func (r *Reconciler) Reconcile(frames []design.Frame, records *RecordSet) Result {
	result := Result{
		Patches:         []Patch{},
		OrderedFrameIDs: []string{},
		Diagnostics:     []Diagnostic{},
	}

	rankIndex := make(map[string]int, records.Len())
	for i, name := range records.Names() {
		rankIndex[strings.TrimSpace(name)] = i
	}

	matched := make([]rankedFrame, 0, len(frames))
	for _, frame := range frames {
		name := strings.TrimSpace(frame.Name)

		record, ok := records.Get(name)
		if !ok {
			diag := Diagnostic{
				Kind:    DiagnosticUnmatchedFrame,
				Subject: name,
				FrameID: frame.ID,
				Message: fmt.Sprintf("no record named %q", name),
			}
			result.Diagnostics = append(result.Diagnostics, diag)
			r.logger.Warn("Unmatched frame", zap.String("frame", name), zap.String("frame_id", frame.ID))
			continue
		}

		result.Patches = append(result.Patches, r.patchFrame(frame.Node, name, record)...)

		rank, ranked := rankIndex[name]
		if !ranked {
			rank = unrankedIndex
		}
		matched = append(matched, rankedFrame{id: frame.ID, rank: rank})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].rank < matched[j].rank
	})
	for _, m := range matched {
		result.OrderedFrameIDs = append(result.OrderedFrameIDs, m.id)
	}

	r.logger.Debug("Reconciliation finished",
		zap.Int("frames", len(frames)),
		zap.Int("records", records.Len()),
		zap.Int("matched", len(result.OrderedFrameIDs)),
		zap.Int("patches", len(result.Patches)),
	)

	return result
}

// patchFrame walks a matched frame and emits a patch for every mapped and defined text layer.
func (r *Reconciler) patchFrame(root *design.Node, frameName string, record Record) []Patch {
	var patches []Patch
	design.Walk(root, func(n *design.Node) {
		if n.Kind != design.KindText {
			return
		}
		field, mapped := r.mapping.Field(n.Name)
		if !mapped {
			return
		}
		value, defined := record.Field(field)
		if !defined {
			return
		}
		patches = append(patches, Patch{
			NodeID:    n.ID,
			FrameName: frameName,
			LayerName: n.Name,
			NewText:   value,
		})
	})
	return patches
}

// Report extracts frames from the document, optionally restricted to the page named scope,
// and reconciles them against records.
func (r *Reconciler) Report(root *design.Node, records *RecordSet, scope string) Report {
	frames, scoped := design.ExtractFrames(root, scope)

	diagnostics := []Diagnostic{}
	if scope != "" && !scoped {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    DiagnosticMissingScope,
			Subject: scope,
			Message: fmt.Sprintf("page %q not found, scanning the whole document", scope),
		})
		r.logger.Warn("Page not found, falling back to full document", zap.String("page", scope))
	}

	result := r.Reconcile(frames, records)

	return Report{
		Patches:         result.Patches,
		MatchedFrameIDs: result.OrderedFrameIDs,
		TotalFrames:     len(frames),
		MatchedCount:    len(result.OrderedFrameIDs),
		Diagnostics:     append(diagnostics, result.Diagnostics...),
	}
}
