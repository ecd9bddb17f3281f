// Package reconcile matches the frames of a design file against product records and
// plans the resulting text updates and page order.
//
// The package is the only place with non-trivial algorithmic content in the service.
// Everything here is a pure function of its inputs: no I/O, no caching, no mutation of the
// design tree. Each call recomputes the full reconciliation.
//
// # Reconciler
//
// Reconciler.Reconcile takes frames in extraction order and an ordered RecordSet:
//
//  1. Records are ranked by their position in the set.
//  2. Each frame is matched to a record by its trimmed name. Unmatched frames yield a
//     diagnostic and nothing else.
//  3. Text layers of a matched frame whose name appears in the FieldMapping, and whose
//     mapped field is defined on the record, yield one Patch each (depth-first order).
//  4. Matched frame ids are stable-sorted by record rank.
//
// Patch order follows frame discovery; it is not reordered to match the ranking.
//
// # Assembler
//
// Assembler.Assemble splices the cover, table of contents and back cover frames around a
// caller-supplied list of frame ids and removes duplicates, keeping first occurrences.
// The resulting order is the page order of the exported catalog.
//
// # Diagnostics
//
// Anomalies (unmatched frame, missing page scope, missing special frame) never fail an
// operation. They are logged and returned as Diagnostic values.
//
// # Usage Example
//
//	r := reconcile.NewReconciler(reconcile.DefaultFieldMapping(), logger)
//	report := r.Report(doc.Root, records, "Products")
//
//	a := reconcile.NewAssembler(reconcile.SpecialFrames{Cover: "Cover", TOC: "Table of Contents", Back: "Back Cover"}, logger)
//	assembly := a.Assemble(report.MatchedFrameIDs, frames)
package reconcile
