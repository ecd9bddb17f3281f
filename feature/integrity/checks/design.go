package checks

import (
	"context"

	"catalog-builder/core/design"
	"catalog-builder/core/reconcile"
)

// DocumentSource loads the design document.
type DocumentSource interface {
	FetchDocument(ctx context.Context) (*design.Document, error)
}

// DesignReport describes the state of the design document.
type DesignReport struct {
	Document      string   `json:"document"`
	Status        string   `json:"status"` // "ok", "error"
	Pages         []string `json:"pages"`
	Nodes         int      `json:"nodes"`
	Frames        int      `json:"frames"`
	PageFound     bool     `json:"page_found"`
	MissingFrames []string `json:"missing_frames"`
}

// CheckDesign fetches the document and verifies the configured page and the
// special frames can be found.
func CheckDesign(ctx context.Context, source DocumentSource, page string, names reconcile.SpecialFrames) (*DesignReport, error) {
	doc, err := source.FetchDocument(ctx)
	if err != nil {
		return nil, err
	}

	frames, _ := design.ExtractFrames(doc.Root, "")
	report := &DesignReport{
		Document:      doc.Name,
		Status:        "ok",
		Pages:         design.Pages(doc.Root),
		Nodes:         doc.Len(),
		Frames:        len(frames),
		PageFound:     page == "" || design.FindPage(doc.Root, page) != nil,
		MissingFrames: []string{},
	}

	assembly := reconcile.NewAssembler(names, nil).Assemble(nil, frames)
	for _, d := range assembly.Diagnostics {
		report.MissingFrames = append(report.MissingFrames, d.Subject)
	}

	if !report.PageFound || len(report.MissingFrames) > 0 {
		report.Status = "error"
	}
	return report, nil
}
