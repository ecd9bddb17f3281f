package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoPages is returned when there is nothing to merge.
var ErrNoPages = errors.New("no pages to merge")

// PDFMerger merges PDF documents with pdfcpu.
type PDFMerger struct{}

// Merge concatenates pages into one document, keeping their order.
func (PDFMerger) Merge(pages [][]byte) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	readers := make([]io.ReadSeeker, 0, len(pages))
	for i, page := range pages {
		if len(page) == 0 {
			return nil, fmt.Errorf("page %d is empty", i)
		}
		readers = append(readers, bytes.NewReader(page))
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to merge pages: %w", err)
	}
	return out.Bytes(), nil
}

// PageCount returns the number of pages in a PDF document.
func PageCount(data []byte) (int, error) {
	return api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
}
