// Package export turns an ordered list of frame ids into a single merged PDF.
//
// Pages are rendered by the design service, downloaded concurrently and merged
// locally with pdfcpu. Results are stored by request index, so download completion
// order never affects page order. Any failed page fails the whole export.
package export
