package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"catalog-builder/core/reconcile"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportPage string
var reportJSON bool

// reportCmd prints the reconciliation report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Match product records against design frames",
	Long: `Fetches the design document and the product records, then prints the text
patches and the matched frames in record order. Unmatched frames are listed as diagnostics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report, err := a.catalogService().Report(cmd.Context(), reportPage)
		if err != nil {
			return fmt.Errorf("report failed: %w", err)
		}

		if reportJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		a.logger.Info("Report completed",
			zap.Int("frames", report.TotalFrames),
			zap.Int("matched", report.MatchedCount),
		)
		return renderReport(os.Stdout, report)
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportPage, "page", "", "Page to scan (defaults to design.page)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")
}

// renderReport writes the matched frames, patches and diagnostics as tables.
func renderReport(w io.Writer, report reconcile.Report) error {
	fmt.Fprintf(w, "Frames: %d  Matched: %d  Patches: %d\n\n", report.TotalFrames, report.MatchedCount, len(report.Patches))

	order := tablewriter.NewTable(w)
	order.Header("Rank", "Frame ID")
	for i, id := range report.MatchedFrameIDs {
		if err := order.Append(strconv.Itoa(i+1), id); err != nil {
			return err
		}
	}
	if err := order.Render(); err != nil {
		return err
	}

	patches := tablewriter.NewTable(w)
	patches.Header("Frame", "Layer", "Node ID", "New Text")
	for _, p := range report.Patches {
		if err := patches.Append(p.FrameName, p.LayerName, p.NodeID, p.NewText); err != nil {
			return err
		}
	}
	if err := patches.Render(); err != nil {
		return err
	}

	if len(report.Diagnostics) == 0 {
		return nil
	}
	diagnostics := tablewriter.NewTable(w)
	diagnostics.Header("Kind", "Subject", "Message")
	for _, d := range report.Diagnostics {
		if err := diagnostics.Append(string(d.Kind), d.Subject, d.Message); err != nil {
			return err
		}
	}
	return diagnostics.Render()
}
