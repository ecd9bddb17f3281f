package cmd

import (
	"fmt"
	"os"

	"catalog-builder/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut    string
	exportBack   string
	exportUpload bool
)

// exportCmd builds the catalog PDF.
var exportCmd = &cobra.Command{
	Use:   "export [frame-id...]",
	Short: "Export product frames as a single PDF",
	Long: `Renders the given frames between the cover, table of contents and back cover
and merges them into one PDF. Without frame ids, every frame matched by a record
is exported in record order.

Examples:
  # Export every matched frame
  export --out catalog.pdf

  # Export two frames with a custom back cover
  export 12:34 12:56 --back "Back Cover Summer"

  # Upload to the bucket and print a download link
  export --upload`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc := a.catalogService()
		ctx := cmd.Context()

		ids := args
		if len(ids) == 0 {
			report, err := svc.Report(ctx, "")
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}
			ids = report.MatchedFrameIDs
		}

		req := catalog.ExportRequest{OrderRequest: catalog.OrderRequest{IDs: ids, Back: exportBack}}
		if cmd.Flags().Changed("upload") {
			req.Upload = &exportUpload
		}
		result, err := svc.Export(ctx, req)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		for _, d := range result.Assembly.Diagnostics {
			a.logger.Warn("Export diagnostic", zap.String("kind", string(d.Kind)), zap.String("subject", d.Subject))
		}

		if result.PDF == nil {
			fmt.Printf("Uploaded %s (%d bytes)\n%s\n", result.Key, result.Size, result.URL)
			return nil
		}

		if err := os.WriteFile(exportOut, result.PDF, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		a.logger.Info("Catalog exported",
			zap.String("file", exportOut),
			zap.Int("pages", len(result.Assembly.IDs)),
			zap.Int("bytes", result.Size),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalog.pdf", "Output file")
	exportCmd.Flags().StringVar(&exportBack, "back", "", "Back cover frame name (defaults to export.back_frame)")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Upload to the bucket instead of writing a file")
}
