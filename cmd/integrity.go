package cmd

import (
	"context"
	"errors"
	"fmt"

	"catalog-builder/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, records and the design document",
	Long:  `Checks the bucket layout, the record source and the special frames of the design document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the bucket layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// recordsCmd represents the integrity records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Check the record source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// designCmd represents the integrity design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Check the design document and its special frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCmd, recordsCmd, designCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runIntegrityChecks(ctx context.Context, runStorage, runRecords, runDesign bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	logg := a.logger
	defer logg.Sync()

	svc := a.integrityService()
	failed := false

	if runStorage {
		logg.Info("Checking storage structure...", zap.String("bucket", a.cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		bucketMissing := errors.Is(err, checks.ErrBucketMissing)
		if err != nil && !(fixFlag && bucketMissing) {
			return fmt.Errorf("storage check failed: %w", err)
		}
		if bucketMissing {
			missing = svc.Folders()
		}

		if len(missing) == 0 && !bucketMissing {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if fixFlag {
				logg.Info("Fixing storage structure...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				failed = true
				logg.Info("Run with --fix to create missing folders.")
			}
		}

		objects, err := svc.CheckObjects(ctx)
		if err != nil {
			return fmt.Errorf("object check failed: %w", err)
		}
		if len(objects) > 0 {
			failed = true
			logg.Warn("Missing objects detected", zap.Strings("missing", objects))
		}
	}

	if runRecords {
		logg.Info("Checking record source...", zap.String("source", a.cfg.Records.Source))
		report, err := svc.CheckRecords(ctx)
		if err != nil {
			return fmt.Errorf("records check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Record source is healthy.", zap.Int("records", report.Count))
		} else {
			failed = true
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", a.cfg.Records.Table), zap.Strings("columns", report.MissingColumns))
			}
			for _, e := range report.Errors {
				logg.Error("Record source error", zap.String("error", e))
			}
		}
	}

	if runDesign {
		logg.Info("Checking design document...", zap.String("file", a.design.FileKey()))
		report, err := svc.CheckDesign(ctx)
		if err != nil {
			return fmt.Errorf("design check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Design document is healthy.", zap.String("document", report.Document), zap.Int("frames", report.Frames), zap.Int("nodes", report.Nodes))
		} else {
			failed = true
			if !report.PageFound {
				logg.Warn("Configured page not found", zap.String("page", a.cfg.Design.Page), zap.Strings("pages", report.Pages))
			}
			if len(report.MissingFrames) > 0 {
				logg.Warn("Special frames not found", zap.Strings("frames", report.MissingFrames))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported issues")
	}
	return nil
}
