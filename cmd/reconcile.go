package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"media-gallery/core/config"
	"media-gallery/core/database"
	"media-gallery/core/logger"
	"media-gallery/feature/gallery"
	"media-gallery/feature/gallery/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile gallery command
	galleryBatchFile string
	dryRunGallery    bool
	yesConfirm       bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile submitted media against stored media",
}

// galleryReconcileCmd reconciles a gallery batch file against the stored gallery of a SKU.
var galleryReconcileCmd = &cobra.Command{
	Use:   "gallery [sku]",
	Short: "Reconcile a gallery batch file (report + optionally save)",
	Long: `Reconcile a gallery batch against the stored gallery of a product.

The batch file has the same JSON shape as the body of POST /gallery/:sku/reconcile.
The decisions are always reported first; saving asks for confirmation.

Examples:
  # Report only
  reconcile gallery SKU-1 --file batch.json --dry-run

  # Save with interactive confirmation
  reconcile gallery SKU-1 --file batch.json

  # Save with auto-confirm (non-interactive)
  reconcile gallery SKU-1 --file batch.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runGalleryReconcile,
}

func init() {
	reconcileCmd.AddCommand(galleryReconcileCmd)

	galleryReconcileCmd.Flags().StringVarP(&galleryBatchFile, "file", "f", "", "Path to the JSON gallery batch")
	galleryReconcileCmd.Flags().BoolVar(&dryRunGallery, "dry-run", false, "Report decisions without saving")
	galleryReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm saving (non-interactive)")
	_ = galleryReconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runGalleryReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	sku := args[0]

	batch, err := readBatch(galleryBatchFile)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := gallery.EnsureSchema(db, l); err != nil {
		return err
	}

	feature, err := newGalleryFeature(ctx, cfg, db, l)
	if err != nil {
		return err
	}
	svc := feature.Service()

	// Step 1: Plan (always runs)
	l.Info("Planning gallery reconciliation...", zap.String("sku", sku), zap.Int("entries", len(batch.Entries)))
	plan, err := svc.Reconcile(ctx, sku, batch.ToGalleryEntries(), true)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}
	printGalleryReport(l, plan)

	if dryRunGallery {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirmAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report, err := svc.Reconcile(ctx, sku, batch.ToGalleryEntries(), false)
	if err != nil {
		return fmt.Errorf("failed to save gallery: %w", err)
	}
	l.Info("Gallery saved", zap.Int("entries", len(report.Entries)), zap.Int("uploaded", report.Uploaded))
	return nil
}

func readBatch(path string) (*models.ReconcileRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var batch models.ReconcileRequest
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	return &batch, nil
}

// printGalleryReport prints the reconcile summary and decision trail using logger.
func printGalleryReport(l *zap.Logger, report *models.ReconcileReport) {
	s := report.Summary

	l.Info("Reconciliation report",
		zap.String("run_id", report.RunID),
		zap.Int("incoming", s.Incoming),
		zap.Int("fetched", s.Fetched),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("overrides", s.Overrides),
		zap.Int("warnings", s.Warnings),
		zap.Int("to_upload", report.Uploaded),
		zap.Int("dropped", report.Dropped),
	)

	for _, line := range report.Trail {
		l.Info(line)
	}
}

// confirmAction prompts the user for confirmation or uses --yes flag.
func confirmAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to save the gallery: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
