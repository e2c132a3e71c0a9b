package cmd

import (
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

// galleryCmd groups gallery inspection commands.
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Inspect stored product galleries",
}

// galleryShowCmd prints the stored gallery of a SKU.
var galleryShowCmd = &cobra.Command{
	Use:   "show [sku]",
	Short: "Show the stored gallery of a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGalleryShow(cmd, args[0])
	},
}

// galleryCheckCmd verifies that the stored files of a SKU exist.
var galleryCheckCmd = &cobra.Command{
	Use:   "check [sku]",
	Short: "Check that every stored gallery file of a product exists",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGalleryCheck(cmd, args[0])
	},
}

func init() {
	galleryCmd.AddCommand(galleryShowCmd)
	galleryCmd.AddCommand(galleryCheckCmd)
	RootCmd.AddCommand(galleryCmd)
}

func runGalleryShow(cmd *cobra.Command, sku string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Database connection failed", zap.Error(err))
	}

	svc := gallery.NewService(gallery.NewRepository(db), nil, nil, cfg.Gallery.Flags(), logg)
	resp, err := svc.GetGallery(cmd.Context(), sku)
	if err != nil {
		logg.Fatal("Failed to load gallery", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Gallery ---")
	fmt.Printf("SKU:      %s\n", resp.SKU)
	fmt.Printf("Entries:  %d\n", len(resp.Entries))
	fmt.Println("---------------")
	for _, e := range resp.Entries {
		state := "\033[32menabled\033[0m"
		if e.Disabled {
			state = "\033[33mdisabled\033[0m"
		}
		fmt.Printf("#%-6d pos %-3d %-40s %s", e.ID, e.Position, e.File, state)
		if e.Label != "" {
			fmt.Printf("  %q", e.Label)
		}
		if len(e.Types) > 0 {
			fmt.Printf("  [%s]", strings.Join(e.Types, ", "))
		}
		fmt.Println()
	}
	fmt.Println("---------------")
}

func runGalleryCheck(cmd *cobra.Command, sku string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Database connection failed", zap.Error(err))
	}

	feature, err := newGalleryFeature(cmd.Context(), cfg, db, logg)
	if err != nil {
		logg.Fatal("Failed to create gallery feature", zap.Error(err))
	}

	logg.Info("Checking gallery files...", zap.String("sku", sku))
	report, err := feature.Service().Check(cmd.Context(), sku)
	if err != nil {
		logg.Fatal("Gallery check failed", zap.Error(err))
	}

	statusColor := "\033[32m" // Green
	if report.IntegrityStatus == models.StatusFail {
		statusColor = "\033[31m" // Red
	}
	resetColor := "\033[0m"

	fmt.Println("\n--- Gallery Integrity ---")
	fmt.Printf("SKU:        %s\n", report.SKU)
	fmt.Printf("Entries:    %d\n", report.Total)
	fmt.Printf("Integrity:  %s%s%s\n", statusColor, report.IntegrityStatus, resetColor)

	if len(report.Missing) > 0 {
		fmt.Println("\nMissing files:")
		for _, e := range report.Missing {
			fmt.Printf("- #%d %s\n", e.ID, e.File)
		}
	}
	fmt.Println("-------------------------")
}
