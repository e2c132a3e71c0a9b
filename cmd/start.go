package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"media-gallery/core/config"
	"media-gallery/core/database"
	"media-gallery/core/loader"
	"media-gallery/core/logger"
	"media-gallery/core/middleware/auth"
	"media-gallery/core/middleware/errmask"
	"media-gallery/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "media-gallery/docs/swagger"
)

// @title Media Gallery API
// @version 1.0
// @description API for importing and reconciling product image galleries.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the media gallery server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Gallery.IsValidMediaBackend() {
			logg.Fatal("Invalid media backend", zap.String("media_backend", cfg.Gallery.MediaBackend))
		}

		// 3. Connect to Database (Optional; the gallery feature stays disabled without it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ErrorHandler: errmask.New(errmask.Config{
				Debug:  cfg.Server.DebugErrors,
				Logger: logg,
			}),
		})

		// 5. Initialize Feature Loader
		feature, err := newGalleryFeature(context.Background(), cfg, db, logg)
		if err != nil {
			logg.Fatal("Failed to create gallery feature", zap.Error(err))
		}
		mgr := loader.NewManager(logg)
		mgr.Register(feature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Next()
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		logg.Info("Gallery import flags",
			zap.Bool("enabled", cfg.Gallery.Enabled),
			zap.Bool("pass_url", cfg.Gallery.PassURL),
			zap.Bool("pass_path", cfg.Gallery.PassPath),
			zap.Bool("skip_unchanged", cfg.Gallery.SkipUnchanged),
			zap.String("import_dir", cfg.Gallery.ImportDir()),
		)

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
