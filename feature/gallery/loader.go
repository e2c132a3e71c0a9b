package gallery

import (
	"fmt"

	"media-gallery/core/database"
	"media-gallery/core/reconcile"
	"media-gallery/feature/gallery/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	service *Service
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the gallery feature. A nil db disables it.
func NewFeature(db *gorm.DB, store MediaStore, fetcher *reconcile.Fetcher, cfg reconcile.Config, logger *zap.Logger) *Feature {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("feature", "gallery"))

	var repo Repository
	if db != nil {
		repo = NewRepository(db)
	}
	engine := reconcile.NewEngine(fetcher, store,
		reconcile.WithConcurrency(cfg.FetchConcurrency),
		reconcile.WithLogger(logger),
	)
	svc := NewService(repo, store, engine, cfg.Flags(), logger)
	return &Feature{
		db:      db,
		service: svc,
		handler: NewHandler(svc, logger),
		logger:  logger,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "gallery"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Service returns the gallery service.
func (f *Feature) Service() *Service {
	return f.service
}

// Load prepares the schema and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := EnsureSchema(f.db, f.logger); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// EnsureSchema migrates gallery_entries when the table or any of its columns is missing.
func EnsureSchema(db *gorm.DB, logger *zap.Logger) error {
	missing, err := database.MissingColumns(db, models.Entry{}.TableName(), models.Columns)
	if err != nil {
		return fmt.Errorf("failed to inspect gallery schema: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}

	logger.Info("Migrating gallery schema", zap.Strings("missing_columns", missing))
	if err := db.AutoMigrate(&models.Entry{}); err != nil {
		return fmt.Errorf("failed to migrate gallery schema: %w", err)
	}
	return nil
}
