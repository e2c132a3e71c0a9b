package gallery

import (
	"context"
	"fmt"

	"media-gallery/core/reconcile"
	"media-gallery/feature/gallery/models"

	"go.uber.org/zap"
)

// Service reconciles and persists product galleries.
type Service struct {
	repo   Repository
	store  MediaStore
	engine *reconcile.Engine
	flags  reconcile.Flags
	logger *zap.Logger
}

// NewService creates a gallery service.
func NewService(repo Repository, store MediaStore, engine *reconcile.Engine, flags reconcile.Flags, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		store:  store,
		engine: engine,
		flags:  flags,
		logger: logger,
	}
}

// Flags returns the feature toggles the service runs with.
func (s *Service) Flags() reconcile.Flags {
	return s.flags
}

// GetGallery returns the persisted gallery of sku.
func (s *Service) GetGallery(ctx context.Context, sku string) (*models.GalleryResponse, error) {
	entries, err := s.repo.ListByRecord(ctx, sku)
	if err != nil {
		return nil, err
	}
	resp := &models.GalleryResponse{SKU: sku, Entries: make([]models.EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.NewEntryResponse(e))
	}
	return resp, nil
}

// Check verifies that every stored entry of sku points at an existing file.
// Entries whose file is not a stored media path (plain references kept as-is)
// are checked the same way and reported when absent.
func (s *Service) Check(ctx context.Context, sku string) (*models.CheckReport, error) {
	entries, err := s.repo.ListByRecord(ctx, sku)
	if err != nil {
		return nil, err
	}

	report := &models.CheckReport{
		SKU:             sku,
		Total:           len(entries),
		Missing:         []models.EntryResponse{},
		IntegrityStatus: models.StatusPass,
	}
	for _, e := range entries {
		exists, err := s.store.Exists(ctx, e.File)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", e.File, err)
		}
		if !exists {
			report.Missing = append(report.Missing, models.NewEntryResponse(e))
		}
	}
	if len(report.Missing) > 0 {
		report.IntegrityStatus = models.StatusFail
		s.logger.Warn("Gallery files missing", zap.String("sku", sku), zap.Int("missing", len(report.Missing)))
	}
	return report, nil
}

// Reconcile decides the fate of every incoming entry and, unless dryRun is
// set, uploads new content and replaces the stored gallery of sku.
// Fetch and existing-content failures are returned unwrapped so callers can
// classify them with reconcile.IsResolutionError.
func (s *Service) Reconcile(ctx context.Context, sku string, incoming []reconcile.GalleryEntry, dryRun bool) (*models.ReconcileReport, error) {
	current, err := s.repo.ListByRecord(ctx, sku)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("sku", sku))

	existing, unstored, err := s.comparable(ctx, current)
	if err != nil {
		return nil, err
	}
	for _, row := range unstored {
		log.Warn("Stored entry has no media file, excluded from comparison",
			zap.Int64("id", row.ID), zap.String("file", row.File))
	}

	result, err := s.engine.Reconcile(ctx, reconcile.Request{
		Incoming: incoming,
		Existing: existing,
		Flags:    s.flags,
	})
	if err != nil {
		return nil, err
	}

	report := &models.ReconcileReport{
		RunID:       result.RunID,
		SKU:         sku,
		DryRun:      dryRun,
		Diagnostics: result.Diagnostics,
		Trail:       result.Trail(),
		Summary:     result.Summary,
		Entries:     []models.EntryResponse{},
		Unstored:    []models.EntryResponse{},
		Removed:     []string{},
	}
	for _, row := range unstored {
		report.Unstored = append(report.Unstored, models.NewEntryResponse(row))
	}

	log = log.With(zap.String("run_id", result.RunID))

	rows, uploaded, err := s.prepareRows(ctx, sku, result.Entries, dryRun, report)
	if err != nil {
		s.rollback(log, uploaded)
		return nil, err
	}

	if dryRun {
		for _, row := range rows {
			report.Entries = append(report.Entries, models.NewEntryResponse(row))
		}
		log.Info("Gallery dry run finished", zap.Int("entries", len(rows)), zap.Int("dropped", report.Dropped))
		return report, nil
	}

	saved, err := s.repo.Replace(ctx, sku, rows)
	if err != nil {
		s.rollback(log, uploaded)
		return nil, err
	}
	for _, row := range saved {
		report.Entries = append(report.Entries, models.NewEntryResponse(row))
	}
	report.Removed = s.removeStale(ctx, log, current, saved)

	log.Info("Gallery saved",
		zap.Int("entries", len(saved)),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("dropped", report.Dropped),
		zap.Int("removed", len(report.Removed)),
	)
	return report, nil
}

// prepareRows turns reconciled entries into rows. Entries that are neither
// uploadable nor referencing a file are dropped. Content is written to the
// media store unless dryRun is set, in which case only the target path is
// computed. It returns the files written so far, also on error.
func (s *Service) prepareRows(ctx context.Context, sku string, entries []reconcile.GalleryEntry, dryRun bool, report *models.ReconcileReport) ([]models.Entry, []string, error) {
	rows := make([]models.Entry, 0, len(entries))
	var uploaded []string
	reserved := make(map[string]struct{})
	claimed := make(map[int64]struct{})

	for _, entry := range entries {
		if !entry.IsResolvable() {
			report.Dropped++
			continue
		}

		if entry.HasContent() {
			data, err := entry.Content.Bytes()
			if err != nil {
				return nil, uploaded, &reconcile.FetchError{Kind: reconcile.KindReadError, Ref: entry.File, Detail: "invalid base64 payload", Err: err}
			}
			file, err := availablePath(ctx, s.store, storageName(entry.Content, entry.File), reserved)
			if err != nil {
				return nil, uploaded, fmt.Errorf("failed to place %s: %w", entry.Content.Name, err)
			}
			reserved[file] = struct{}{}

			if !dryRun {
				if err := s.store.Write(ctx, file, data, entry.Content.Type); err != nil {
					return nil, uploaded, err
				}
				uploaded = append(uploaded, file)
			}
			report.Uploaded++
			entry.File = file
			entry.Content = nil
		}

		row := models.FromGalleryEntry(sku, entry)
		// Only the first entry naming an id updates that row.
		if row.ID != 0 {
			if _, ok := claimed[row.ID]; ok {
				row.ID = 0
			} else {
				claimed[row.ID] = struct{}{}
			}
		}
		rows = append(rows, row)
	}
	return rows, uploaded, nil
}

// comparable splits the stored rows into the snapshot the engine compares
// against and the rows whose file the media store does not hold (plain
// references kept as-is, or files removed behind our back). Only rows with a
// stored file can have their bytes compared. Without skip-unchanged the
// engine never reads existing bytes, so no row is checked.
func (s *Service) comparable(ctx context.Context, rows []models.Entry) ([]reconcile.ExistingEntry, []models.Entry, error) {
	existing := make([]reconcile.ExistingEntry, 0, len(rows))
	var unstored []models.Entry
	for _, row := range rows {
		if s.flags.SkipUnchangedEnabled() {
			exists, err := s.store.Exists(ctx, row.File)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to check %s: %w", row.File, err)
			}
			if !exists {
				unstored = append(unstored, row)
				continue
			}
		}
		existing = append(existing, row.ToExisting())
	}
	return existing, unstored, nil
}

// removeStale deletes the media files of rows dropped by a committed save.
// Files still referenced by a saved row or by any other gallery are kept.
// Failures are logged; the save itself already succeeded.
func (s *Service) removeStale(ctx context.Context, log *zap.Logger, before, after []models.Entry) []string {
	kept := make(map[string]struct{}, len(after))
	for _, row := range after {
		kept[row.File] = struct{}{}
	}

	var candidates []string
	seen := make(map[string]struct{})
	for _, row := range before {
		if row.File == "" {
			continue
		}
		if _, ok := kept[row.File]; ok {
			continue
		}
		if _, ok := seen[row.File]; ok {
			continue
		}
		seen[row.File] = struct{}{}
		candidates = append(candidates, row.File)
	}
	if len(candidates) == 0 {
		return []string{}
	}

	inUse, err := s.repo.FilesInUse(ctx, candidates)
	if err != nil {
		log.Warn("Failed to check stale files, keeping them", zap.Error(err))
		return []string{}
	}

	removed := []string{}
	for _, file := range candidates {
		if _, ok := inUse[file]; ok {
			continue
		}
		exists, err := s.store.Exists(ctx, file)
		if err != nil {
			log.Warn("Failed to check stale file", zap.String("file", file), zap.Error(err))
			continue
		}
		if !exists {
			continue
		}
		if err := s.store.Remove(ctx, file); err != nil {
			log.Warn("Failed to remove stale file", zap.String("file", file), zap.Error(err))
			continue
		}
		removed = append(removed, file)
	}
	return removed
}

// rollback removes files uploaded by a run that failed to persist.
func (s *Service) rollback(log *zap.Logger, files []string) {
	for _, file := range files {
		// Detached from the request context, which may already be canceled.
		if err := s.store.Remove(context.Background(), file); err != nil {
			log.Warn("Failed to remove uploaded file", zap.String("file", file), zap.Error(err))
		}
	}
}
