package gallery

import (
	"context"
	"fmt"

	"media-gallery/feature/gallery/models"

	"gorm.io/gorm"
)

// Repository persists gallery entries per record.
type Repository interface {
	// ListByRecord returns the entries of sku in storage order.
	ListByRecord(ctx context.Context, sku string) ([]models.Entry, error)
	// Replace makes entries the complete gallery of sku and returns the saved rows.
	Replace(ctx context.Context, sku string, entries []models.Entry) ([]models.Entry, error)
	// FilesInUse returns the subset of files referenced by any row of any sku.
	FilesInUse(ctx context.Context, files []string) (map[string]struct{}, error)
}

// GormRepository is the GORM implementation of Repository.
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListByRecord returns the entries of sku ordered by position, then id.
// The order is stable, which keeps first-match decisions deterministic.
func (r *GormRepository) ListByRecord(ctx context.Context, sku string) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.WithContext(ctx).
		Where("sku = ?", sku).
		Order("position ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery of %s: %w", sku, err)
	}
	return entries, nil
}

// Replace runs in one transaction: rows whose id belongs to sku are updated,
// every other entry is inserted as a new row, and rows of sku that are no
// longer referenced are deleted.
func (r *GormRepository) Replace(ctx context.Context, sku string, entries []models.Entry) ([]models.Entry, error) {
	saved := make([]models.Entry, len(entries))
	copy(saved, entries)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentIDs []int64
		if err := tx.Model(&models.Entry{}).Where("sku = ?", sku).Pluck("id", &currentIDs).Error; err != nil {
			return fmt.Errorf("failed to read current rows: %w", err)
		}
		current := make(map[int64]struct{}, len(currentIDs))
		for _, id := range currentIDs {
			current[id] = struct{}{}
		}

		keep := make([]int64, 0, len(saved))
		for i := range saved {
			entry := &saved[i]
			entry.SKU = sku

			if _, ok := current[entry.ID]; ok && entry.ID != 0 {
				err := tx.Model(entry).
					Select("file", "label", "position", "disabled", "media_type", "types", "updated_at").
					Updates(entry).Error
				if err != nil {
					return fmt.Errorf("failed to update entry %d: %w", entry.ID, err)
				}
			} else {
				entry.ID = 0
				if err := tx.Create(entry).Error; err != nil {
					return fmt.Errorf("failed to insert entry %q: %w", entry.File, err)
				}
			}
			keep = append(keep, entry.ID)
		}

		del := tx.Where("sku = ?", sku)
		if len(keep) > 0 {
			del = del.Where("id NOT IN ?", keep)
		}
		if err := del.Delete(&models.Entry{}).Error; err != nil {
			return fmt.Errorf("failed to delete stale rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace gallery of %s: %w", sku, err)
	}
	return saved, nil
}

// FilesInUse returns the subset of files still referenced by any row.
func (r *GormRepository) FilesInUse(ctx context.Context, files []string) (map[string]struct{}, error) {
	inUse := make(map[string]struct{})
	if len(files) == 0 {
		return inUse, nil
	}

	var found []string
	err := r.db.WithContext(ctx).
		Model(&models.Entry{}).
		Where("file IN ?", files).
		Pluck("file", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up file references: %w", err)
	}
	for _, file := range found {
		inUse[file] = struct{}{}
	}
	return inUse, nil
}
