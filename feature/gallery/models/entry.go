package models

import (
	"strings"
	"time"

	"media-gallery/core/reconcile"
)

// Entry represents one row of the 'gallery_entries' table.
type Entry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SKU       string    `gorm:"column:sku;size:64;index:idx_gallery_sku_position" json:"sku"`
	File      string    `gorm:"column:file;size:255" json:"file"`
	Label     string    `gorm:"column:label;size:255" json:"label,omitempty"`
	Position  int       `gorm:"column:position;index:idx_gallery_sku_position" json:"position"`
	Disabled  bool      `gorm:"column:disabled" json:"disabled"`
	MediaType string    `gorm:"column:media_type;size:32" json:"media_type"`
	Types     string    `gorm:"column:types;size:255" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Entry) TableName() string {
	return "gallery_entries"
}

// Columns lists the columns the repository reads and writes.
var Columns = []string{"id", "sku", "file", "label", "position", "disabled", "media_type", "types", "created_at", "updated_at"}

// TypeList returns the image roles.
func (e Entry) TypeList() []string {
	if e.Types == "" {
		return nil
	}
	return strings.Split(e.Types, ",")
}

// SetTypes stores the image roles.
func (e *Entry) SetTypes(types []string) {
	e.Types = strings.Join(types, ",")
}

// ToExisting returns the snapshot the reconcile engine compares against.
func (e Entry) ToExisting() reconcile.ExistingEntry {
	return reconcile.ExistingEntry{ID: e.ID, File: e.File}
}

// FromGalleryEntry builds a row from a reconciled entry. The caller decides
// whether the id refers to an existing row.
func FromGalleryEntry(sku string, g reconcile.GalleryEntry) Entry {
	mediaType := g.MediaType
	if mediaType == "" {
		mediaType = "image"
	}
	e := Entry{
		ID:        g.ID,
		SKU:       sku,
		File:      g.File,
		Label:     g.Label,
		Position:  g.SortOrder,
		Disabled:  g.Disabled,
		MediaType: mediaType,
	}
	e.SetTypes(g.Types)
	return e
}
