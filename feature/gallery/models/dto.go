package models

import (
	"media-gallery/core/reconcile"
	"media-gallery/core/utils"
)

// ContentRequest is the inline image payload of an entry.
type ContentRequest struct {
	Base64EncodedData string `json:"base64_encoded_data"`
	Type              string `json:"type"`
	Name              string `json:"name"`
}

// EntryRequest is one gallery entry as submitted by API clients. Scalar fields
// accept both JSON numbers/booleans and their string forms.
type EntryRequest struct {
	ID        any             `json:"id,omitempty"`
	File      string          `json:"file,omitempty"`
	Content   *ContentRequest `json:"content,omitempty"`
	Label     any             `json:"label,omitempty"`
	Position  any             `json:"position,omitempty"`
	Disabled  any             `json:"disabled,omitempty"`
	Types     []string        `json:"types,omitempty"`
	MediaType string          `json:"media_type,omitempty"`
}

// ReconcileRequest is the body of POST /gallery/:sku/reconcile.
type ReconcileRequest struct {
	Entries []EntryRequest `json:"entries"`
}

// ToGalleryEntries converts the request into the engine's input.
func (r ReconcileRequest) ToGalleryEntries() []reconcile.GalleryEntry {
	out := make([]reconcile.GalleryEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.ToGalleryEntry())
	}
	return out
}

// ToGalleryEntry converts a single entry.
func (e EntryRequest) ToGalleryEntry() reconcile.GalleryEntry {
	g := reconcile.GalleryEntry{
		ID:        utils.ToInt64(e.ID),
		File:      e.File,
		SortOrder: utils.ToInt(e.Position),
		Disabled:  utils.ToBool(e.Disabled),
		Types:     e.Types,
		MediaType: e.MediaType,
	}
	if e.Label != nil {
		g.Label = utils.ToString(e.Label)
	}
	if e.Content != nil {
		g.Content = &reconcile.Content{
			Base64EncodedData: e.Content.Base64EncodedData,
			Type:              e.Content.Type,
			Name:              e.Content.Name,
		}
	}
	return g
}

// EntryResponse is one persisted gallery entry.
type EntryResponse struct {
	ID        int64    `json:"id"`
	File      string   `json:"file"`
	Label     string   `json:"label,omitempty"`
	Position  int      `json:"position"`
	Disabled  bool     `json:"disabled"`
	MediaType string   `json:"media_type"`
	Types     []string `json:"types,omitempty"`
}

// NewEntryResponse converts a row into its API form.
func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		File:      e.File,
		Label:     e.Label,
		Position:  e.Position,
		Disabled:  e.Disabled,
		MediaType: e.MediaType,
		Types:     e.TypeList(),
	}
}

// GalleryResponse is the body of GET /gallery/:sku.
type GalleryResponse struct {
	SKU     string          `json:"sku"`
	Entries []EntryResponse `json:"entries"`
}

// ReconcileReport is the outcome of a reconcile request.
type ReconcileReport struct {
	RunID       string                 `json:"run_id"`
	SKU         string                 `json:"sku"`
	DryRun      bool                   `json:"dry_run"`
	Entries     []EntryResponse        `json:"entries"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
	Trail       []string               `json:"trail"`
	Summary     reconcile.Summary      `json:"summary"`
	Uploaded    int                    `json:"uploaded"`
	Dropped     int                    `json:"dropped"`
	// Unstored lists stored rows whose file is not in the media store. They
	// were not compared against the incoming content.
	Unstored []EntryResponse `json:"unstored"`
	// Removed lists media files deleted because no row references them anymore.
	Removed []string `json:"removed"`
}

// Integrity statuses of a CheckReport.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// CheckReport lists stored entries whose file is missing from the media store.
type CheckReport struct {
	SKU             string          `json:"sku"`
	Total           int             `json:"total"`
	Missing         []EntryResponse `json:"missing"`
	IntegrityStatus string          `json:"integrity_status"`
}
