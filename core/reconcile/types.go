package reconcile

import (
	"encoding/base64"
	"strings"
)

// Content holds image bytes in their wire form together with the metadata
// needed to store them.
type Content struct {
	// Base64EncodedData is the standard base64 encoding of the image bytes.
	Base64EncodedData string `json:"base64_encoded_data"`

	// Type is the media type of the image (e.g., "image/png").
	Type string `json:"type"`

	// Name is the logical file name, including the extension.
	Name string `json:"name"`
}

// NewContent encodes data and returns a Content block for it.
func NewContent(data []byte, mediaType, name string) *Content {
	return &Content{
		Base64EncodedData: base64.StdEncoding.EncodeToString(data),
		Type:              mediaType,
		Name:              name,
	}
}

// IsBlank reports whether c carries no payload.
func (c *Content) IsBlank() bool {
	return c == nil || strings.TrimSpace(c.Base64EncodedData) == ""
}

// Bytes decodes the payload.
func (c *Content) Bytes() ([]byte, error) {
	if c.IsBlank() {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(c.Base64EncodedData))
}

// GalleryEntry is an incoming gallery entry for a record.
type GalleryEntry struct {
	// ID is the persisted value id. Zero means the entry is new.
	ID int64 `json:"id,omitempty"`

	// File is a path or URL to fetch content from, or an already stored file reference.
	File string `json:"file,omitempty"`

	// Content is the inline or fetched payload.
	Content *Content `json:"content,omitempty"`

	// Label is the display label of the image.
	Label string `json:"label,omitempty"`

	// SortOrder is the display order of the image within the gallery.
	SortOrder int `json:"sort_order"`

	// Disabled hides the image from the storefront.
	Disabled bool `json:"disabled"`

	// Types lists the image roles (e.g., "image", "small_image", "thumbnail").
	Types []string `json:"types,omitempty"`

	// MediaType is the gallery media type, "image" unless stated otherwise.
	MediaType string `json:"media_type,omitempty"`
}

// HasContent reports whether the entry carries a non-blank payload.
func (e *GalleryEntry) HasContent() bool {
	return !e.Content.IsBlank()
}

// IsResolvable reports whether persistence can do anything with the entry:
// it needs either content to upload or a file to reference.
func (e *GalleryEntry) IsResolvable() bool {
	return e.HasContent() || e.File != ""
}

// ExistingEntry is a read-only snapshot of a persisted gallery entry.
type ExistingEntry struct {
	// ID is the persisted value id, unique within the batch.
	ID int64 `json:"id"`

	// File is the stored file reference (e.g., "/a/b/abc.png").
	File string `json:"file"`

	// Content is optional embedded content. When nil the bytes are loaded
	// through a ContentLoader.
	Content *Content `json:"content,omitempty"`
}

// Flags are the feature toggles resolved for one invocation.
type Flags struct {
	Enabled       bool `json:"enabled"`
	PassURL       bool `json:"pass_url"`
	PassPath      bool `json:"pass_path"`
	SkipUnchanged bool `json:"skip_unchanged"`
}

// PassURLEnabled reports whether remote references may be fetched.
func (f Flags) PassURLEnabled() bool {
	return f.Enabled && f.PassURL
}

// PassPathEnabled reports whether local references may be read.
func (f Flags) PassPathEnabled() bool {
	return f.Enabled && f.PassPath
}

// SkipUnchangedEnabled reports whether unchanged content should be deduplicated.
func (f Flags) SkipUnchangedEnabled() bool {
	return f.Enabled && f.SkipUnchanged
}

// MediaFetchEnabled reports whether any kind of content fetching is on.
func (f Flags) MediaFetchEnabled() bool {
	return f.PassURLEnabled() || f.PassPathEnabled()
}

// Policy returns the fetch policy implied by the flags.
func (f Flags) Policy() Policy {
	return Policy{
		AllowRemote: f.PassURLEnabled(),
		AllowLocal:  f.PassPathEnabled(),
	}
}

// Request bundles the inputs of one reconciliation run.
type Request struct {
	// Incoming is the ordered batch to reconcile.
	Incoming []GalleryEntry

	// Existing is the persisted batch, in storage order.
	Existing []ExistingEntry

	// Flags are the feature toggles for this run.
	Flags Flags
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`

	// Entries is the finalized batch in original relative order.
	Entries []GalleryEntry `json:"entries"`

	// Diagnostics is the ordered decision trail.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Trail renders the diagnostics as strings.
func (r *Result) Trail() []string {
	trail := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		trail = append(trail, d.String())
	}
	return trail
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	Incoming     int `json:"incoming"`
	Fetched      int `json:"fetched"`
	PassThrough  int `json:"pass_through"`
	Unresolvable int `json:"unresolvable"`
	Unchanged    int `json:"unchanged"`
	Duplicates   int `json:"duplicates"`
	Overrides    int `json:"overrides"`
	Warnings     int `json:"warnings"`
}
