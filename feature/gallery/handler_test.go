package gallery_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"media-gallery/core/fetch"
	"media-gallery/core/middleware/errmask"
	"media-gallery/core/middleware/rayid"
	"media-gallery/core/reconcile"
	"media-gallery/feature/gallery"
	"media-gallery/feature/gallery/models"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, remote reconcile.RemoteFetcher) (*fiber.App, *gallery.Feature) {
	t.Helper()
	db := newTestDB(t)
	seed(t, db, models.Entry{File: "/a/l/alpha.png", Position: 1})

	store := fetch.NewMediaFS(afero.NewMemMapFs(), "/media")
	require.NoError(t, store.Write(context.Background(), "/a/l/alpha.png", []byte("alpha"), "image/png"))

	cfg := reconcile.Config{Enabled: true, PassURL: true, SkipUnchanged: true, FetchConcurrency: 2}
	feature := gallery.NewFeature(db, store, reconcile.NewFetcher(remote, nil, ""), cfg, zap.NewNop())
	require.True(t, feature.IsEnabled())

	app := fiber.New(fiber.Config{ErrorHandler: errmask.New(errmask.Config{})})
	app.Use(rayid.New())
	require.NoError(t, feature.Load(app))
	return app, feature
}

func post(t *testing.T, app *fiber.App, target, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleGetGallery(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/gallery/"+testSKU, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.GalleryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSKU, body.SKU)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "/a/l/alpha.png", body.Entries[0].File)
}

func TestHandleReconcile(t *testing.T) {
	app, feature := newTestApp(t, staticRemote(map[string]string{"https://cdn.example.com/new.png": "new"}))

	// Loosely typed scalars as sent by API clients.
	body := `{"entries": [
		{"id": "1", "content": {"base64_encoded_data": "YWxwaGE=", "type": "image/png", "name": "alpha.png"}, "label": "Front", "disabled": "0"},
		{"file": "https://cdn.example.com/new.png", "position": "2", "disabled": 1, "types": ["thumbnail"]}
	]}`

	status, data := post(t, app, "/gallery/"+testSKU+"/reconcile", body)
	require.Equal(t, 200, status, string(data))

	var report models.ReconcileReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Summary.Unchanged)
	assert.Equal(t, 1, report.Summary.Fetched)
	assert.Equal(t, 1, report.Uploaded)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, int64(1), report.Entries[0].ID)
	assert.Equal(t, "Front", report.Entries[0].Label)
	assert.Equal(t, "/n/e/new.png", report.Entries[1].File)
	assert.True(t, report.Entries[1].Disabled)
	assert.Equal(t, 2, report.Entries[1].Position)
	assert.Equal(t, []string{"thumbnail"}, report.Entries[1].Types)

	stored, err := feature.Service().GetGallery(context.Background(), testSKU)
	require.NoError(t, err)
	assert.Len(t, stored.Entries, 2)
}

func TestHandleReconcile_DryRun(t *testing.T) {
	app, feature := newTestApp(t, nil)

	body := `{"entries": [{"content": {"base64_encoded_data": "ZGVsdGE=", "type": "image/png", "name": "delta.png"}}]}`
	status, data := post(t, app, "/gallery/"+testSKU+"/reconcile?dry_run=true", body)
	require.Equal(t, 200, status, string(data))

	var report models.ReconcileReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.True(t, report.DryRun)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "/d/e/delta.png", report.Entries[0].File)

	stored, err := feature.Service().GetGallery(context.Background(), testSKU)
	require.NoError(t, err)
	require.Len(t, stored.Entries, 1)
	assert.Equal(t, "/a/l/alpha.png", stored.Entries[0].File)
}

func TestHandleReconcile_Errors(t *testing.T) {
	app, _ := newTestApp(t, staticRemote(nil))

	t.Run("UnresolvableReference", func(t *testing.T) {
		status, data := post(t, app, "/gallery/"+testSKU+"/reconcile", `{"entries": [{"file": "https://cdn.example.com/gone.png"}]}`)
		assert.Equal(t, 422, status)

		var body map[string]string
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Contains(t, body["error"], "https://cdn.example.com/gone.png")
		assert.Contains(t, body["error"], "remote_unavailable")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		status, data := post(t, app, "/gallery/"+testSKU+"/reconcile", `{"entries": [`)
		assert.Equal(t, 400, status)
		assert.Contains(t, string(data), "invalid request body")
	})
}

func TestHandleCheckGallery(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/gallery/"+testSKU+"/check", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report models.CheckReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, models.StatusPass, report.IntegrityStatus)
	assert.Equal(t, 1, report.Total)
}
