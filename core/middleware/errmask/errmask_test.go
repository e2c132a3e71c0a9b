package errmask_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"media-gallery/core/middleware/errmask"
	"media-gallery/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGeneric(t *testing.T) {
	assert.True(t, errmask.IsGeneric("Internal Error. Details are available in Magento log file. Report ID: webapi-1"))
	assert.True(t, errmask.IsGeneric("Server internal error. See exception log for details"))
	assert.True(t, errmask.IsGeneric("report ID: 42"))
	assert.False(t, errmask.IsGeneric("The image content is invalid"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"UnixPath", "open /var/www/html/pub/media/a.png: permission denied", "open [path removed] permission denied"},
		{"WindowsPath", `cannot read C:\xampp\htdocs\a.png now`, "cannot read [path removed] now"},
		{"NoPath", "  duplicate key  ", "duplicate key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errmask.Sanitize(tt.in))
		})
	}
}

func TestMask(t *testing.T) {
	generic := "Internal Error. Report ID: abc"

	assert.Equal(t, generic+" | debug: boom at [path removed]", errmask.Mask(500, generic, "boom at /srv/app/x.go:12"))
	assert.Equal(t, generic, errmask.Mask(422, generic, "boom"))
	assert.Equal(t, "Image not found", errmask.Mask(500, "Image not found", "boom"))
}

func newApp(debug bool, handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errmask.New(errmask.Config{Debug: debug})})
	app.Use(rayid.New())
	app.Get("/", handler)
	return app
}

func decode(t *testing.T, app *fiber.App) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestNew(t *testing.T) {
	failing := func(c *fiber.Ctx) error {
		return errors.New("insert into gallery_entries failed: /var/lib/mysql/ibdata1 full")
	}

	t.Run("MaskedWithoutDebug", func(t *testing.T) {
		status, body := decode(t, newApp(false, failing))
		assert.Equal(t, 500, status)
		assert.True(t, strings.HasPrefix(body["error"], "Internal Error."))
		assert.Contains(t, body["error"], "Report ID: "+body["ray_id"])
		assert.NotContains(t, body["error"], "debug")
	})

	t.Run("DebugDetails", func(t *testing.T) {
		status, body := decode(t, newApp(true, failing))
		assert.Equal(t, 500, status)
		assert.Contains(t, body["error"], " | debug: insert into gallery_entries failed: [path removed] full")
		assert.NotContains(t, body["error"], "/var/lib")
	})

	t.Run("FiberErrorKept", func(t *testing.T) {
		status, body := decode(t, newApp(true, func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusUnprocessableEntity, `could not fetch "a.png": not_found`)
		}))
		assert.Equal(t, 422, status)
		assert.Equal(t, `could not fetch "a.png": not_found`, body["error"])
	})
}
