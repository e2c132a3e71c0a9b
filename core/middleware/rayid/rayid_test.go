package rayid_test

import (
	"net/http/httptest"
	"testing"

	"media-gallery/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.Get(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	_, parseErr := uuid.Parse(rid)
	assert.NoError(t, parseErr)

	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, rid, string(body[:n]))

	resp2, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotEqual(t, rid, resp2.Header.Get(rayid.Header))
}

func TestGet_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + rayid.Get(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := make([]byte, 8)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "[]", string(body[:n]))
}
