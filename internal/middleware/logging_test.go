package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("fine") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["status"])
}
