package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	app := fiber.New()
	app.Get("/ok", Readiness(map[string]Check{"postgres": healthy}))
	app.Get("/ko", Readiness(map[string]Check{"postgres": healthy, "redis": broken}))

	status, body := get(t, app, "/ok")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok"}}`, string(body))

	status, body = get(t, app, "/ko")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	var resp ReadinessResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["redis"])
	assert.Equal(t, "ok", resp.Checks["postgres"])
}
