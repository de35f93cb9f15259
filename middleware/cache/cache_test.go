package cache

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkip(t *testing.T) {
	assert.True(t, skip("/healthcheck"))
	assert.True(t, skip("/swagger/index.html"))
	assert.True(t, skip("/debug/pprof/heap"))
	assert.True(t, skip("/caches/prune"))
	assert.False(t, skip("/listings/search"))
	assert.False(t, skip("/geography/regions"))
}

func TestDisabledCachePassesThrough(t *testing.T) {
	calls := 0
	app := fiber.New()
	app.Use(New(cache.NewRedisRepository("", ""), time.Minute))
	app.Get("/listings/search", func(c *fiber.Ctx) error {
		calls++
		return c.JSON(fiber.Map{"calls": calls})
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/listings/search", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(CachedResponseHeader))
	}
	assert.Equal(t, 2, calls)
}
